package catalog

import (
	"regexp"

	"github.com/chemfetch/sds-parser/constants"
)

// Default returns the built-in pattern catalog, mirroring configs/patterns.yml.
// SDS layouts vary widely across suppliers; these are the starting set, tuned
// against a small corpus. Several alternatives per field encode a preference
// ranking ("Product Identifier" over "Product Name" over "Trade Name").
func Default() Catalog {
	return Catalog{
		constants.FieldProductName: {
			regexp.MustCompile(`(?i)Product Identifier\s*[:\-]?\s*(.+)`),
			regexp.MustCompile(`(?im)^\s*Product Name\s*[:\-]?\s*(.+)$`),
			regexp.MustCompile(`(?im)^\s*Trade Name\s*[:\-]?\s*(.+)$`),
		},
		constants.FieldVendor: {
			regexp.MustCompile(`(?i)Manufacturer(?:/Supplier)?\s*[:\-]?\s*(.+)`),
			regexp.MustCompile(`(?i)Company Name\s*[:\-]?\s*(.+)`),
			regexp.MustCompile(`(?i)Supplier\s*[:\-]?\s*(.+)`),
		},
		constants.FieldIssueDate: {
			regexp.MustCompile(`(?i)(Revision|Issue|Date of issue|Version date)\s*[:\-]?\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
			regexp.MustCompile(`(?i)(Prepared|Last revised)\s*[:\-]?\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
		},
		constants.FieldDangerousGoodsClass: {
			regexp.MustCompile(`(?i)\b(?:Dangerous\s+Goods\s*)?Class(?:/Division)?\s*[:\-]?\s*([0-9A-Za-z\.]+)\b`),
		},
		constants.FieldUNNumber: {
			regexp.MustCompile(`(?i)\bUN\s*(\d{3,4})\b`),
		},
		constants.FieldPackingGroup: {
			regexp.MustCompile(`(?i)Packing\s+Group\s*[:\-]?\s*(I{1,3}|II|III)\b`),
		},
		constants.FieldSubsidiaryRisks: {
			regexp.MustCompile(`(?i)Subsidiary Risk[s]?\s*[:\-]?\s*(.+)`),
		},
		constants.FieldCASNumber: {
			regexp.MustCompile(`(?i)\bCAS(?: No\.| Number)?\s*[:\-]?\s*([0-9]{2,7}-[0-9]{2}-[0-9])`),
		},
		constants.FieldHazardousSubstance: {
			regexp.MustCompile(`(?i)Hazardous Substance\s*[:\-]?\s*(Yes|No)\b`),
		},
		constants.FieldDangerousGood: {
			regexp.MustCompile(`(?i)Dangerous Goods?\s*[:\-]?\s*(Yes|No)\b`),
		},
		constants.FieldDescriptionSection2: {
			regexp.MustCompile(`(?is)Section\s*2[^\n]*\n(.{0,800})`),
		},
	}
}
