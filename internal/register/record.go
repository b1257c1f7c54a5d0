package register

import "github.com/chemfetch/sds-parser/constants"

// ParsedRecord is one chemical register entry. Fields are empty strings when
// unmatched; the store writes them out as-is. RiskRating is derived from
// Consequence and Likelihood and is never set directly.
type ParsedRecord struct {
	ProductName         string `json:"product_name"`
	Vendor              string `json:"vendor"`
	Quantity            string `json:"quantity"`
	Location            string `json:"location"`
	CASNumber           string `json:"cas_number"`
	SDSAvailable        string `json:"sds_available"`
	IssueDate           string `json:"issue_date"`
	HazardousSubstance  string `json:"hazardous_substance"`
	DangerousGood       string `json:"dangerous_good"`
	DangerousGoodsClass string `json:"dangerous_goods_class"`
	Description         string `json:"description"`
	PackingGroup        string `json:"packing_group"`
	SubsidiaryRisks     string `json:"subsidiary_risks"`
	Consequence         string `json:"consequence"`
	Likelihood          string `json:"likelihood"`
	RiskRating          string `json:"risk_rating"`
	SWPRequirement      string `json:"swp_requirement"`
	CommentsSWP         string `json:"comments_swp"`
	Barcode             string `json:"barcode"`
}

// NewRecord returns an empty record with defaults applied.
func NewRecord() *ParsedRecord {
	return &ParsedRecord{SDSAvailable: constants.SDSAvailableDefault}
}

// Row flattens the record into the fixed column order of RegisterHeaders.
func (r *ParsedRecord) Row() []string {
	return []string{
		r.ProductName,
		r.Vendor,
		r.Quantity,
		r.Location,
		r.CASNumber,
		r.SDSAvailable,
		r.IssueDate,
		r.HazardousSubstance,
		r.DangerousGood,
		r.DangerousGoodsClass,
		r.Description,
		r.PackingGroup,
		r.SubsidiaryRisks,
		r.Consequence,
		r.Likelihood,
		r.RiskRating,
		r.SWPRequirement,
		r.CommentsSWP,
		r.Barcode,
	}
}

// RowMap keys the flattened row by register header, for JSON responses.
func (r *ParsedRecord) RowMap() map[string]string {
	row := r.Row()
	out := make(map[string]string, len(row))
	for i, h := range constants.RegisterHeaders {
		out[h] = row[i]
	}
	return out
}
