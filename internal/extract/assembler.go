package extract

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/chemfetch/sds-parser/constants"
	"github.com/chemfetch/sds-parser/internal/catalog"
	"github.com/chemfetch/sds-parser/internal/common"
	"github.com/chemfetch/sds-parser/internal/register"
)

// Inference assertions searched when a direct pattern left a field unset.
var (
	reNotHazardous  = regexp.MustCompile(`(?i)Not classified as Hazardous`)
	reHazardous     = regexp.MustCompile(`(?i)Classified as Hazardous|Hazardous according to`)
	reNotDGoods     = regexp.MustCompile(`(?i)Not classified as Dangerous Goods`)
	reDGoods        = regexp.MustCompile(`(?i)Classified as Dangerous Goods|Dangerous Goods according to`)
	rePackingGroup2 = regexp.MustCompile(`(?i)Packing\s+Group\s*(I{1,3}|II|III)\b`)
)

// Assembler runs the field locator over the whole catalog to build one
// record, then a secondary inference pass over the same text. The catalog is
// injected so the assembler can run concurrently and be tested with
// substitute catalogs.
type Assembler struct {
	Logger  *slog.Logger
	Catalog catalog.Catalog
}

func NewAssembler(logger *slog.Logger, cat catalog.Catalog) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{Logger: logger, Catalog: cat}
}

// Assemble extracts one register record from raw document text. Empty or
// whitespace-only input is a precondition failure; individual fields failing
// to match are not.
func (a *Assembler) Assemble(text string) (*register.ParsedRecord, error) {
	if strings.TrimSpace(text) == "" {
		return nil, common.PreconditionError("document text is empty")
	}
	norm := NormalizeWhitespace(text)
	rec := register.NewRecord()

	rec.ProductName = a.locate(constants.FieldProductName, norm)
	rec.Vendor = a.locate(constants.FieldVendor, norm)
	rec.CASNumber = a.locate(constants.FieldCASNumber, norm)
	rec.IssueDate = NormalizeDate(a.locate(constants.FieldIssueDate, norm))
	rec.HazardousSubstance = a.locate(constants.FieldHazardousSubstance, norm)
	rec.DangerousGood = a.locate(constants.FieldDangerousGood, norm)
	rec.DangerousGoodsClass = a.locate(constants.FieldDangerousGoodsClass, norm)
	// Reject captures that grabbed a "Classification" heading fragment
	// instead of an actual class value.
	if strings.Contains(strings.ToLower(rec.DangerousGoodsClass), "ification") {
		rec.DangerousGoodsClass = ""
	}
	rec.PackingGroup = a.locate(constants.FieldPackingGroup, norm)
	rec.SubsidiaryRisks = a.locate(constants.FieldSubsidiaryRisks, norm)
	rec.Description = ExtractDescription(a.Catalog.Rules(constants.FieldDescriptionSection2), norm)

	a.infer(rec, norm)
	rec.RiskRating = RiskRating(rec.Consequence, rec.Likelihood)

	a.Logger.Debug("assemble.ok",
		"product", rec.ProductName,
		"vendor", rec.Vendor,
		"cas", rec.CASNumber,
		"issue_date", rec.IssueDate,
	)
	return rec, nil
}

func (a *Assembler) locate(key constants.FieldKey, text string) string {
	return FindFirst(a.Catalog.Rules(key), text)
}

// infer fills still-unset fields from corroborating evidence elsewhere in the
// text. It runs strictly after the direct pass and never overwrites a field
// the direct pass populated.
func (a *Assembler) infer(rec *register.ParsedRecord, norm string) {
	if rec.HazardousSubstance == "" {
		if reNotHazardous.MatchString(norm) {
			rec.HazardousSubstance = "No"
		} else if reHazardous.MatchString(norm) {
			rec.HazardousSubstance = "Yes"
		}
	}
	if rec.DangerousGood == "" {
		if reNotDGoods.MatchString(norm) {
			rec.DangerousGood = "No"
		} else if reDGoods.MatchString(norm) || rec.DangerousGoodsClass != "" {
			rec.DangerousGood = "Yes"
		}
	}
	if rec.PackingGroup == "" {
		if m := rePackingGroup2.FindStringSubmatch(norm); m != nil {
			rec.PackingGroup = strings.ToUpper(m[1])
		}
	}
}

// Usable reports whether the record carries at least the minimum signal that
// the document was an SDS at all. Callers use this to escalate a total miss.
func Usable(rec *register.ParsedRecord) bool {
	return rec.ProductName != "" || rec.Vendor != ""
}
