package constants

// FieldKey names a semantic field in the pattern catalog.
type FieldKey string

// Stable values (these exact strings key the pattern catalog YAML).
const (
	FieldProductName         FieldKey = "product_name"
	FieldVendor              FieldKey = "vendor"
	FieldCASNumber           FieldKey = "cas_number"
	FieldIssueDate           FieldKey = "issue_date"
	FieldHazardousSubstance  FieldKey = "hazardous_substance"
	FieldDangerousGood       FieldKey = "dangerous_good"
	FieldDangerousGoodsClass FieldKey = "dangerous_goods_class"
	FieldUNNumber            FieldKey = "un_number"
	FieldPackingGroup        FieldKey = "packing_group"
	FieldSubsidiaryRisks     FieldKey = "subsidiary_risks"
	FieldDescriptionSection2 FieldKey = "description_section2"
)
