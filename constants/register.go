package constants

// RegisterHeaders is the fixed column schema of the chemical register.
// Order is load-bearing: rows are written positionally and the dedup scan
// resolves the Barcode column by header name.
var RegisterHeaders = []string{
	"Product Name",
	"Vendor / Manufacturer",
	"Quantity",
	"Location",
	"CAS Number",
	"SDS Available",
	"Issue Date (DD/MM/YYYY)",
	"Hazardous Substance",
	"Dangerous Good",
	"Dangerous Goods Class",
	"Description",
	"Packing group",
	"Subsidiary Risk(s)",
	"Consequence",
	"Likelihood",
	"Risk Rating",
	"Safe Work Procedure (SWP) Requirement",
	"Comments/SWP",
	"Barcode",
}

// BarcodeHeader is the identity-key column used for duplicate suppression.
const BarcodeHeader = "Barcode"

// SDSAvailableDefault is the affirmative default for records produced by the
// parser: by construction an SDS exists for anything we parsed one from.
const SDSAvailableDefault = "Yes"
