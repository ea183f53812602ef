package triage

// Examples are canned tickets offered by the example picker.
var Examples = []string{
	"User unable to log in to SAP Fiori. Password reset did not help.",
	"Sales order processing is failing due to missing condition records in pricing.",
	"SAP system crashes when running large data extraction jobs in BW.",
	"Unable to create production order due to missing BOM components.",
}
