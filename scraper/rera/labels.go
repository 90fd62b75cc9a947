package rera

// Label variants per semantic field, tried in order — first label whose value
// element is present and non-empty wins. The registry labels the same field
// differently for company and individual promoters, and "Propietory Name" is
// the site's own spelling.
var (
	projectNameLabels = []string{"Project Name"}

	reraNoLabels = []string{"RERA Regd. No.", "RERA Regd. No", "Registration No."}

	promoterNameLabels = []string{"Company Name", "Propietory Name", "Proprietor Name"}

	promoterAddressLabels = []string{"Registered Office Address", "Permanent Address", "Current Residence Address"}

	gstNoLabels = []string{"GST No.", "GST No", "GSTIN No."}
)
