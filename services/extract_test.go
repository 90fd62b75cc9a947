package services

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"rera-scraper/models"
	"rera-scraper/utils"
)

func newTestLogger() *utils.Logger { return utils.NewLogger("") }

var (
	promoterNameLabels    = []string{"Company Name", "Propietory Name", "Proprietor Name"}
	promoterAddressLabels = []string{"Registered Office Address", "Permanent Address"}
	gstLabels             = []string{"GST No.", "GST No"}
)

const companyPromoterHTML = `
<html><body>
<div class="card-body">
  <div class="ms-3"><label>Company Name</label><strong> M/S SAMPLE DEVELOPERS PVT. LTD. </strong></div>
  <div class="ms-3"><label>Registered Office Address</label><strong>Plot 12,
      Saheed Nagar,   Bhubaneswar</strong></div>
  <div class="ms-3"><label>GST No.</label><strong>21AAACS1234F1Z5</strong></div>
</div>
</body></html>`

const individualPromoterHTML = `
<html><body>
<div class="card-body">
  <div class="ms-3"><label>Propietory Name</label><strong>RAMESH CHANDRA SAHOO</strong></div>
  <div class="ms-3"><label>Permanent Address</label><strong>At/Po: Balianta, Khordha</strong></div>
</div>
</body></html>`

const overviewHTML = `
<html><body>
<div class="details-project"><span>Project Name</span><strong>Sunshine Heights</strong></div>
<div class="details-project"><span>RERA Regd. No.</span><strong>RP/01/2024/01234</strong></div>
</body></html>`

func mustParse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := ParseSnapshot(html)
	if err != nil {
		t.Fatalf("ParseSnapshot: %v", err)
	}
	return doc
}

func TestLookupCompanyVariant(t *testing.T) {
	e := NewExtractor(newTestLogger())
	doc := mustParse(t, companyPromoterHTML)

	name, ok := e.Lookup(doc, promoterNameLabels)
	if !ok || name != "M/S SAMPLE DEVELOPERS PVT. LTD." {
		t.Errorf("promoter name: got %q (ok=%v)", name, ok)
	}

	addr, ok := e.Lookup(doc, promoterAddressLabels)
	if !ok || addr != "Plot 12, Saheed Nagar, Bhubaneswar" {
		t.Errorf("address: got %q (ok=%v)", addr, ok)
	}
}

func TestLookupIndividualVariant(t *testing.T) {
	e := NewExtractor(newTestLogger())
	doc := mustParse(t, individualPromoterHTML)

	name, ok := e.Lookup(doc, promoterNameLabels)
	if !ok || name != "RAMESH CHANDRA SAHOO" {
		t.Errorf("promoter name: got %q (ok=%v)", name, ok)
	}

	addr, ok := e.Lookup(doc, promoterAddressLabels)
	if !ok || addr != "At/Po: Balianta, Khordha" {
		t.Errorf("address: got %q (ok=%v)", addr, ok)
	}
}

// The same label list must resolve the same semantic field on both promoter
// variants regardless of candidate order — only one variant is ever present
// on a given page.
func TestLookupVariantOrderIndependent(t *testing.T) {
	e := NewExtractor(newTestLogger())
	reversed := []string{"Proprietor Name", "Propietory Name", "Company Name"}

	pages := map[string]string{
		"company":    "M/S SAMPLE DEVELOPERS PVT. LTD.",
		"individual": "RAMESH CHANDRA SAHOO",
	}
	htmls := map[string]string{
		"company":    companyPromoterHTML,
		"individual": individualPromoterHTML,
	}

	for variant, want := range pages {
		doc := mustParse(t, htmls[variant])
		for _, labels := range [][]string{promoterNameLabels, reversed} {
			got, ok := e.Lookup(doc, labels)
			if !ok || got != want {
				t.Errorf("%s variant with labels %v: got %q (ok=%v), want %q",
					variant, labels, got, ok, want)
			}
		}
	}
}

func TestLookupMissingFieldYieldsPlaceholder(t *testing.T) {
	e := NewExtractor(newTestLogger())
	doc := mustParse(t, individualPromoterHTML) // no GST block at all

	got, ok := e.Lookup(doc, gstLabels)
	if ok {
		t.Errorf("expected ok=false for missing GST, got value %q", got)
	}
	if got != models.Placeholder {
		t.Errorf("missing GST: got %q, want %q", got, models.Placeholder)
	}
}

func TestLookupTreatsPlaceholderValueAsUnsettled(t *testing.T) {
	e := NewExtractor(newTestLogger())
	doc := mustParse(t, `<html><body>
		<div class="ms-3"><label>Company Name</label><strong>--</strong></div>
	</body></html>`)

	got, ok := e.Lookup(doc, promoterNameLabels)
	if ok {
		t.Errorf("a -- value should not count as settled, got %q", got)
	}
}

// Some panels render the label with a space before the colon
// ("Company Name :"); the lookup must still match the bare label.
func TestLookupLabelWithSpacedColon(t *testing.T) {
	e := NewExtractor(newTestLogger())
	doc := mustParse(t, `<html><body>
		<div class="ms-3"><label>Company Name :</label><strong>ACME LLP</strong></div>
	</body></html>`)

	got, ok := e.Lookup(doc, promoterNameLabels)
	if !ok || got != "ACME LLP" {
		t.Errorf("label with spaced colon: got %q (ok=%v)", got, ok)
	}
}

func TestLookupOverviewPanel(t *testing.T) {
	e := NewExtractor(newTestLogger())
	doc := mustParse(t, overviewHTML)

	name, ok := e.Lookup(doc, []string{"Project Name"})
	if !ok || name != "Sunshine Heights" {
		t.Errorf("project name: got %q (ok=%v)", name, ok)
	}

	regd, ok := e.Lookup(doc, []string{"RERA Regd. No.", "RERA Regd. No"})
	if !ok || regd != "RP/01/2024/01234" {
		t.Errorf("regd no: got %q (ok=%v)", regd, ok)
	}
}

func TestLookupNeverReturnsMarkup(t *testing.T) {
	e := NewExtractor(newTestLogger())
	doc := mustParse(t, `<html><body>
		<div class="ms-3"><label>Company Name</label><strong>ACME <em>BUILDERS</em> LLP</strong></div>
	</body></html>`)

	got, ok := e.Lookup(doc, promoterNameLabels)
	if !ok {
		t.Fatal("expected a value")
	}
	if strings.ContainsAny(got, "<>") {
		t.Errorf("value contains markup: %q", got)
	}
	if got != "ACME BUILDERS LLP" {
		t.Errorf("got %q, want %q", got, "ACME BUILDERS LLP")
	}
}

func TestFieldLogsAndFallsBack(t *testing.T) {
	e := NewExtractor(newTestLogger())
	doc := mustParse(t, individualPromoterHTML)

	if got := e.Field(doc, "GST No", gstLabels); got != models.Placeholder {
		t.Errorf("Field fallback: got %q, want %q", got, models.Placeholder)
	}
	if got := e.Field(doc, "Promoter Name", promoterNameLabels); got != "RAMESH CHANDRA SAHOO" {
		t.Errorf("Field hit: got %q", got)
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  hello   world  ", "hello world"},
		{"line\none\n\ttwo", "line one two"},
		{"nbsp\u00A0\u00A0padded", "nbsp padded"},
		{"", ""},
		{"   ", ""},
		{"already clean", "already clean"},
	}

	for _, tt := range tests {
		if got := NormalizeText(tt.in); got != tt.want {
			t.Errorf("NormalizeText(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}
