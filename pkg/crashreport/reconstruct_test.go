package crashreport

import (
	"context"
	"errors"
	"testing"

	"github.com/crashops/crashextract/pkg/crashdoc"
)

func locationParent(children ...*crashdoc.ChildRecord) *crashdoc.ParentRecord {
	parent := &crashdoc.ParentRecord{Type: "identification_location"}
	for _, c := range children {
		parent.AddChild(c)
	}
	return parent
}

func TestAssembleAddress(t *testing.T) {
	r := New()
	parent := locationParent(
		&crashdoc.ChildRecord{Type: "block_num", Value: "100"},
		&crashdoc.ChildRecord{Type: "street_prefix", Value: "N"},
		&crashdoc.ChildRecord{Type: "street_name", Value: "Main"},
		&crashdoc.ChildRecord{Type: "street_suffix", Value: "ST"},
	)
	sections := map[crashdoc.Section][]*crashdoc.ParentRecord{
		crashdoc.SectionIdentLocation: {parent},
	}
	r.Reconstruct(context.Background(), sections)

	if got := parent.FirstChildValue("street_address"); got != "100 N Main ST" {
		t.Errorf("street_address = %q, want %q", got, "100 N Main ST")
	}
	// raw suffix value untouched, decoded label alongside
	suffix := parent.ChildFields["street_suffix"][0]
	if suffix.Value != "ST" {
		t.Errorf("street_suffix raw value = %q, want %q", suffix.Value, "ST")
	}
	if suffix.Decoded != "Street" {
		t.Errorf("street_suffix decoded = %q, want %q", suffix.Decoded, "Street")
	}
}

func TestAssembleAddressEmptyComponentCollapses(t *testing.T) {
	r := New()
	parent := locationParent(
		&crashdoc.ChildRecord{Type: "block_num", Value: "100"},
		&crashdoc.ChildRecord{Type: "street_prefix", Value: "  "},
		&crashdoc.ChildRecord{Type: "street_name", Value: "Main"},
		&crashdoc.ChildRecord{Type: "street_suffix", Value: "ST"},
	)
	r.Reconstruct(context.Background(), map[crashdoc.Section][]*crashdoc.ParentRecord{
		crashdoc.SectionIdentLocation: {parent},
	})
	if got := parent.FirstChildValue("street_address"); got != "100 Main ST" {
		t.Errorf("street_address = %q, want %q", got, "100 Main ST")
	}
}

func TestAssembleAddressNoSuffixNoAddress(t *testing.T) {
	r := New()
	parent := locationParent(
		&crashdoc.ChildRecord{Type: "block_num", Value: "100"},
		&crashdoc.ChildRecord{Type: "street_name", Value: "Main"},
	)
	r.Reconstruct(context.Background(), map[crashdoc.Section][]*crashdoc.ParentRecord{
		crashdoc.SectionIdentLocation: {parent},
	})
	if _, ok := parent.ChildFields["street_address"]; ok {
		t.Error("street_address synthesized without a street_suffix")
	}
}

func TestCheckboxDecoding(t *testing.T) {
	r := New()
	parent := locationParent(
		&crashdoc.ChildRecord{Type: "outside_city_limit", Value: "☑"},
		&crashdoc.ChildRecord{Type: "const_zone", Value: "☐"},
		&crashdoc.ChildRecord{Type: "case_id", Value: "12345"},
	)
	r.Reconstruct(context.Background(), map[crashdoc.Section][]*crashdoc.ParentRecord{
		crashdoc.SectionIdentLocation: {parent},
	})

	outside := parent.ChildFields["outside_city_limit"][0]
	if outside.Checked == nil || !*outside.Checked {
		t.Errorf("outside_city_limit Checked = %v, want true", outside.Checked)
	}
	if outside.Value != "☑" {
		t.Errorf("outside_city_limit raw value overwritten: %q", outside.Value)
	}
	constZone := parent.ChildFields["const_zone"][0]
	if constZone.Checked == nil || *constZone.Checked {
		t.Errorf("const_zone Checked = %v, want false", constZone.Checked)
	}
	caseID := parent.ChildFields["case_id"][0]
	if caseID.Checked != nil || caseID.Decoded != "" {
		t.Errorf("case_id should be untouched, got Checked=%v Decoded=%q", caseID.Checked, caseID.Decoded)
	}
}

func TestCheckboxParse(t *testing.T) {
	cfg := DefaultCheckboxConfig()
	tests := []struct {
		value   string
		checked bool
		ok      bool
	}{
		{"☑", true, true},
		{"☒", true, true},
		{"☐", false, true},
		{"", false, true},
		{"☑ Yes ☐ No", true, true},
		{"☐ Yes ☑No", false, true},
		{"Yes", true, true},
		{"No", false, true},
		{"something else", false, false},
	}
	for _, tt := range tests {
		checked, ok := cfg.Parse(tt.value)
		if checked != tt.checked || ok != tt.ok {
			t.Errorf("Parse(%q) = (%v, %v), want (%v, %v)", tt.value, checked, ok, tt.checked, tt.ok)
		}
	}
}

type fakeGeocoder struct {
	places []Place
	err    error
	calls  []string
}

func (f *fakeGeocoder) Geocode(_ context.Context, address string) ([]Place, error) {
	f.calls = append(f.calls, address)
	return f.places, f.err
}

func TestGeocodeAugmentation(t *testing.T) {
	geo := &fakeGeocoder{places: []Place{{CountyFull: "Travis County", State: "TX"}}}
	r := New()
	r.Geocoder = geo
	parent := locationParent(
		&crashdoc.ChildRecord{Type: "country_name", Value: "Travis"},
	)
	r.Reconstruct(context.Background(), map[crashdoc.Section][]*crashdoc.ParentRecord{
		crashdoc.SectionIdentLocation: {parent},
	})
	if got := parent.FirstChildValue("country_name_county_full"); got != "Travis County" {
		t.Errorf("country_name_county_full = %q, want %q", got, "Travis County")
	}
	if got := parent.FirstChildValue("country_name_state"); got != "TX" {
		t.Errorf("country_name_state = %q, want %q", got, "TX")
	}
	if len(geo.calls) != 1 || geo.calls[0] != "Travis" {
		t.Errorf("geocoder calls = %v", geo.calls)
	}
}

func TestGeocodeFailureProducesNothing(t *testing.T) {
	geo := &fakeGeocoder{err: errors.New("transport down")}
	r := New()
	r.Geocoder = geo
	parent := locationParent(
		&crashdoc.ChildRecord{Type: "address", Value: "100 Main ST"},
	)
	r.Reconstruct(context.Background(), map[crashdoc.Section][]*crashdoc.ParentRecord{
		crashdoc.SectionIdentLocation: {parent},
	})
	if _, ok := parent.ChildFields["address_county_full"]; ok {
		t.Error("augmentation fields produced despite geocoder failure")
	}
	if _, ok := parent.ChildFields["address_state"]; ok {
		t.Error("augmentation fields produced despite geocoder failure")
	}
}

func TestMultiCodeFactorDecoding(t *testing.T) {
	r := New()
	parent := &crashdoc.ParentRecord{Type: "factors_conditions"}
	parent.AddChild(&crashdoc.ChildRecord{
		Type:  "contributing_contributing_factors",
		Value: "20, 44",
	})
	r.Reconstruct(context.Background(), map[crashdoc.Section][]*crashdoc.ParentRecord{
		crashdoc.SectionFactors: {parent},
	})
	child := parent.ChildFields["contributing_contributing_factors"][0]
	if child.Decoded != "Driver Inattention, Followed Too Closely" {
		t.Errorf("decoded factors = %q", child.Decoded)
	}
	if child.Value != "20, 44" {
		t.Errorf("raw value overwritten: %q", child.Value)
	}
}

func TestCleanNarrative(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"UNIT 1 <cr>FAILED TO YIELD", "UNIT 1 FAILED TO YIELD"},
		{"<b>DRIVER</b>  STATED", "DRIVER STATED"},
		{"  spaced   out  ", "spaced out"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanNarrative(tt.in); got != tt.want {
			t.Errorf("CleanNarrative(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
