package crashcode

import (
	"reflect"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		category string
		code     string
		want     string
	}{
		{"rdwy_sys", "IH", "Interstate"},
		{"street_suffix", "ST", "Street"},
		{"veh_color", "BLU", "Blue"},
		{"person_type", "1", "Driver"},
		{"dir_of_traffic", "NE", "Northeast"},
		{"contributing_contributing_factors", "22", "Failed to Control Speed"},
		// unknown code falls through unchanged
		{"veh_color", "ZZZ", "ZZZ"},
		// unknown category falls through unchanged
		{"no_such_category", "1", "1"},
		// unit references are not a category; linking relies on passthrough
		{"unit_num_contributing", "2", "2"},
	}
	for _, tt := range tests {
		if got := Lookup(tt.category, tt.code); got != tt.want {
			t.Errorf("Lookup(%q, %q) = %q, want %q", tt.category, tt.code, got, tt.want)
		}
	}
}

func TestKnown(t *testing.T) {
	if !Known("injury_severity") {
		t.Error("Known(injury_severity) = false, want true")
	}
	if Known("unit_num_charges") {
		t.Error("Known(unit_num_charges) = true, want false")
	}
}

func TestDecodeMultiple(t *testing.T) {
	got := DecodeMultiple("may_have_contributing_factors", "20, 44")
	want := []string{"Driver Inattention", "Followed Too Closely"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeMultiple = %v, want %v", got, want)
	}
	if got := DecodeMultiple("veh_color", ""); got != nil {
		t.Errorf("DecodeMultiple on empty input = %v, want nil", got)
	}
}

func TestDecodePersonDescription(t *testing.T) {
	blob := "N 34 W 1 1 1 1 1 N 96 96 97 97 97"
	got := DecodePersonDescription(blob)
	if len(got) != 14 {
		t.Fatalf("got %d attributes, want 14", len(got))
	}
	checks := map[string]string{
		"injury_severity": "Not Injured",
		"age":             "34",
		"ethnicity":       "White",
		"sex":             "Male",
		"eject":           "No",
		"restr":           "Shoulder and Lap Belt",
		"airbag":          "Not Deployed",
		"helmet":          "Not Worn",
		"sol":             "No Solicit",
		"alc_spec":        "None",
		"drug_spec":       "None",
		"drug_result":     "Not Applicable",
		"drug_category":   "Not Applicable",
		"alc_result":      "Not Applicable",
	}
	for _, attr := range got {
		want, ok := checks[attr.Name]
		if !ok {
			t.Errorf("unexpected attribute %q", attr.Name)
			continue
		}
		if attr.Value != want {
			t.Errorf("%s = %q, want %q", attr.Name, attr.Value, want)
		}
	}
	// determinism
	again := DecodePersonDescription(blob)
	if !reflect.DeepEqual(got, again) {
		t.Error("DecodePersonDescription is not deterministic")
	}
}

func TestDecodePersonDescriptionShort(t *testing.T) {
	got := DecodePersonDescription("A 17 H")
	if len(got) != 14 {
		t.Fatalf("got %d attributes, want 14", len(got))
	}
	if got[0].Value != "Suspected Serious Injury" {
		t.Errorf("injury_severity = %q", got[0].Value)
	}
	if got[2].Value != "Hispanic" {
		t.Errorf("ethnicity = %q", got[2].Value)
	}
	for _, attr := range got[3:] {
		if attr.Code != "" || attr.Value != "" {
			t.Errorf("attribute %s should be empty, got code %q value %q", attr.Name, attr.Code, attr.Value)
		}
	}
}

func TestDecodePersonDescriptionOrder(t *testing.T) {
	got := DecodePersonDescription("")
	want := []string{
		"injury_severity", "age", "ethnicity", "sex", "eject", "restr",
		"airbag", "helmet", "sol", "alc_spec", "drug_spec", "drug_result",
		"drug_category", "alc_result",
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("attribute %d = %q, want %q", i, got[i].Name, name)
		}
	}
}
