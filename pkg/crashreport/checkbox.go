package crashreport

import "strings"

// CheckboxConfig names the field types interpreted as checkboxes and the
// glyphs that mark them. It is plain configuration data so deployments whose
// extractor emits different glyphs can override it.
type CheckboxConfig struct {
	// Fields holds the exact field types treated as checkboxes. A field whose
	// type contains "tick_box" is treated as a checkbox regardless.
	Fields []string
	// Checked and Unchecked are the glyphs marking filled and empty boxes.
	Checked   []string
	Unchecked []string
}

// DefaultCheckboxConfig returns the checkbox fields and glyphs used on the
// standard CR-3 form.
func DefaultCheckboxConfig() CheckboxConfig {
	return CheckboxConfig{
		Fields: []string{
			"outside_city_limit",
			"crash_damage_1000",
			"const_zone",
			"worker_present",
			"parked_vehicle",
			"owner_lesse_tick_box",
			"hit_and_run",
			"proof_of_fin_resp",
			"investigation_complete",
			"owner_lesse",
		},
		Checked:   []string{"☑", "☒"},
		Unchecked: []string{"☐"},
	}
}

// IsCheckboxField reports whether the field type is interpreted as a checkbox.
func (c CheckboxConfig) IsCheckboxField(fieldType string) bool {
	t := strings.ToLower(fieldType)
	if strings.Contains(t, "tick_box") {
		return true
	}
	for _, f := range c.Fields {
		if t == f {
			return true
		}
	}
	return false
}

// Parse interprets a checkbox value. ok is false when the value carries no
// recognizable checkbox marking, in which case the raw value should be kept.
// An empty value is an unchecked box.
func (c CheckboxConfig) Parse(value string) (checked, ok bool) {
	v := strings.TrimSpace(strings.ReplaceAll(value, "\n", " "))
	if v == "" {
		return false, true
	}
	hasChecked := containsAny(v, c.Checked)
	hasUnchecked := containsAny(v, c.Unchecked)
	switch {
	case hasChecked && !hasUnchecked:
		return true, true
	case hasUnchecked && !hasChecked:
		return false, true
	case hasChecked && hasUnchecked:
		// Both glyphs present: the filled one next to Yes/No decides.
		for _, part := range strings.Fields(v) {
			if containsAny(part, c.Checked) {
				rest := part
				for _, g := range c.Checked {
					rest = strings.ReplaceAll(rest, g, "")
				}
				if strings.EqualFold(rest, "no") {
					return false, true
				}
			}
		}
		return true, true
	}
	if strings.Contains(v, "Yes") {
		return true, true
	}
	if strings.Contains(v, "No") {
		return false, true
	}
	return false, false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
