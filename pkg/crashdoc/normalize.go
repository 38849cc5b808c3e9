package crashdoc

import "strings"

// SectionFor resolves the section a field type belongs to. The type (or, for
// nested types, the portion before the first slash) must start with the
// section name; sections are tried in the order of Sections and the first
// match wins. Types matching no section are reported as unassignable.
func SectionFor(fieldType string) (Section, bool) {
	t := strings.ToLower(fieldType)
	for _, section := range Sections {
		if strings.HasPrefix(t, string(section)) {
			return section, true
		}
	}
	if i := strings.Index(t, "/"); i >= 0 {
		base := t[:i]
		for _, section := range Sections {
			if strings.HasPrefix(base, string(section)) {
				return section, true
			}
		}
	}
	return "", false
}

// Normalize folds the extractor's flat field list into per-section parent
// records. Each top-level field becomes one ParentRecord in its section, in
// document order; its children become ChildRecords grouped by type; children
// of children become GrandchildEntities. Deeper nesting is discarded. Fields
// whose type matches no section are dropped and counted in unmapped.
func Normalize(raw []ExtractedField) (sections map[Section][]*ParentRecord, unmapped int) {
	sections = make(map[Section][]*ParentRecord)
	for i := range raw {
		field := &raw[i]
		section, ok := SectionFor(field.Type)
		if !ok {
			unmapped++
			continue
		}
		parent := &ParentRecord{
			Type:       field.Type,
			Value:      field.Value,
			Confidence: field.Confidence,
		}
		for j := range field.Children {
			child := &field.Children[j]
			rec := &ChildRecord{
				Type:       child.Type,
				Value:      child.Value,
				Confidence: child.Confidence,
			}
			for _, grand := range child.Children {
				rec.Entities = append(rec.Entities, GrandchildEntity{
					Type:       grand.Type,
					Value:      grand.Value,
					Confidence: grand.Confidence,
				})
			}
			parent.AddChild(rec)
		}
		sections[section] = append(sections[section], parent)
	}
	return sections, unmapped
}
