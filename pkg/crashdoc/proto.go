package crashdoc

import (
	"strings"

	"cloud.google.com/go/documentai/apiv1/documentaipb"
)

// FieldsFromProto converts a Document AI response into the flat field list
// plus the page's full OCR text. Entity types are normalized to lowercase
// with underscores for spaces. Two levels of nested properties are retained,
// matching the depth Normalize keeps.
func FieldsFromProto(doc *documentaipb.Document) ([]ExtractedField, string) {
	if doc == nil {
		return nil, ""
	}
	fields := make([]ExtractedField, 0, len(doc.Entities))
	for _, entity := range doc.Entities {
		if entity.Type == "" {
			continue
		}
		field := ExtractedField{
			Type:       normalizeType(entity.Type),
			Value:      entity.MentionText,
			Confidence: float64(entity.Confidence),
		}
		if nv := entity.NormalizedValue; nv != nil && nv.Text != "" {
			text := nv.Text
			field.NormalizedValue = &text
		}
		for _, child := range entity.Properties {
			childField := ExtractedField{
				Type:       normalizeType(child.Type),
				Value:      child.MentionText,
				Confidence: float64(child.Confidence),
			}
			for _, grand := range child.Properties {
				childField.Children = append(childField.Children, ExtractedField{
					Type:       normalizeType(grand.Type),
					Value:      grand.MentionText,
					Confidence: float64(grand.Confidence),
				})
			}
			field.Children = append(field.Children, childField)
		}
		fields = append(fields, field)
	}
	return fields, doc.Text
}

func normalizeType(t string) string {
	return strings.ReplaceAll(strings.ToLower(t), " ", "_")
}
