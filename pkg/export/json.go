// Package export renders a processed document into its two output artifacts:
// a structural JSON dump and a multi-sheet workbook.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/crashops/crashextract/pkg/crashdoc"
)

type jsonDocument struct {
	DocumentText string     `json:"document_text"`
	Pages        []jsonPage `json:"pages"`
}

type jsonPage struct {
	PageNumber int                     `json:"page_number"`
	Text       string                  `json:"text"`
	Sections   map[string][]jsonParent `json:"sections"`
}

type jsonParent struct {
	Type        string                 `json:"type"`
	Value       string                 `json:"value"`
	Confidence  float64                `json:"confidence"`
	Decoded     string                 `json:"decoded,omitempty"`
	ChildFields map[string][]jsonChild `json:"child_fields,omitempty"`
}

type jsonChild struct {
	Type       string       `json:"type"`
	Value      string       `json:"value"`
	Confidence float64      `json:"confidence"`
	Decoded    string       `json:"decoded,omitempty"`
	Checked    *bool        `json:"checked,omitempty"`
	Entities   []jsonEntity `json:"entities,omitempty"`
}

type jsonEntity struct {
	Type       string  `json:"type"`
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
	Decoded    string  `json:"decoded,omitempty"`
	Checked    *bool   `json:"checked,omitempty"`
}

// JSON renders the document as indented JSON. Raw values and decoded labels
// are both present; decoded fields are omitted where reconstruction produced
// none.
func JSON(doc *crashdoc.DocumentResult) ([]byte, error) {
	out := jsonDocument{
		DocumentText: doc.Text,
		Pages:        make([]jsonPage, 0, len(doc.Pages)),
	}
	for _, page := range doc.Pages {
		jp := jsonPage{
			PageNumber: page.PageNumber,
			Text:       page.Text,
			Sections:   make(map[string][]jsonParent, len(page.Sections)),
		}
		for section, parents := range page.Sections {
			converted := make([]jsonParent, 0, len(parents))
			for _, parent := range parents {
				converted = append(converted, convertParent(parent))
			}
			jp.Sections[string(section)] = converted
		}
		out.Pages = append(out.Pages, jp)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	return data, nil
}

func convertParent(parent *crashdoc.ParentRecord) jsonParent {
	jp := jsonParent{
		Type:       parent.Type,
		Value:      parent.Value,
		Confidence: parent.Confidence,
		Decoded:    parent.Decoded,
	}
	if len(parent.ChildOrder) > 0 {
		jp.ChildFields = make(map[string][]jsonChild, len(parent.ChildOrder))
	}
	for _, childType := range parent.ChildOrder {
		for _, child := range parent.ChildFields[childType] {
			jc := jsonChild{
				Type:       child.Type,
				Value:      child.Value,
				Confidence: child.Confidence,
				Decoded:    child.Decoded,
				Checked:    child.Checked,
			}
			for _, entity := range child.Entities {
				jc.Entities = append(jc.Entities, jsonEntity{
					Type:       entity.Type,
					Value:      entity.Value,
					Confidence: entity.Confidence,
					Decoded:    entity.Decoded,
					Checked:    entity.Checked,
				})
			}
			jp.ChildFields[childType] = append(jp.ChildFields[childType], jc)
		}
	}
	return jp
}
