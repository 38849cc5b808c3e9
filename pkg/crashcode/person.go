package crashcode

import "strings"

// PersonAttr is one decoded attribute of a person description.
type PersonAttr struct {
	Name  string
	Code  string
	Value string
}

// personDescriptionFields is the positional layout of the person-description
// blob: one whitespace-separated token per field, in this order.
var personDescriptionFields = []string{
	"injury_severity",
	"age",
	"ethnicity",
	"sex",
	"eject",
	"restr",
	"airbag",
	"helmet",
	"sol",
	"alc_spec",
	"drug_spec",
	"drug_result",
	"drug_category",
	"alc_result",
}

// DecodePersonDescription expands the multi-line person-description blob into
// its fourteen positional attributes. Tokens map to fields by position; age is
// kept verbatim, every other token is decoded through its category table.
// Missing trailing tokens yield attributes with empty Code and Value, so the
// result always has exactly fourteen entries.
func DecodePersonDescription(blob string) []PersonAttr {
	tokens := strings.Fields(blob)
	attrs := make([]PersonAttr, len(personDescriptionFields))
	for i, name := range personDescriptionFields {
		attrs[i].Name = name
		if i >= len(tokens) {
			continue
		}
		code := tokens[i]
		attrs[i].Code = code
		if name == "age" {
			attrs[i].Value = code
			continue
		}
		attrs[i].Value = Lookup(name, code)
	}
	return attrs
}
