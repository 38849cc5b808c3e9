// Package crashdoc holds the data model for extracted crash report pages and
// the normalizer that folds the extractor's flat entity output into the
// three-level section tree the rest of the pipeline works on.
package crashdoc

// ExtractedField is one entity as returned by the document extractor. Type is
// already normalized (lowercase, underscores for spaces). NormalizedValue is
// present only when the extractor supplied one.
type ExtractedField struct {
	Type            string
	Value           string
	Confidence      float64
	NormalizedValue *string
	Children        []ExtractedField
}

// Section identifies one of the fixed crash report sections.
type Section string

const (
	SectionCharges       Section = "charges"
	SectionCMV           Section = "cmv"
	SectionDamage        Section = "damage"
	SectionDisposition   Section = "disposition_of_injured_killed"
	SectionFactors       Section = "factors_conditions"
	SectionIdentLocation Section = "identification_location"
	SectionInvestigator  Section = "investigator"
	SectionNarrative     Section = "narrative"
	SectionVehicleDriver Section = "vehicle_driver_persons"
)

// Sections lists every section in match-priority order. SectionFor checks them
// in this order and the first prefix match wins.
var Sections = []Section{
	SectionCharges,
	SectionCMV,
	SectionDamage,
	SectionDisposition,
	SectionFactors,
	SectionIdentLocation,
	SectionInvestigator,
	SectionNarrative,
	SectionVehicleDriver,
}

// GrandchildEntity is a leaf of the retained tree. Depth is capped here:
// anything nested below a grandchild in the extractor output is discarded.
// Decoded and Checked are filled by record reconstruction; Value always keeps
// the raw extracted text.
type GrandchildEntity struct {
	Type       string
	Value      string
	Confidence float64
	Decoded    string
	Checked    *bool
}

// ChildRecord is a typed child of a parent record together with its retained
// grandchildren. Decoded and Checked are filled by record reconstruction;
// Value always keeps the raw extracted text.
type ChildRecord struct {
	Type       string
	Value      string
	Confidence float64
	Decoded    string
	Checked    *bool
	Entities   []GrandchildEntity
}

// ParentRecord is a top-level entity of a section. Children are grouped by
// type in ChildFields; ChildOrder records each child type in first-seen
// document order, since consumers (composite address assembly in particular)
// depend on cross-type ordering that a bare map would lose.
type ParentRecord struct {
	Type        string
	Value       string
	Confidence  float64
	Decoded     string
	ChildFields map[string][]*ChildRecord
	ChildOrder  []string
}

// AddChild appends a child record, registering its type in ChildOrder on first
// appearance.
func (p *ParentRecord) AddChild(c *ChildRecord) {
	if p.ChildFields == nil {
		p.ChildFields = make(map[string][]*ChildRecord)
	}
	if _, seen := p.ChildFields[c.Type]; !seen {
		p.ChildOrder = append(p.ChildOrder, c.Type)
	}
	p.ChildFields[c.Type] = append(p.ChildFields[c.Type], c)
}

// FirstChildValue returns the value of the first child of the given type, or
// "" when the parent has none.
func (p *ParentRecord) FirstChildValue(childType string) string {
	entries := p.ChildFields[childType]
	if len(entries) == 0 {
		return ""
	}
	return entries[0].Value
}

// PageResult is the structured output for one successfully processed page.
type PageResult struct {
	PageNumber int
	Text       string
	Sections   map[Section][]*ParentRecord
}

// DocumentResult aggregates per-page results for a whole document. Pages holds
// only the pages that succeeded, in ascending page order; Failed counts the
// pages that were dropped.
type DocumentResult struct {
	Text       string
	Pages      []*PageResult
	TotalPages int
	Failed     int
}
