// Package crashreport turns normalized crash report trees into decoded
// records: checkbox interpretation, code decoding, composite street address
// assembly, narrative cleanup, geocoding augmentation, cross-section unit
// linking, and per-unit person sub-records.
package crashreport

import (
	"context"
	"strings"

	"github.com/crashops/crashextract/pkg/crashcode"
	"github.com/crashops/crashextract/pkg/crashdoc"
)

// Place is the subset of a geocoding result used for augmentation.
type Place struct {
	CountyFull string
	State      string
}

// Geocoder resolves a street address to candidate places. Implementations
// return an empty slice when nothing matches.
type Geocoder interface {
	Geocode(ctx context.Context, address string) ([]Place, error)
}

// Reconstructor applies the section-specific decoding rules. All behavior is
// carried in the struct; there is no package-level state.
type Reconstructor struct {
	Checkboxes CheckboxConfig
	// Geocoder is optional. When nil, no augmentation fields are produced.
	Geocoder Geocoder
	// GeocodeTypes lists the child field types whose values trigger a
	// geocoder call.
	GeocodeTypes []string
}

// New returns a Reconstructor with the default checkbox configuration and
// geocode trigger fields, and no geocoder.
func New() *Reconstructor {
	return &Reconstructor{
		Checkboxes:   DefaultCheckboxConfig(),
		GeocodeTypes: []string{"country_name", "address"},
	}
}

// Reconstruct decodes one page's sections in place. Raw values are never
// overwritten: decoded labels land in Decoded, checkbox states in Checked,
// and synthesized fields (street_address, geocode augmentation) are appended
// as new children.
func (r *Reconstructor) Reconstruct(ctx context.Context, sections map[crashdoc.Section][]*crashdoc.ParentRecord) {
	for section, parents := range sections {
		for _, parent := range parents {
			r.decodeParent(parent)
			if section == crashdoc.SectionIdentLocation {
				r.assembleAddress(parent)
				r.augmentFromGeocoder(ctx, parent)
			}
			if section == crashdoc.SectionInvestigator {
				cleanNarratives(parent)
			}
		}
	}
}

func (r *Reconstructor) decodeParent(parent *crashdoc.ParentRecord) {
	for _, childType := range parent.ChildOrder {
		for _, child := range parent.ChildFields[childType] {
			r.decodeChild(child)
		}
	}
}

// Factor fields may hold several codes in one value; they decode per code.
var multiCodeFields = map[string]bool{
	"contributing_contributing_factors": true,
	"may_have_contributing_factors":     true,
	"contributing_vehicle_defects":      true,
	"may_have_contrib_vehicle_defects":  true,
}

func (r *Reconstructor) decodeChild(child *crashdoc.ChildRecord) {
	if r.Checkboxes.IsCheckboxField(child.Type) {
		if checked, ok := r.Checkboxes.Parse(child.Value); ok {
			state := checked
			child.Checked = &state
		}
	} else if multiCodeFields[child.Type] {
		child.Decoded = strings.Join(crashcode.DecodeMultiple(child.Type, child.Value), ", ")
	} else if crashcode.Known(child.Type) {
		child.Decoded = crashcode.Lookup(child.Type, strings.TrimSpace(child.Value))
	}
	for i := range child.Entities {
		entity := &child.Entities[i]
		if r.Checkboxes.IsCheckboxField(entity.Type) {
			if checked, ok := r.Checkboxes.Parse(entity.Value); ok {
				state := checked
				entity.Checked = &state
			}
			continue
		}
		if crashcode.Known(entity.Type) {
			entity.Decoded = crashcode.Lookup(entity.Type, strings.TrimSpace(entity.Value))
		}
	}
}

// assembleAddress accumulates the address components of one location record
// in document order and synthesizes a street_address child when the suffix
// arrives. Empty components collapse so the join never doubles spaces.
func (r *Reconstructor) assembleAddress(parent *crashdoc.ParentRecord) {
	components := map[string]string{}
	order := append([]string(nil), parent.ChildOrder...)
	for _, childType := range order {
		switch childType {
		case "block_num", "street_prefix", "street_name":
			components[childType] = strings.TrimSpace(parent.FirstChildValue(childType))
		case "street_suffix":
			suffix := strings.TrimSpace(parent.FirstChildValue(childType))
			address := joinNonEmpty(
				components["block_num"],
				components["street_prefix"],
				components["street_name"],
				suffix,
			)
			if address == "" {
				continue
			}
			parent.AddChild(&crashdoc.ChildRecord{
				Type:  "street_address",
				Value: address,
			})
		}
	}
}

func (r *Reconstructor) augmentFromGeocoder(ctx context.Context, parent *crashdoc.ParentRecord) {
	if r.Geocoder == nil {
		return
	}
	for _, trigger := range r.GeocodeTypes {
		value := strings.TrimSpace(parent.FirstChildValue(trigger))
		if value == "" {
			continue
		}
		places, err := r.Geocoder.Geocode(ctx, value)
		if err != nil || len(places) == 0 {
			continue
		}
		place := places[0]
		if place.CountyFull != "" {
			parent.AddChild(&crashdoc.ChildRecord{
				Type:  trigger + "_county_full",
				Value: place.CountyFull,
			})
		}
		if place.State != "" {
			parent.AddChild(&crashdoc.ChildRecord{
				Type:  trigger + "_state",
				Value: place.State,
			})
		}
	}
}

func cleanNarratives(parent *crashdoc.ParentRecord) {
	for _, child := range parent.ChildFields["investigator_narrative_opinion"] {
		child.Decoded = CleanNarrative(child.Value)
	}
	if parent.Type == "investigator_narrative_opinion" {
		// Some extractor versions emit the narrative as its own parent.
		parent.Decoded = CleanNarrative(parent.Value)
	}
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
