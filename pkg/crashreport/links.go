package crashreport

import (
	"strings"

	"github.com/crashops/crashextract/pkg/crashdoc"
)

// Related holds the records from other sections that reference a vehicle
// unit, each slice in document order. A record appearing twice is included
// twice.
type Related struct {
	Factors      []*crashdoc.ParentRecord
	Charges      []*crashdoc.ParentRecord
	Dispositions []*crashdoc.ParentRecord
}

// RelatedRecords scans the factors_conditions, charges, and
// disposition_of_injured_killed sections for records whose unit reference
// field equals unitNum. Matching is textual equality of the raw values; the
// reference fields are never decoded, so "2" compares against "2".
func RelatedRecords(sections map[crashdoc.Section][]*crashdoc.ParentRecord, unitNum string) Related {
	unitNum = strings.TrimSpace(unitNum)
	if unitNum == "" {
		return Related{}
	}
	return Related{
		Factors:      matchingParents(sections[crashdoc.SectionFactors], "unit_num_contributing", unitNum),
		Charges:      matchingParents(sections[crashdoc.SectionCharges], "unit_num_charges", unitNum),
		Dispositions: matchingParents(sections[crashdoc.SectionDisposition], "unit_num_disp", unitNum),
	}
}

func matchingParents(parents []*crashdoc.ParentRecord, refType, unitNum string) []*crashdoc.ParentRecord {
	var matched []*crashdoc.ParentRecord
	for _, parent := range parents {
		if referencesUnit(parent, refType, unitNum) {
			matched = append(matched, parent)
		}
	}
	return matched
}

// referencesUnit looks for the reference field among the parent's children
// and their grandchild entities; the forms place it at either depth.
func referencesUnit(parent *crashdoc.ParentRecord, refType, unitNum string) bool {
	for _, childType := range parent.ChildOrder {
		for _, child := range parent.ChildFields[childType] {
			if child.Type == refType && strings.TrimSpace(child.Value) == unitNum {
				return true
			}
			for _, entity := range child.Entities {
				if entity.Type == refType && strings.TrimSpace(entity.Value) == unitNum {
					return true
				}
			}
		}
	}
	return false
}
