package crashreport

import (
	"sort"
	"strings"

	"github.com/crashops/crashextract/pkg/crashcode"
	"github.com/crashops/crashextract/pkg/crashdoc"
)

// Person is one occupant of a vehicle unit, assembled from a person_num
// child's grandchild entities.
type Person struct {
	Name      string
	TypeCode  string
	TypeLabel string
	SeatCode  string
	SeatLabel string
	// Description holds the fourteen decoded person-description attributes,
	// or nil when the record carried no description blob.
	Description []crashcode.PersonAttr
}

// Persons splits a vehicle record's occupants into the driver and the
// passengers. The driver is the person whose person_type code is "1", never
// the first listed. Passengers are ordered by decoded seat position, ties
// keeping their appearance order.
func Persons(vehicle *crashdoc.ParentRecord) (driver *Person, passengers []*Person) {
	for _, child := range vehicle.ChildFields["person_num"] {
		person := personFromEntities(child.Entities)
		if person.TypeCode == "1" && driver == nil {
			driver = person
			continue
		}
		passengers = append(passengers, person)
	}
	sort.SliceStable(passengers, func(i, j int) bool {
		return passengers[i].SeatLabel < passengers[j].SeatLabel
	})
	return driver, passengers
}

func personFromEntities(entities []crashdoc.GrandchildEntity) *Person {
	person := &Person{}
	for _, entity := range entities {
		value := strings.TrimSpace(entity.Value)
		switch entity.Type {
		case "person_name":
			person.Name = value
		case "person_type":
			person.TypeCode = value
			person.TypeLabel = crashcode.Lookup("person_type", value)
		case "person_seat_position":
			person.SeatCode = value
			person.SeatLabel = crashcode.Lookup("person_seat_position", value)
		case "person_description":
			person.Description = crashcode.DecodePersonDescription(entity.Value)
		}
	}
	return person
}
