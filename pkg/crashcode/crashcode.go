// Package crashcode decodes the short coded values used on Texas Peace
// Officer's Crash Reports into human-readable labels.
//
// Categories are closed static tables keyed by the extracted field's own type
// name (rdwy_sys, veh_color, person_type, ...). Lookup is total: an unknown
// category or an unknown code always falls back to returning the code itself,
// so novel codes degrade to passthrough instead of failing extraction.
//
// The package also provides DecodePersonDescription, which expands the
// single multi-line "person description" blob emitted by the extractor into
// its fourteen positional attributes.
package crashcode

import "strings"

// Lookup returns the label for code within the named category.
// If the category is unknown, or the code has no entry, code is returned
// unchanged. It never fails.
func Lookup(category, code string) string {
	table, ok := categories[category]
	if !ok {
		return code
	}
	if label, ok := table[code]; ok {
		return label
	}
	return code
}

// Known reports whether category is one of the closed code categories.
func Known(category string) bool {
	_, ok := categories[category]
	return ok
}

// DecodeMultiple decodes a string holding several codes separated by spaces
// or commas, returning one label per code in input order.
func DecodeMultiple(category, codes string) []string {
	if codes == "" {
		return nil
	}
	fields := strings.Fields(strings.ReplaceAll(codes, ",", " "))
	labels := make([]string, 0, len(fields))
	for _, code := range fields {
		labels = append(labels, Lookup(category, code))
	}
	return labels
}

// categories maps field-type names to their code tables. The dispatch is a
// single static table rather than anything name-driven so that an
// unrecognized category is an ordinary map miss.
var categories = map[string]map[string]string{
	// location and roadway
	"rdwy_sys":                   roadwaySystem,
	"rdwy_part":                  roadwayPart,
	"direction":                  direction,
	"dir_of_traffic":             direction,
	"dir_from_int_or_ref_marker": direction,
	"street_suffix":              streetSuffix,

	// vehicle unit
	"unit_desc":                unitDescription,
	"veh_color":                vehicleColor,
	"body_style":               bodyStyle,
	"autonomous_unit":          autonomousUnit,
	"autonomous_level_engaged": autonomousLevel,
	"fin_resp_type":            financialResponsibility,
	"vehicle_damage_rating":    vehicleDamageRating,
	"vehicle_damage_rating2":   vehicleDamageRating,

	// driver and occupants
	"dl_id_type":           driverLicenseType,
	"dl_class":             driverLicenseClass,
	"dl_rest":              driverLicenseRestriction,
	"person_type":          personType,
	"person_seat_position": seatPosition,
	"injury_severity":      injurySeverity,
	"ethnicity":            ethnicity,
	"sex":                  sex,
	"eject":                ejected,
	"restr":                restraint,
	"airbag":               airbag,
	"helmet":               helmet,
	"sol":                  sobrietyOfLastDrink,
	"alc_spec":             substanceSpec,
	"alc_result":           substanceResult,
	"drug_spec":            substanceSpec,
	"drug_result":          substanceResult,
	"drug_category":        drugCategory,

	// factors and conditions
	"weather_cond":                      weatherCondition,
	"light_cond":                        lightCondition,
	"surface_condition":                 surfaceCondition,
	"roadway_type":                      roadwayType,
	"roadway_alignment":                 roadwayAlignment,
	"entering_roads":                    enteringRoads,
	"traffic_control":                   trafficControl,
	"contributing_contributing_factors": contributingFactor,
	"may_have_contributing_factors":     contributingFactor,
	"contributing_vehicle_defects":      contributingFactor,
	"may_have_contrib_vehicle_defects":  contributingFactor,
}
