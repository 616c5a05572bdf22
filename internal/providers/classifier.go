package providers

import "strings"

// Canonical weather-type names, ordered by severity. Aggregation picks the
// maximum ordinal across vendors, so SNOW dominates RAIN dominates CLEAR.
const (
	ConditionClear = "CLEAR"
	ConditionRain  = "RAIN"
	ConditionSnow  = "SNOW"
)

var conditionOrdinals = map[string]int{
	ConditionClear: 0,
	ConditionRain:  1,
	ConditionSnow:  2,
}

var conditionsByOrdinal = map[int]string{
	0: ConditionClear,
	1: ConditionRain,
	2: ConditionSnow,
}

func ConditionOrdinal(name string) int {
	return conditionOrdinals[name]
}

func ConditionByOrdinal(ordinal int) string {
	if name, ok := conditionsByOrdinal[ordinal]; ok {
		return name
	}
	return ConditionClear
}

// SNOW is checked before RAIN: a combined snow-and-rain condition classifies
// as SNOW.
var classificationOrder = []string{ConditionSnow, ConditionRain}

// Aeris reports coded conditions, e.g. "::S" or "RW" (see their weather-codes
// reference).
var aerisConditionCodes = map[string][]string{
	ConditionSnow: {"BS", "BY", "IP", "RS", "SI", "WM", "S", "SW"},
	ConditionRain: {"A", "IC", "L", "R", "RW", "T", "ZL", "ZR", "ZY"},
}

// Visual Crossing reports human-readable condition phrases, comma separated
// when several apply.
var visualCrossingConditions = map[string][]string{
	ConditionSnow: {
		"Blowing Or Drifting Snow",
		"Ice",
		"Heavy Rain And Snow",
		"Light Rain And Snow",
		"Snow",
		"Snow And Rain Showers",
		"Snow Showers",
		"Heavy Snow",
		"Light Snow",
	},
	ConditionRain: {
		"Drizzle",
		"Heavy Drizzle",
		"Light Drizzle",
		"Heavy Drizzle/Rain",
		"Light Drizzle/Rain",
		"Freezing Drizzle/Freezing Rain",
		"Heavy Freezing Drizzle/Freezing Rain",
		"Light Freezing Drizzle/Freezing Rain",
		"Heavy Freezing Rain",
		"Light Freezing Rain",
		"Hail Showers",
		"Lightning Without Thunder",
		"Rain",
		"Rain Showers",
		"Heavy Rain",
		"Light Rain",
		"Squalls",
		"Thunderstorm",
		"Diamond Dust",
		"Hail",
	},
}

// Classify maps a vendor's raw condition text to CLEAR, RAIN or SNOW.
//
// The text is split on the vendor's delimiter into a set of trimmed tokens.
// A category matches when the token set has more than one element and
// intersects the category's phrase set, or when the untouched text equals one
// of the phrases exactly. The first match in classificationOrder wins;
// anything unrecognized is CLEAR.
func Classify(vendorTag, conditionText string) string {
	delimiter := ","
	phrases := visualCrossingConditions
	if vendorTag == TagAeris {
		delimiter = ":"
		phrases = aerisConditionCodes
	}

	tokens := make(map[string]struct{})
	for _, token := range strings.Split(conditionText, delimiter) {
		tokens[strings.TrimSpace(token)] = struct{}{}
	}

	for _, name := range classificationOrder {
		if matchesCondition(tokens, conditionText, phrases[name]) {
			return name
		}
	}
	return ConditionClear
}

func matchesCondition(tokens map[string]struct{}, fullText string, known []string) bool {
	for _, phrase := range known {
		if phrase == fullText {
			return true
		}
		if len(tokens) > 1 {
			if _, ok := tokens[phrase]; ok {
				return true
			}
		}
	}
	return false
}
