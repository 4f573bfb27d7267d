package entities

import (
	"log"
	"strings"
)

// TripType is the kind of trip a boat can be booked for.
type TripType string

const (
	TripTypeShort     TripType = "short"
	TripTypeDay       TripType = "day"
	TripTypeSunrise   TripType = "sunrise"
	TripTypeOvernight TripType = "overnight"
)

// tripTypeCodes maps the integer codes submitted at the registration
// boundary to canonical trip-type names.
var tripTypeCodes = map[int]TripType{
	1: TripTypeShort,
	2: TripTypeDay,
	3: TripTypeSunrise,
	4: TripTypeOvernight,
}

// TripTypesFromCodes converts submitted integer codes to trip types.
// Unknown codes are dropped from the result and logged.
func TripTypesFromCodes(codes []int) []TripType {
	types := make([]TripType, 0, len(codes))
	for _, code := range codes {
		tt, ok := tripTypeCodes[code]
		if !ok {
			log.Printf("Dropping unknown trip type code %d", code)
			continue
		}
		types = append(types, tt)
	}
	return types
}

// JoinTripTypes renders trip types as the comma-joined string stored
// on the boat record.
func JoinTripTypes(types []TripType) string {
	parts := make([]string, len(types))
	for i, tt := range types {
		parts[i] = string(tt)
	}
	return strings.Join(parts, ",")
}

// SplitTripTypes parses the stored comma-joined representation.
func SplitTripTypes(s string) []TripType {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	types := make([]TripType, len(parts))
	for i, p := range parts {
		types[i] = TripType(p)
	}
	return types
}
