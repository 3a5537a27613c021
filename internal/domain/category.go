package domain

import "strings"

// Keyword tables for category inference. Matching is case-insensitive
// substring search over the activity name.
var (
	transportKeywords = []string{
		"flight", "fly", "plane", "airport", "train", "rail", "bus",
		"taxi", "cab", "uber", "drive", "car rental", "ferry", "boat",
		"transfer", "metro", "subway", "tram",
	}
	accommodationKeywords = []string{
		"hotel", "hostel", "motel", "airbnb", "check-in", "check in",
		"checkout", "check out", "resort", "guesthouse", "lodge",
		"apartment", "stay", "camping",
	}
	diningKeywords = []string{
		"breakfast", "brunch", "lunch", "dinner", "restaurant", "cafe",
		"coffee", "bar", "food", "eat", "tasting", "bistro", "pub",
	}
	sightseeingKeywords = []string{
		"museum", "gallery", "tour", "visit", "temple", "church",
		"cathedral", "castle", "palace", "park", "garden", "beach",
		"hike", "trek", "monument", "landmark", "market", "zoo",
		"aquarium", "viewpoint", "sightseeing",
	}
)

// InferCategory classifies an activity from its name, transport mode and
// accommodation details. It is a pure function: the store re-runs it on
// every write that touches one of the three inputs.
//
// Precedence: transport > accommodation > dining > sightseeing > other.
func InferCategory(name, transportMode, accommodationDetails string) Category {
	lower := strings.ToLower(name)

	if strings.TrimSpace(transportMode) != "" || containsAny(lower, transportKeywords) {
		return CategoryTransport
	}
	if strings.TrimSpace(accommodationDetails) != "" || containsAny(lower, accommodationKeywords) {
		return CategoryAccommodation
	}
	if containsAny(lower, diningKeywords) {
		return CategoryDining
	}
	if containsAny(lower, sightseeingKeywords) {
		return CategorySightseeing
	}
	return CategoryOther
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
