package service

import (
	"strings"
	"unicode"
)

// IntentKind is the inferred purpose category of a search query.
type IntentKind int

const (
	IntentCity IntentKind = iota
	IntentPOI
	IntentAddress
	IntentNearby
	IntentLandmark
)

func (k IntentKind) String() string {
	switch k {
	case IntentPOI:
		return "poi"
	case IntentAddress:
		return "address"
	case IntentNearby:
		return "nearby"
	case IntentLandmark:
		return "landmark"
	default:
		return "city"
	}
}

// Intent is the classification of a free-text query. Kind picks a single
// bucket by precedence, but the boolean flags are kept independently:
// a query can be both POI-like and address-like, and the scorer consumes
// the flags rather than Kind alone.
type Intent struct {
	Kind            IntentKind
	MatchedKeywords []string
	IsPOI           bool
	IsAddress       bool
	IsCity          bool
}

// poiKeywords is the curated vocabulary that marks a query as a
// point-of-interest search. Substring matching against the lower-cased
// query is intentional: "steakhouse" matches "house" queries too rarely
// to matter, while "hotels near thamel" must match "hotel".
var poiKeywords = []string{
	// Accommodation
	"hotel", "resort", "inn", "lodge", "motel", "hostel", "guesthouse", "guest house",
	"bed and breakfast", "bnb", "cottage", "villa", "apartment", "airbnb", "homestay",
	"camping", "campsite", "resort hotel", "beach resort", "mountain resort",

	// Food & Drink
	"restaurant", "cafe", "coffee", "bar", "pub", "bistro", "diner", "eatery",
	"food court", "canteen", "cafeteria", "bakery", "pizzeria", "steakhouse",
	"fast food", "buffet", "lounge", "nightclub", "brewery", "winery",

	// Shopping
	"mall", "shopping center", "shopping centre", "market", "supermarket", "store",
	"shop", "boutique", "plaza", "arcade", "bazaar", "outlet", "showroom",

	// Healthcare
	"hospital", "clinic", "medical center", "pharmacy", "doctor", "dentist",
	"health center", "dispensary", "nursing home", "medical clinic",

	// Education
	"school", "college", "university", "institute", "academy", "library",
	"training center", "coaching center", "kindergarten", "preschool",

	// Entertainment & Recreation
	"park", "garden", "stadium", "arena", "theater", "theatre", "cinema",
	"multiplex", "museum", "gallery", "zoo", "aquarium", "amusement park",
	"theme park", "water park", "playground", "sports complex", "gym",
	"fitness center", "spa", "salon", "swimming pool", "club",

	// Transportation
	"airport", "station", "railway station", "train station", "bus station",
	"metro station", "subway", "terminal", "depot", "taxi stand", "parking",

	// Religious & Cultural
	"temple", "church", "mosque", "gurudwara", "monastery", "shrine",
	"cathedral", "chapel", "synagogue", "pagoda",

	// Services
	"bank", "atm", "post office", "police station", "fire station",
	"government office", "embassy", "consulate", "court", "office",

	// Landmarks & Attractions
	"monument", "memorial", "tower", "fort", "palace", "castle",
	"heritage site", "tourist spot", "viewpoint", "landmark", "attraction",
	"beach", "lake", "river", "waterfall", "hill station", "valley",

	// Events & Venues
	"convention center", "conference hall", "banquet hall", "auditorium",
	"event venue", "marriage hall", "wedding venue", "party hall",

	// Specific Business Types
	"petrol pump", "gas station", "car wash", "garage", "workshop",
	"barber", "laundry", "dry cleaning", "tailor",
}

// addressKeywords marks a query as a street-address search. A digit
// anywhere in the query (house or street number) has the same effect.
var addressKeywords = []string{
	"road", "street", "nagar", "colony", "sector", "block",
	"avenue", "lane", "plaza", "tower", "building", "house",
	"flat", "apartment", "society", "enclave", "extension",
	"vihar", "puram", "ganj", "chowk", "circle",
}

// DetectIntent classifies a raw query. Precedence for Kind is
// POI > Address > Nearby ("near"/"around") > City; the boolean flags are
// set independently of that resolution.
func DetectIntent(query string) Intent {
	lowerQuery := strings.ToLower(query)

	var matched []string
	for _, kw := range poiKeywords {
		if strings.Contains(lowerQuery, kw) {
			matched = append(matched, kw)
		}
	}

	isPOI := len(matched) > 0
	isAddress := containsAnyKeyword(lowerQuery, addressKeywords) || containsDigit(query)
	isCity := len(strings.Fields(query)) <= 2 && !isPOI && !isAddress

	kind := IntentCity
	switch {
	case isPOI:
		kind = IntentPOI
	case isAddress:
		kind = IntentAddress
	case strings.Contains(lowerQuery, "near") || strings.Contains(lowerQuery, "around"):
		kind = IntentNearby
	}

	return Intent{
		Kind:            kind,
		MatchedKeywords: matched,
		IsPOI:           isPOI,
		IsAddress:       isAddress,
		IsCity:          isCity,
	}
}

func containsAnyKeyword(lowerQuery string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowerQuery, kw) {
			return true
		}
	}
	return false
}

func containsDigit(query string) bool {
	return strings.ContainsFunc(query, unicode.IsDigit)
}
