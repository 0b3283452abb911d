package service

import "testing"

func TestDetectIntentClassifiesPOIQueries(t *testing.T) {
	for _, query := range []string{
		"Hotel Annapurna Kathmandu",
		"restaurants near thamel",
		"city hospital",
		"wedding venue pokhara",
	} {
		intent := DetectIntent(query)
		if !intent.IsPOI {
			t.Errorf("expected %q to be classified as POI", query)
		}
		if intent.Kind != IntentPOI {
			t.Errorf("expected kind poi for %q, got %s", query, intent.Kind)
		}
		if len(intent.MatchedKeywords) == 0 {
			t.Errorf("expected matched keywords for %q", query)
		}
	}
}

func TestDetectIntentClassifiesAddressQueries(t *testing.T) {
	intent := DetectIntent("12 baker street")
	if !intent.IsAddress {
		t.Fatal("expected address flag for street query with house number")
	}
	if intent.Kind != IntentAddress {
		t.Fatalf("expected kind address, got %s", intent.Kind)
	}

	// A digit alone marks the query address-like even without keywords.
	if !DetectIntent("kathmandu 44600").IsAddress {
		t.Fatal("expected digit-bearing query to be address-like")
	}
}

func TestDetectIntentClassifiesShortQueriesAsCity(t *testing.T) {
	intent := DetectIntent("Kathmandu")
	if !intent.IsCity {
		t.Fatal("expected single-word query to be city-like")
	}
	if intent.Kind != IntentCity {
		t.Fatalf("expected kind city, got %s", intent.Kind)
	}

	if !DetectIntent("New Delhi").IsCity {
		t.Fatal("expected two-word query to be city-like")
	}
	if DetectIntent("some long winding description").IsCity {
		t.Fatal("expected four-word query not to be city-like")
	}
}

func TestDetectIntentPOIWinsOverAddress(t *testing.T) {
	// Both flags set, but POI takes precedence for Kind.
	intent := DetectIntent("hotel on main street 5")
	if !intent.IsPOI || !intent.IsAddress {
		t.Fatal("expected both poi and address flags")
	}
	if intent.Kind != IntentPOI {
		t.Fatalf("expected poi precedence, got %s", intent.Kind)
	}
}

func TestDetectIntentNearbyWithoutKeywords(t *testing.T) {
	intent := DetectIntent("things to do near me")
	if intent.Kind != IntentNearby {
		t.Fatalf("expected kind nearby, got %s", intent.Kind)
	}
}

func TestDetectIntentIsCaseInsensitive(t *testing.T) {
	if !DetectIntent("HOTEL EVEREST").IsPOI {
		t.Fatal("expected uppercase query to match poi keywords")
	}
}
