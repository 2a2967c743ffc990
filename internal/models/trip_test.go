package models

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from TripStatus
		to   TripStatus
		want bool
	}{
		{TripDraft, TripDispatched, true},
		{TripDraft, TripCompleted, true},
		{TripDraft, TripCancelled, true},
		{TripDispatched, TripCompleted, true},
		{TripDispatched, TripCancelled, true},
		{TripDispatched, TripDraft, false},
		{TripDispatched, TripDispatched, false},
		{TripCompleted, TripDispatched, false},
		{TripCompleted, TripCancelled, false},
		{TripCancelled, TripDraft, false},
		{TripCancelled, TripDispatched, false},
	}

	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestValidTripStatus(t *testing.T) {
	for _, s := range []string{"Draft", "Dispatched", "Completed", "Cancelled"} {
		if !ValidTripStatus(s) {
			t.Errorf("ValidTripStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "draft", "Done", "DISPATCHED"} {
		if ValidTripStatus(s) {
			t.Errorf("ValidTripStatus(%q) = true, want false", s)
		}
	}
}
