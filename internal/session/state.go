package session

import (
	"time"

	"fitswitch/internal/visitcache"
)

// VisitState is the UI-facing verdict for one membership or facility
// subscription on one calendar day.
type VisitState string

const (
	// StateNoMembership is assigned by callers that find no eligible
	// membership; DeriveVisitState itself never returns it.
	StateNoMembership VisitState = "NO_MEMBERSHIP"

	StateNotVisitedToday VisitState = "NOT_VISITED_TODAY"
	StateActiveSession   VisitState = "ACTIVE_SESSION"
	StateCompletedToday  VisitState = "COMPLETED_TODAY"
)

// SameDay reports whether a and b fall on the same calendar day in their own
// locations. Year, month and day fields are compared as-is; there is no
// timezone normalization.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// DeriveVisitState combines the most recent server session (nil when the
// lookup failed or returned nothing) with the local visit record (nil when
// absent or malformed) into the day's verdict.
//
// The active flag comes from server truth only: a local record can confirm a
// completed visit, but never that an open session still exists, since the
// server may have force-closed it. A same-day local record with no server
// session still yields CompletedToday, which suppresses a duplicate check-in
// while the server read is unavailable.
//
// Pure and total: no side effects, never fails.
func DeriveVisitState(today time.Time, server *Session, local *visitcache.Record) VisitState {
	if server != nil && server.Status == StatusActive {
		return StateActiveSession
	}

	if hasVisitOn(today, server, local) {
		return StateCompletedToday
	}

	return StateNotVisitedToday
}

func hasVisitOn(day time.Time, server *Session, local *visitcache.Record) bool {
	if server != nil {
		if server.VisitDate != nil && SameDay(*server.VisitDate, day) {
			return true
		}
		if !server.CheckInTime.IsZero() && SameDay(server.CheckInTime, day) {
			return true
		}
	}

	return local != nil && SameDay(local.VisitDate, day)
}
