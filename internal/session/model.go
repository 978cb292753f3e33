package session

import "time"

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
)

// Kind distinguishes the two session flavours the backend tracks. Both share
// the same lifecycle; only the owning entity and the endpoints differ.
type Kind string

const (
	KindMembership Kind = "membership"
	KindFacility   Kind = "facility"
)

// Session is the backend's check-in/check-out record. Exactly one of
// MembershipID / SubscriptionID is set depending on the kind.
type Session struct {
	ID             int64      `json:"sessionId"`
	MembershipID   int64      `json:"membershipId,omitempty"`
	SubscriptionID int64      `json:"facilitySubscriptionId,omitempty"`
	FacilityID     int64      `json:"facilityId,omitempty"`
	GymID          int64      `json:"gymId,omitempty"`
	Status         Status     `json:"status"`
	CheckInTime    time.Time  `json:"checkInTime"`
	CheckOutTime   *time.Time `json:"checkOutTime,omitempty"`
	VisitDate      *time.Time `json:"visitDate,omitempty"`
	Message        string     `json:"message,omitempty"`
}

// HistoryEntry is one past visit as the backend's history endpoints report
// it. FacilityName is set only for facility sessions; VisitDate comes as a
// plain calendar date.
type HistoryEntry struct {
	ID           int64      `json:"id"`
	GymName      string     `json:"gymName"`
	FacilityName string     `json:"facilityName,omitempty"`
	VisitDate    string     `json:"visitDate,omitempty"`
	CheckInTime  *time.Time `json:"checkInTime,omitempty"`
	CheckOutTime *time.Time `json:"checkOutTime,omitempty"`
	Status       string     `json:"status"`
}

// ActiveInfo is the backend's dashboard-seeding shape for sessions that are
// currently ACTIVE.
type ActiveInfo struct {
	SessionID      int64     `json:"sessionId"`
	MembershipID   int64     `json:"membershipId,omitempty"`
	SubscriptionID int64     `json:"facilitySubscriptionId,omitempty"`
	GymID          int64     `json:"gymId"`
	GymName        string    `json:"gymName"`
	FacilityName   string    `json:"facilityName,omitempty"`
	PlanName       string    `json:"planName"`
	CheckInTime    time.Time `json:"checkInTime"`
}
