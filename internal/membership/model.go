package membership

import "time"

// Membership and unsubscribe-request statuses as the backend reports them.
const (
	StatusActive    = "ACTIVE"
	StatusExpired   = "EXPIRED"
	StatusCancelled = "CANCELLED"

	RequestPending  = "PENDING"
	RequestApproved = "APPROVED"
	RequestRejected = "REJECTED"
)

// Membership is one row of the member's history. The backend reports the gym
// by name only, which is why gym identity sometimes needs resolving through
// the catalog.
type Membership struct {
	ID           int64    `json:"id"`
	GymName      string   `json:"gymName"`
	PlanName     string   `json:"planName"`
	PurchaseDate string   `json:"purchaseDate,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	Status       string   `json:"status"`
	Price        *float64 `json:"price,omitempty"`
	DurationDays *int     `json:"durationDays,omitempty"`
}

type PurchaseRequest struct {
	GymID  int64 `json:"gymId" binding:"required"`
	PlanID int64 `json:"planId" binding:"required"`
}

type FacilitySubscription struct {
	ID             int64    `json:"id"`
	GymID          int64    `json:"gymId"`
	FacilityID     int64    `json:"facilityId"`
	FacilityPlanID int64    `json:"facilityPlanId"`
	GymName        string   `json:"gymName"`
	FacilityName   string   `json:"facilityName"`
	PlanName       string   `json:"planName"`
	StartDate      string   `json:"startDate,omitempty"`
	EndDate        string   `json:"endDate,omitempty"`
	Status         string   `json:"status"`
	Price          *float64 `json:"price,omitempty"`
	DurationDays   *int     `json:"durationDays,omitempty"`
}

type SubscribeFacilityRequest struct {
	FacilityPlanID int64 `json:"facilityPlanId" binding:"required"`
}

type SwitchRequest struct {
	CurrentMembershipID int64 `json:"currentMembershipId" binding:"required"`
	NewGymID            int64 `json:"newGymId" binding:"required"`
	NewPlanID           int64 `json:"newPlanId" binding:"required"`
}

type RefundCalculation struct {
	RefundAmount    float64 `json:"refundAmount"`
	RemainingAmount float64 `json:"remainingAmount"`
	OwnerShare      float64 `json:"ownerShare"`
	UsedMonths      int     `json:"usedMonths"`
	RemainingMonths int     `json:"remainingMonths"`
}

type UnsubscribeRequest struct {
	MembershipID int64  `json:"membershipId" binding:"required"`
	Reason       string `json:"reason"`
}

type UnsubscribeRecord struct {
	ID              int64      `json:"id"`
	UserID          int64      `json:"userId"`
	UserName        string     `json:"userName"`
	UserEmail       string     `json:"userEmail"`
	MembershipID    int64      `json:"membershipId"`
	GymName         string     `json:"gymName"`
	PlanName        string     `json:"planName"`
	Status          string     `json:"status"`
	RequestDate     *time.Time `json:"requestDate,omitempty"`
	ApprovalDate    *time.Time `json:"approvalDate,omitempty"`
	RefundAmount    *float64   `json:"refundAmount,omitempty"`
	RemainingAmount *float64   `json:"remainingAmount,omitempty"`
	OwnerShare      *float64   `json:"ownerShare,omitempty"`
	UsedMonths      *int       `json:"usedMonths,omitempty"`
	TotalMonths     *int       `json:"totalMonths,omitempty"`
	Reason          string     `json:"reason,omitempty"`
	OwnerNotes      string     `json:"ownerNotes,omitempty"`
}

type ApprovalRequest struct {
	OwnerNotes string `json:"ownerNotes"`
}

// GymMember is one row of an owner's member roster for a gym.
type GymMember struct {
	UserID                     int64  `json:"userId"`
	UserName                   string `json:"userName"`
	Email                      string `json:"email"`
	MembershipStatus           string `json:"membershipStatus,omitempty"`
	FacilitySubscriptionStatus string `json:"facilitySubscriptionStatus,omitempty"`
	LastVisitDate              string `json:"lastVisitDate,omitempty"`
	TotalVisits                int    `json:"totalVisits"`
}

type MemberPlan struct {
	PlanName     string `json:"planName"`
	PurchaseDate string `json:"purchaseDate,omitempty"`
	ExpiryDate   string `json:"expiryDate,omitempty"`
	Status       string `json:"status"`
}

type MemberFacilityPlan struct {
	FacilityName string `json:"facilityName"`
	PlanName     string `json:"planName"`
	PurchaseDate string `json:"purchaseDate,omitempty"`
	ExpiryDate   string `json:"expiryDate,omitempty"`
	Status       string `json:"status"`
}

type MemberVisit struct {
	ID           int64      `json:"id"`
	GymName      string     `json:"gymName"`
	VisitDate    string     `json:"visitDate,omitempty"`
	CheckInTime  *time.Time `json:"checkInTime,omitempty"`
	CheckOutTime *time.Time `json:"checkOutTime,omitempty"`
	Status       string     `json:"status"`
}

// MemberStats is the owner's drill-down view of one member at one gym.
type MemberStats struct {
	UserID                int64                `json:"userId"`
	UserName              string               `json:"userName"`
	Email                 string               `json:"email"`
	Memberships           []MemberPlan         `json:"memberships"`
	FacilitySubscriptions []MemberFacilityPlan `json:"facilitySubscriptions"`
	SessionHistory        []MemberVisit        `json:"sessionHistory"`
	TotalVisitCount       int                  `json:"totalVisitCount"`
	LastCheckIn           *time.Time           `json:"lastCheckIn,omitempty"`
	LastCheckOut          *time.Time           `json:"lastCheckOut,omitempty"`
}
