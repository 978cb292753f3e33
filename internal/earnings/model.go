package earnings

import "time"

// EarningType as the backend ledger records it.
const (
	TypeMembershipPurchase   = "MEMBERSHIP_PURCHASE"
	TypeFacilityUsage        = "FACILITY_USAGE"
	TypeMembershipSwitchUsed = "MEMBERSHIP_SWITCH_USED"
	TypeMembershipRefund     = "MEMBERSHIP_REFUND"
)

type Earning struct {
	ID           int64      `json:"id"`
	Type         string     `json:"type"`
	Amount       float64    `json:"amount"`
	Description  string     `json:"description"`
	GymName      string     `json:"gymName,omitempty"`
	FacilityName string     `json:"facilityName,omitempty"`
	UserName     string     `json:"userName,omitempty"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
}

type Total struct {
	Total float64 `json:"total"`
}
