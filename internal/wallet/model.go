package wallet

import "time"

// TransactionType mirrors the backend ledger categories.
const (
	TypeAddMoney         = "ADD_MONEY"
	TypeFacilityUsage    = "FACILITY_USAGE"
	TypeMembershipRefund = "MEMBERSHIP_REFUND"
	TypeMembershipSwitch = "MEMBERSHIP_SWITCH"
	TypeOwnerEarning     = "OWNER_EARNING"
)

type Wallet struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"userId"`
	Balance   float64    `json:"balance"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type Transaction struct {
	ID           int64      `json:"id"`
	Type         string     `json:"type"`
	Amount       float64    `json:"amount"`
	BalanceAfter float64    `json:"balanceAfter"`
	Description  string     `json:"description"`
	GymName      string     `json:"gymName,omitempty"`
	FacilityName string     `json:"facilityName,omitempty"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
}

type AddMoneyRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type FacilityUsageRequest struct {
	GymID      int64 `json:"gymId" binding:"required"`
	FacilityID int64 `json:"facilityId" binding:"required"`
}

type FacilityUsageResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
