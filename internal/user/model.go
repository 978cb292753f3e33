package user

type RegisterRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=USER OWNER"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type VerifyOtpRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=6"`
}

// StatusEnvelope is the backend's generic answer for register, OTP and
// resend calls: a success flag, a human message, and an optional payload
// string.
type StatusEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    string `json:"data,omitempty"`
}

type LoginData struct {
	Token  string `json:"token"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	UserID int64  `json:"userId"`
}

type LoginEnvelope struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    *LoginData `json:"data,omitempty"`
}

type Profile struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Role     string `json:"role"`
}

type ProfileEnvelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    *Profile `json:"data,omitempty"`
}

// DashboardStats is the member home-screen summary.
type DashboardStats struct {
	TotalVisitDays              int                  `json:"totalVisitDays"`
	LastVisitDate               string               `json:"lastVisitDate,omitempty"`
	ActiveMemberships           []ActiveMembership   `json:"activeMemberships"`
	ActiveFacilitySubscriptions []ActiveFacilitySub  `json:"activeFacilitySubscriptions"`
	SubscriptionExpiryDates     []SubscriptionExpiry `json:"subscriptionExpiryDates"`
	CurrentSessionStatus        string               `json:"currentSessionStatus,omitempty"`
}

type ActiveMembership struct {
	GymName  string `json:"gymName"`
	PlanName string `json:"planName"`
	EndDate  string `json:"endDate,omitempty"`
}

type ActiveFacilitySub struct {
	GymName      string `json:"gymName"`
	FacilityName string `json:"facilityName"`
	PlanName     string `json:"planName"`
	EndDate      string `json:"endDate,omitempty"`
}

type SubscriptionExpiry struct {
	Type       string `json:"type"`
	Name       string `json:"name"`
	ExpiryDate string `json:"expiryDate,omitempty"`
}

// DigitalCard is the scannable member card payload.
type DigitalCard struct {
	UserName            string             `json:"userName"`
	UserEmail           string             `json:"userEmail"`
	WalletBalance       float64            `json:"walletBalance"`
	ActiveMemberships   []CardMembership   `json:"activeMemberships"`
	ActiveSubscriptions []CardSubscription `json:"activeSubscriptions"`
}

type CardMembership struct {
	MembershipID int64  `json:"membershipId"`
	GymID        int64  `json:"gymId"`
	GymName      string `json:"gymName"`
	PlanName     string `json:"planName"`
	StartDate    string `json:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty"`
	Status       string `json:"status"`
}

type CardSubscription struct {
	SubscriptionID int64  `json:"subscriptionId"`
	GymID          int64  `json:"gymId"`
	FacilityID     int64  `json:"facilityId"`
	GymName        string `json:"gymName"`
	FacilityName   string `json:"facilityName"`
	PlanName       string `json:"planName"`
	StartDate      string `json:"startDate,omitempty"`
	EndDate        string `json:"endDate,omitempty"`
	Status         string `json:"status"`
}
