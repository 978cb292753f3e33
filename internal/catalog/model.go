package catalog

type Gym struct {
	ID            int64    `json:"id"`
	GymName       string   `json:"gymName"`
	Address       string   `json:"address"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Pincode       string   `json:"pincode"`
	ContactNumber string   `json:"contactNumber"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	OpenTime      string   `json:"openTime"`
	CloseTime     string   `json:"closeTime"`
	Active        bool     `json:"active"`
}

// PassType controls eligibility for cancellation/switching features,
// orthogonal to the session lifecycle.
const (
	PassTypeRegular = "REGULAR"
	PassTypeHybrid  = "HYBRID"
)

type Plan struct {
	ID             int64   `json:"id"`
	GymID          int64   `json:"gymId"`
	PlanName       string  `json:"planName"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	DurationDays   *int    `json:"durationDays,omitempty"`
	DurationMonths *int    `json:"durationMonths,omitempty"`
	PassType       string  `json:"passType"`
	Active         bool    `json:"active"`

	// DescriptionHTML is rendered by the gateway from the Markdown
	// description; it never comes from the backend.
	DescriptionHTML string `json:"descriptionHtml,omitempty"`
}

type Facility struct {
	ID           int64  `json:"id"`
	GymID        int64  `json:"gymId"`
	FacilityName string `json:"facilityName"`
	Description  string `json:"description"`
	Active       bool   `json:"active"`
	HasPlans     bool   `json:"hasPlans"`

	DescriptionHTML string `json:"descriptionHtml,omitempty"`
}

type CreateGymRequest struct {
	GymName       string   `json:"gymName" binding:"required"`
	Address       string   `json:"address" binding:"required"`
	City          string   `json:"city" binding:"required"`
	State         string   `json:"state"`
	Pincode       string   `json:"pincode"`
	ContactNumber string   `json:"contactNumber"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	OpenTime      string   `json:"openTime"`
	CloseTime     string   `json:"closeTime"`
}

type CreatePlanRequest struct {
	// GymID is filled from the route, not the body.
	GymID          int64   `json:"gymId"`
	PlanName       string  `json:"planName" binding:"required"`
	Description    string  `json:"description"`
	Price          float64 `json:"price" binding:"required,gt=0"`
	DurationDays   *int    `json:"durationDays,omitempty"`
	DurationMonths *int    `json:"durationMonths,omitempty"`
	PassType       string  `json:"passType" binding:"omitempty,oneof=REGULAR HYBRID"`
}

type CreateFacilityRequest struct {
	GymID        int64  `json:"gymId"`
	FacilityName string `json:"facilityName" binding:"required"`
	Description  string `json:"description"`
}
