package request_models

type CreateTripRequest struct {
	TripName  string `json:"tripName" binding:"required,max=255"`
	City      string `json:"city" binding:"required,max=100"`
	State     string `json:"state" binding:"max=100"`
	Country   string `json:"country" binding:"max=100"`
	StartDate string `json:"startDate" binding:"required"` // YYYY-MM-DD
	EndDate   string `json:"endDate" binding:"required"`   // YYYY-MM-DD
}

type SectionInput struct {
	Date    string   `json:"date" binding:"required"` // YYYY-MM-DD
	Budget  *float64 `json:"budget"`
	Details string   `json:"details"`
}

type SaveSectionsRequest struct {
	Sections []SectionInput `json:"sections" binding:"dive"`
}
