package response_models

type TripResponse struct {
	ID        string `json:"id"`
	TripName  string `json:"tripName"`
	City      string `json:"city"`
	State     string `json:"state"`
	Country   string `json:"country"`
	StartDate string `json:"startDate"` // YYYY-MM-DD
	EndDate   string `json:"endDate"`   // YYYY-MM-DD
	CreatedAt string `json:"createdAt"` // RFC3339, IST
}

// TripDetailResponse adds quick stats over the trip's itinerary.
type TripDetailResponse struct {
	TripResponse
	DurationDays int               `json:"durationDays"` // inclusive of both ends
	SectionCount int               `json:"sectionCount"`
	TotalBudget  float64           `json:"totalBudget"`
	Sections     []SectionResponse `json:"sections"`
}

type SectionResponse struct {
	ID      string   `json:"id"`
	Date    string   `json:"sectionDate"` // YYYY-MM-DD
	Budget  *float64 `json:"budget"`
	Details string   `json:"details"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}
