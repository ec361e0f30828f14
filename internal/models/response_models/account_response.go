package response_models

type AccountLoginResponse struct {
	Token string          `json:"token"`
	User  AccountResponse `json:"user"`
}

type AccountResponse struct {
	ID             string  `json:"id"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Email          string  `json:"email"`
	Phone          *string `json:"phone"`
	City           *string `json:"city"`
	Country        string  `json:"country"`
	AdditionalInfo *string `json:"additionalInfo,omitempty"`
	Role           string  `json:"role,omitempty"`
	CreatedAt      string  `json:"createdAt,omitempty"`
}
