package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignUpRequest struct {
	FirstName      string `json:"firstName" binding:"required,max=100"`
	LastName       string `json:"lastName" binding:"max=100"`
	Email          string `json:"email" binding:"required,email,max=255"`
	Password       string `json:"password" binding:"required,min=4,max=72"`
	Phone          string `json:"phone" binding:"max=20"`
	City           string `json:"city" binding:"max=100"`
	Country        string `json:"country" binding:"max=100"`
	AdditionalInfo string `json:"additionalInfo"`
}

// UpdateProfileRequest is a partial update: nil fields are left untouched.
type UpdateProfileRequest struct {
	FirstName      *string `json:"firstName" binding:"omitempty,min=1,max=100"`
	LastName       *string `json:"lastName" binding:"omitempty,max=100"`
	Email          *string `json:"email" binding:"omitempty,email,max=255"`
	Phone          *string `json:"phone" binding:"omitempty,max=20"`
	City           *string `json:"city" binding:"omitempty,max=100"`
	Country        *string `json:"country" binding:"omitempty,max=100"`
	AdditionalInfo *string `json:"additionalInfo"`
}
