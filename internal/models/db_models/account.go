package db_models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	DefaultCountry = "India"
)

type Account struct {
	BaseModel
	FirstName      string  `gorm:"size:100"`
	LastName       string  `gorm:"size:100"`
	Email          string  `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash   string  `gorm:"size:255;not null"`
	Phone          *string `gorm:"size:20"`
	City           *string `gorm:"size:100"`
	Country        string  `gorm:"size:100;default:India"`
	AdditionalInfo *string `gorm:"type:text"`
	Role           string  `gorm:"size:20;default:user"`

	Trips []Trip `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
