package db_models

// State is an Indian state or union territory. Cities point at it by name.
type State struct {
	BaseModel
	Name    string `gorm:"size:100;uniqueIndex;not null"`
	Country string `gorm:"size:100;default:India"`

	Cities []City `gorm:"foreignKey:StateName;references:Name;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

type City struct {
	BaseModel
	Name      string `gorm:"size:100;not null"`
	StateName string `gorm:"column:state;size:100;not null;index"`
	Country   string `gorm:"size:100;default:India"`
}
