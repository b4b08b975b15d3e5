package models

// Player represents a person who can be placed on a roster and vote
type Player struct {
	BaseModel
	Name string `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
}

// TableName returns the table name for Player
func (Player) TableName() string {
	return "players"
}
