package models

import "time"

type Store struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;type:varchar(100)" json:"name"`
	Location  string    `gorm:"not null;type:varchar(255)" json:"location"`
	OwnerID   *uint     `gorm:"index" json:"owner"`
	Approved  bool      `gorm:"not null;default:false" json:"approved"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Owner *User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}

// StoreResponse represents the store data returned in API responses
type StoreResponse struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	Owner         *uint   `json:"owner"`
	OwnerUsername *string `json:"owner_username"`
	Approved      bool    `json:"approved"`
}

// ToResponse converts a Store model to a StoreResponse.
// OwnerUsername is only populated when Owner has been preloaded.
func (s *Store) ToResponse() *StoreResponse {
	var ownerUsername *string
	if s.Owner != nil {
		ownerUsername = &s.Owner.Username
	}

	return &StoreResponse{
		ID:            s.ID,
		Name:          s.Name,
		Location:      s.Location,
		Owner:         s.OwnerID,
		OwnerUsername: ownerUsername,
		Approved:      s.Approved,
	}
}
