package domain

import "time"

type Hotel struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Contact   string    `json:"contact"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RegisterHotelInput struct {
	Name    string `validate:"required,max=200"`
	Address string `validate:"required"`
	Contact string `validate:"required"`
	City    string `validate:"required"`
}
