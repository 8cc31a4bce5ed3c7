package address

import "time"

type CreateAddressRequest struct {
	Label   string `json:"label"`
	Address string `json:"address"`
	Country string `json:"country"`
}

type AddressResponse struct {
	ID        string    `json:"id"`
	Label     string    `json:"label,omitempty"`
	Address   string    `json:"address"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"createdAt"`
}
