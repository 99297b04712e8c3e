package models

type Advertiser struct {
	AdvertiserID string `json:"advertiser_id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
	CreatedAt    string `json:"created_at,omitempty"`
}
