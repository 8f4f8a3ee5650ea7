package models

// Address is a shipping or billing address on a user profile.
type Address struct {
	Label      string `json:"label,omitempty"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

// UserProfile is the persisted profile for an identity-provider subject.
type UserProfile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Addresses []Address `json:"addresses"`
	CreatedAt string    `json:"createdAt"`
}

// UpdateProfileRequest carries a partial profile update. Pointer fields
// distinguish "omitted" from "present": nil (either absent or JSON null)
// keeps the stored value. The id is never taken from the payload.
type UpdateProfileRequest struct {
	Email     *string    `json:"email"`
	Name      *string    `json:"name"`
	Addresses *[]Address `json:"addresses"`
}
