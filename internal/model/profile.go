package model

// Profile is the authenticated user's account record.
type Profile struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Currency string `json:"currency"`
	Language string `json:"language"`
}
