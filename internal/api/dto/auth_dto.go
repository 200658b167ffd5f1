package dto

import "time"

// OrganizerLoginRequest payload.
type OrganizerLoginRequest struct {
	Password string `json:"password"`
}

// AuthResponse returns an issued token.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
