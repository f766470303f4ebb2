package models

// RegisterResponse represents the response after user registration.
// No user data is echoed back.
type RegisterResponse struct {
	Message string `json:"message"`
}

// LoginResponse represents the response after successful authentication
type LoginResponse struct {
	Token string `json:"token"` // JWT token
}

// ProfileResponse represents the authenticated user's profile.
// The password hash is never part of this projection.
type ProfileResponse struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone"` // null when the user registered without one
}
