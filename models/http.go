package models

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AuthResponse is returned by register and login alongside the session cookie.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
