package dto

// Auth requests skip `validate` tags on purpose: the auth service
// normalizes and validates these itself so the classic error messages
// stay intact.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	User  PublicUser `json:"user"`
	Token string     `json:"token"`
}

type MeResponse struct {
	User PublicUser `json:"user"`
}

type LogoutResponse struct {
	LoggedOut bool `json:"loggedOut"`
}
