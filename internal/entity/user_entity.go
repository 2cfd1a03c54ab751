package entity

import "time"

// User's email is stored lower-cased and trimmed; uniqueness is checked
// against that normalized form. Users are never physically deleted.
type User struct {
	Id           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Avatar       *string   `json:"avatar"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
