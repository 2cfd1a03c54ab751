package dto

import (
	"time"

	"onemore-backend/internal/entity"
)

// PublicUser is the safe projection of a user; the password hash never
// leaves the service layer.
type PublicUser struct {
	Id        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Avatar    *string   `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewPublicUser(u *entity.User) PublicUser {
	return PublicUser{
		Id:        u.Id,
		Email:     u.Email,
		Name:      u.Name,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
