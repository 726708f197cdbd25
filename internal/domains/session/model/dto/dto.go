package dto

import (
	"serenity/internal/domains/session/model"
	"strings"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Normalize trims the email the way the login form does. The password is sent untouched.
func (r *LoginRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
}

// LoginResponse is the backend's answer to /auth/login.
type LoginResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type SessionResponse struct {
	Authenticated  bool        `json:"authenticated"`
	User           *model.User `json:"user,omitempty"`
	CanManageRooms bool        `json:"can_manage_rooms"`
}

func (s *SessionResponse) FromModel(session model.Session) {
	s.Authenticated = session.Authenticated()
	s.User = session.User

	if session.User != nil {
		s.CanManageRooms = session.User.CanManageRooms()
	}
}
