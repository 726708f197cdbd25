package model

import (
	"serenity/shared/constant"
	"serenity/shared/dto"
)

// Storage keys of the admin session, kept per session id.
const (
	KeyToken = "wima_admin_token"
	KeyUser  = "wima_admin_user"

	EntityName = "session"
)

type User struct {
	ID    dto.ID `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}

// CanManageRooms gates room creation, editing and (de)activation.
func (u User) CanManageRooms() bool {
	return u.Role == constant.RoleManager || u.Role == constant.RoleAdmin
}

type Session struct {
	ID    string
	Token string
	User  *User
}

func (s Session) Authenticated() bool {
	return s.Token != constant.Empty
}

// Change is delivered to subscribers after every session update.
type Change struct {
	SessionID string
	Session   Session
	LoggedOut bool
}
