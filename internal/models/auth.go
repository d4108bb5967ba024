package models

import (
	"strings"

	"github.com/supabase-community/gotrue-go/types"
)

type Scope int

const (
	AccessScope  Scope = 0
	RefreshScope Scope = 1
)

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func UserFromTypesUser(user types.User) User {
	return User{
		ID:    user.ID.String(),
		Email: user.Email,
	}
}

// Handle is the part of the email shown on screens.
func (user User) Handle() string {
	handle, _, _ := strings.Cut(user.Email, "@")
	return handle
}
