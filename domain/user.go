package domain

import (
	"strings"
	"time"
)

const MaxUsernameLen = 100

type User struct {
	ID        int64     `db:"id"`
	Username  string    `db:"username"`
	Password  string    `db:"password" json:"-"`
	CreatedAt time.Time `db:"created_at"`
}

// CredentialsForm is the payload of the login and register forms.
type CredentialsForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (f *CredentialsForm) Validate() error {
	f.Username = Truncate(strings.TrimSpace(f.Username), MaxUsernameLen)
	if f.Username == "" {
		return &ValidationError{Field: "username", Message: "Username is required."}
	}
	if f.Password == "" {
		return &ValidationError{Field: "password", Message: "Password is required."}
	}
	return nil
}
