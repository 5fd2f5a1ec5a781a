// Package directory holds the read-only user directory. Records are loaded
// once at startup and never mutated afterwards; the only operation is the
// email+password lookup used during login.
package directory

import (
	"github.com/uptrace/bun"

	"github.com/avidaldev/authgate/internal/auth"
)

// User is the directory record. The password column is stored as provided
// by the seed data and is never serialized to JSON.
//
// Passwords are compared as plain strings because the seed data carries no
// hashing scheme. See the open questions in DESIGN.md before changing this.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`

	ID        int    `bun:"id,pk" json:"id"`
	FirstName string `bun:"first_name,notnull" json:"first_name"`
	LastName  string `bun:"last_name,notnull" json:"last_name"`
	Age       int    `bun:"age,notnull" json:"age"`
	Email     string `bun:"email,notnull,unique" json:"email"`
	Password  string `bun:"password,notnull" json:"-"`
}

// Projection strips the password and returns the client-safe view of the
// record. This is the only place a User becomes externally visible.
func (u *User) Projection() *auth.UserProjection {
	return &auth.UserProjection{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Age:       u.Age,
		Email:     u.Email,
	}
}
