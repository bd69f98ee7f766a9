package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. The booking flow only ever sees its id (resolved upstream by
// the auth middleware) and its loyalty-point balance.
type User struct {
	id            uuid.UUID
	email         Email
	name          string
	passwordHash  string
	role          Role
	loyaltyPoints int64
	createdAt     time.Time
	updatedAt     time.Time
}

func NewUser(email Email, name, passwordHash string, role Role) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) Name() string         { return u.name }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) LoyaltyPoints() int64 { return u.loyaltyPoints }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
