//go:build unit || e2e

package builder

import (
	"hotelcore/internal/domain/user"
	reqdto "hotelcore/internal/handler/dto/request"
	"hotelcore/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Email         string
	Name          string
	Password      string
	PasswordHash  string
	Role          string
	LoyaltyPoints int64
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:         "guest@example.com",
		Name:          "Test Guest",
		Password:      "password123",
		PasswordHash:  "hashed_password",
		Role:          "guest",
		LoyaltyPoints: 0,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	return user.NewUser(email, u.Name, u.PasswordHash, role), nil
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:            uuid.New(),
		Email:         u.Email,
		Name:          u.Name,
		Role:          u.Role,
		LoyaltyPoints: u.LoyaltyPoints,
	}
}

func (u *UserBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    u.Email,
		Password: u.Password,
	}
}

func (u *UserBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:    u.Email,
		Name:     u.Name,
		Password: u.Password,
	}
}
