//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"hotelcore/internal/domain/user"
	"hotelcore/internal/handler/dto/request"
	"hotelcore/internal/handler/dto/response"
	"hotelcore/tests/common/authtest"
	"hotelcore/tests/common/dbtest"
	"hotelcore/tests/common/httptest"
	"hotelcore/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL    = "/api/auth/login"
	registerURL = "/api/auth/register"
	meURL       = "/api/auth/me"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestRegister() {
	s.Run("Normal case: New guest can register and receives a token", func() {
		t := s.T()

		reqBody := request.RegisterRequest{
			Email:    "fresh@example.com",
			Name:     "Fresh Guest",
			Password: "password123",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var body response.LoginResponse
		httptest.DecodeResponseBody(t, w.Body, &body)
		require.NotEmpty(t, body.AccessToken)
		require.Equal(t, "fresh@example.com", body.User.Email)
		require.Equal(t, string(user.RoleGuest), body.User.Role)
		require.Zero(t, body.User.LoyaltyPoints)
	})

	s.Run("Error case: Duplicate email is rejected", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "taken@example.com", string(user.RoleGuest))

		reqBody := request.RegisterRequest{
			Email:    "taken@example.com",
			Name:     "Somebody Else",
			Password: "password123",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Error case: Weak password is rejected", func() {
		t := s.T()

		reqBody := map[string]any{
			"email":    "weak@example.com",
			"name":     "Weak Password",
			"password": "short",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func (s *AuthSuite) TestLogin() {
	s.Run("Normal case: Registered user can log in", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "guest@example.com", string(user.RoleGuest))
		token := authtest.LoginUser(t, s.Router, "guest@example.com", "password123")
		require.NotEmpty(t, token)
	})

	s.Run("Error case: Wrong password yields 401", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "guest@example.com", string(user.RoleGuest))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "guest@example.com", Password: "wrongpassword"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("Error case: Unknown email yields the same 401", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "nobody@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *AuthSuite) TestMe() {
	s.Run("Normal case: Token holder sees their own profile", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "me@example.com", string(user.RoleGuest))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body map[string]any
		httptest.DecodeResponseBody(t, w.Body, &body)
		require.Equal(t, "me@example.com", body["email"])
	})

	s.Run("Error case: Missing token yields 401", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("Error case: Garbage token yields 401", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "not-a-jwt")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}
