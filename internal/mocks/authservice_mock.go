package mocks

import (
	"context"
	"net/http"

	"readinglog.xdoubleu.com/internal/auth"
	"readinglog.xdoubleu.com/internal/constants"
	"readinglog.xdoubleu.com/internal/models"
)

func NewMockedAuthService(userID string) auth.Service {
	return &MockedAuthService{
		userID: userID,
	}
}

type MockedAuthService struct {
	userID string
}

func (m *MockedAuthService) Access(next http.HandlerFunc) http.HandlerFunc {
	return m.withUser(next)
}

func (m *MockedAuthService) TemplateAccess(next http.HandlerFunc) http.HandlerFunc {
	return m.withUser(next)
}

func (m *MockedAuthService) withUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := models.User{
			ID:    m.userID,
			Email: "reader@example.com",
		}

		ctx := context.WithValue(r.Context(), constants.UserContextKey, user)
		next(w, r.WithContext(ctx))
	}
}

func (m *MockedAuthService) GetAllUsers() ([]models.User, error) {
	return []models.User{{ID: m.userID, Email: "reader@example.com"}}, nil
}

func (m *MockedAuthService) SignOut(_ string) (*http.Cookie, *http.Cookie, error) {
	return nil, nil, nil
}
