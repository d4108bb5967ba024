//nolint:exhaustruct //ignore
package mocks

import (
	"errors"

	"github.com/google/uuid"
	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
)

const (
	MockedAccessToken  = "access"
	MockedRefreshToken = "refresh"
	MockedUserID       = "4001e9cf-3fbe-4b09-863f-bd1654cfbf76"
)

// MockedGoTrueClient answers the token and user calls the auth flow makes.
// Any other gotrue call panics on the embedded nil client.
type MockedGoTrueClient struct {
	gotrue.Client
	token string
}

func NewMockedGoTrueClient() gotrue.Client {
	return MockedGoTrueClient{}
}

func (client MockedGoTrueClient) WithToken(token string) gotrue.Client {
	client.token = token
	return client
}

func (client MockedGoTrueClient) Token(
	req types.TokenRequest,
) (*types.TokenResponse, error) {
	switch req.GrantType {
	case "password":
		if req.Email == "" || req.Password != "password" {
			return nil, errors.New("invalid login credentials")
		}
	case "refresh_token":
		if req.RefreshToken != MockedRefreshToken {
			return nil, errors.New("invalid refresh token")
		}
	}

	return &types.TokenResponse{
		Session: types.Session{
			AccessToken:  MockedAccessToken,
			RefreshToken: MockedRefreshToken,
		},
	}, nil
}

func (client MockedGoTrueClient) GetUser() (*types.UserResponse, error) {
	if client.token != MockedAccessToken {
		return nil, errors.New("invalid access token")
	}

	return &types.UserResponse{
		User: types.User{
			ID:    uuid.MustParse(MockedUserID),
			Email: "reader@example.com",
		},
	}, nil
}

func (client MockedGoTrueClient) Logout() error {
	if client.token != MockedAccessToken {
		return errors.New("not signed in")
	}
	return nil
}
