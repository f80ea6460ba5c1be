package auth

import "github.com/heartmarshall/teamhub-backend/internal/domain"

// AuthResult is returned by Register and Login operations.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}
