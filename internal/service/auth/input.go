package auth

import (
	"strings"

	"github.com/heartmarshall/teamhub-backend/internal/domain"
)

const (
	minPasswordLength = 8
	// bcrypt ignores everything past 72 bytes.
	maxPasswordLength = 72
	maxNameLength     = 100
)

// RegisterInput holds parameters for creating an account.
type RegisterInput struct {
	Email      string
	Password   string
	FirstName  string
	LastName   string
	Department *string
}

func (i *RegisterInput) normalize() {
	i.Email = domain.NormalizeEmail(i.Email)
	i.FirstName = strings.TrimSpace(i.FirstName)
	i.LastName = strings.TrimSpace(i.LastName)
	if i.Department != nil {
		d := strings.TrimSpace(*i.Department)
		if d == "" {
			i.Department = nil
		} else {
			i.Department = &d
		}
	}
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !strings.Contains(i.Email, "@") || len(i.Email) > 254 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}

	if len(i.Password) < minPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	} else if len(i.Password) > maxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at most 72 bytes"})
	}

	if i.FirstName == "" {
		errs = append(errs, domain.FieldError{Field: "firstName", Message: "required"})
	} else if len(i.FirstName) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "firstName", Message: "too long"})
	}

	if i.LastName == "" {
		errs = append(errs, domain.FieldError{Field: "lastName", Message: "required"})
	} else if len(i.LastName) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "lastName", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
