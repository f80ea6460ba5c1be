package thread

import (
	"strings"

	"github.com/heartmarshall/teamhub-backend/internal/domain"
)

// MaxCommentLength bounds comment content in bytes.
const MaxCommentLength = 10000

const msgNUL = "must not contain NUL characters"

// CommentInput holds parameters for posting a comment or a reply.
type CommentInput struct {
	Content string
	// Type defaults to user when empty.
	Type domain.CommentType
}

func (i *CommentInput) normalize() {
	i.Content = strings.TrimSpace(i.Content)
	if i.Type == "" {
		i.Type = domain.CommentTypeUser
	}
}

// Validate validates the comment input.
func (i CommentInput) Validate() error {
	var errs []domain.FieldError

	if i.Content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	} else if len(i.Content) > MaxCommentLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
	} else if domain.HasNUL(i.Content) {
		errs = append(errs, domain.FieldError{Field: "content", Message: msgNUL})
	}

	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be one of user, department, ai"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
