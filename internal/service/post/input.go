package post

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/teamhub-backend/internal/domain"
)

const msgNUL = "must not contain NUL characters"

// ImageInput describes an already uploaded image attached to a post.
type ImageInput struct {
	ID         string
	URL        string
	UploadedAt *time.Time
}

// CreatePostInput holds parameters for publishing a post.
type CreatePostInput struct {
	Title      string
	Content    string
	Tags       []string
	Categories []string
	Images     []ImageInput

	// Entry counts as submitted, before duplicates are collapsed.
	rawTags       int
	rawCategories int
}

func (i *CreatePostInput) normalize() {
	i.Title = strings.TrimSpace(i.Title)
	i.Content = strings.TrimSpace(i.Content)
	i.rawTags, i.rawCategories = len(i.Tags), len(i.Categories)
	i.Tags = domain.NormalizeSet(i.Tags)
	i.Categories = domain.NormalizeSet(i.Categories)
	images := make([]ImageInput, len(i.Images))
	for k, img := range i.Images {
		img.ID = strings.TrimSpace(img.ID)
		img.URL = strings.TrimSpace(img.URL)
		images[k] = img
	}
	i.Images = images
}

// Validate validates the post input. Each violated limit yields its own field
// error. Tag and category limits count submitted entries, duplicates included.
func (i CreatePostInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if utf8.RuneCountInString(i.Title) > domain.MaxPostTitleLength {
		errs = append(errs, domain.FieldError{
			Field:   "title",
			Message: fmt.Sprintf("must be at most %d characters", domain.MaxPostTitleLength),
		})
	}

	if i.Content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}

	for _, f := range []struct {
		name   string
		values []string
	}{
		{"title", []string{i.Title}},
		{"content", []string{i.Content}},
		{"tags", i.Tags},
		{"categories", i.Categories},
	} {
		if slices.ContainsFunc(f.values, domain.HasNUL) {
			errs = append(errs, domain.FieldError{Field: f.name, Message: msgNUL})
		}
	}

	if max(len(i.Tags), i.rawTags) > domain.MaxPostTags {
		errs = append(errs, domain.FieldError{
			Field:   "tags",
			Message: fmt.Sprintf("at most %d tags allowed", domain.MaxPostTags),
		})
	}

	if max(len(i.Categories), i.rawCategories) > domain.MaxPostCategories {
		errs = append(errs, domain.FieldError{
			Field:   "categories",
			Message: fmt.Sprintf("at most %d categories allowed", domain.MaxPostCategories),
		})
	}

	for k, img := range i.Images {
		if img.ID == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("images[%d].id", k), Message: "required"})
		}
		if img.URL == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("images[%d].url", k), Message: "required"})
		}
		if domain.HasNUL(img.ID) || domain.HasNUL(img.URL) {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("images[%d]", k), Message: msgNUL})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
