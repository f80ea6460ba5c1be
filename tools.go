//go:build tools

package tools

// Development tools.
//
// goose is pinned through the tool directive in go.mod:
//
//	go tool goose -dir migrations postgres "$DATABASE_DSN" status
//
// moq generates the *_mock_test.go files referenced by //go:generate lines:
//
//	go install github.com/matryer/moq@latest
//	go generate ./...
