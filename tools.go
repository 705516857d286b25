//go:build tools

package tools

// CLI tools used during development. goose is pinned through the tool
// directive in go.mod; moq is invoked by the go:generate lines next to the
// tests that use its mocks:
//
//	go install github.com/matryer/moq@latest
//	go generate ./...
