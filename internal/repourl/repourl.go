// Package repourl validates user-supplied GitHub repository URLs. It is
// the single trust boundary for user-controlled repository identity: both
// the summarize and analyze-file paths go through Parse.
package repourl

import (
	"errors"
	"regexp"
	"strings"

	"github.com/codesimplify/backend/internal/models"
)

const maxURLLength = 500

var (
	ErrRequired      = errors.New("Repository URL is required")
	ErrTooLong       = errors.New("URL is too long")
	ErrInvalidFormat = errors.New("Invalid GitHub repository URL. Use format: https://github.com/owner/repo")
	ErrInvalidOwner  = errors.New("Invalid repository owner name")
	ErrInvalidRepo   = errors.New("Invalid repository name")
	ErrPathTraversal = errors.New("Invalid characters in repository path")
	ErrReservedOwner = errors.New("Invalid repository owner")
)

// Accepted input shapes, tried in order; first match wins.
var patterns = []*regexp.Regexp{
	regexp.MustCompile(`^https?://github\.com/([^/]+)/([^/?#]+)`),
	regexp.MustCompile(`^github\.com/([^/]+)/([^/?#]+)`),
	regexp.MustCompile(`^([a-zA-Z0-9_-]+)/([a-zA-Z0-9_.-]+)$`),
}

var (
	// GitHub owners: alphanumeric and hyphen, no leading/trailing hyphen.
	validOwner = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?$`)
	// GitHub repos: alphanumeric, hyphen, underscore, dot.
	validRepo = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
)

// Owner names GitHub uses for its own routes; never a real user or org.
var reservedOwners = map[string]bool{
	"api":           true,
	"raw":           true,
	"gist":          true,
	"enterprise":    true,
	"settings":      true,
	"organizations": true,
}

// Parse validates raw input and extracts an owner/repo pair. A trailing
// ".git" is stripped from the repo name. Inputs longer than 500 characters
// are rejected before any pattern matching.
func Parse(raw string) (models.RepoRef, error) {
	if raw == "" {
		return models.RepoRef{}, ErrRequired
	}
	if len(raw) > maxURLLength {
		return models.RepoRef{}, ErrTooLong
	}

	trimmed := strings.TrimSpace(raw)

	var owner, repo string
	for _, pattern := range patterns {
		if m := pattern.FindStringSubmatch(trimmed); m != nil {
			owner = m[1]
			repo = strings.TrimSuffix(m[2], ".git")
			break
		}
	}

	if owner == "" || repo == "" {
		return models.RepoRef{}, ErrInvalidFormat
	}

	if !validOwner.MatchString(owner) || len(owner) > 39 {
		return models.RepoRef{}, ErrInvalidOwner
	}
	if !validRepo.MatchString(repo) || len(repo) > 100 {
		return models.RepoRef{}, ErrInvalidRepo
	}
	if strings.Contains(owner, "..") || strings.Contains(repo, "..") {
		return models.RepoRef{}, ErrPathTraversal
	}
	if reservedOwners[strings.ToLower(owner)] {
		return models.RepoRef{}, ErrReservedOwner
	}

	return models.RepoRef{Owner: owner, Repo: repo}, nil
}
