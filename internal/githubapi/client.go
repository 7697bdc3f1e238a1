// Package githubapi fetches repository trees and file contents from the
// GitHub REST API. All returned text is sanitized before it leaves this
// package.
package githubapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	"github.com/codesimplify/backend/internal/sanitize"
)

const userAgent = "CodeSimplify-Bot"

// Per-file content ceilings. Summaries read many files so each is kept
// small; forensic mode reads one file and can afford more.
const (
	MaxKeyFileChars  = 5000
	MaxForensicChars = 15000

	TruncationMarker         = "\n...[truncated]"
	ForensicTruncationMarker = "\n...[truncated for analysis]"
)

var (
	ErrRepoNotFound = errors.New("Repository not found. Please check the URL or ensure the repository is public.")
	ErrRateLimited  = errors.New("Rate limit exceeded or access denied. Please try again later.")
	ErrConnection   = errors.New("Failed to connect to GitHub. Please try again.")
)

// TreeEntry is one raw entry from the recursive tree listing. Type is the
// GitHub node type: "blob" for files, "tree" for folders.
type TreeEntry struct {
	Path string
	Type string
	Size int
}

// FileContent is a decoded, truncated, sanitized file body.
type FileContent struct {
	Content string
	Size    int
}

type Client struct {
	gh *github.Client
}

// New creates a client. An empty token means unauthenticated requests,
// which GitHub rate-limits aggressively but which work for public repos.
func New(token string) *Client {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	gh := github.NewClient(httpClient)
	gh.UserAgent = userAgent
	return &Client{gh: gh}
}

// NewWithBaseURL points the client at an alternate API root. Used by tests.
func NewWithBaseURL(token, baseURL string) (*Client, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("set base url: %w", err)
	}

	c := New(token)
	c.gh.BaseURL = parsed
	return c, nil
}

// FetchTree retrieves the recursive tree listing at HEAD. No filtering or
// capping happens here; callers apply their own bounds.
func (c *Client) FetchTree(ctx context.Context, owner, repo string) ([]TreeEntry, error) {
	tree, resp, err := c.gh.Git.GetTree(ctx, owner, repo, "HEAD", true)
	if err != nil {
		if resp != nil {
			switch resp.StatusCode {
			case http.StatusNotFound:
				return nil, ErrRepoNotFound
			case http.StatusForbidden:
				return nil, ErrRateLimited
			default:
				return nil, fmt.Errorf("GitHub API error: %d", resp.StatusCode)
			}
		}
		return nil, ErrConnection
	}

	entries := make([]TreeEntry, 0, len(tree.Entries))
	for _, e := range tree.Entries {
		entries = append(entries, TreeEntry{
			Path: e.GetPath(),
			Type: e.GetType(),
			Size: e.GetSize(),
		})
	}
	return entries, nil
}

// FetchFileContent retrieves one file, decodes it from base64, truncates it
// to limit characters with the given marker, and sanitizes the result.
func (c *Client) FetchFileContent(ctx context.Context, owner, repo, path string, limit int, marker string) (*FileContent, error) {
	file, _, resp, err := c.gh.Repositories.GetContents(ctx, owner, repo, path, nil)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusForbidden {
			return nil, ErrRateLimited
		}
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	if file == nil {
		return nil, fmt.Errorf("fetch %s: not a file", path)
	}

	decoded, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if len(decoded) > limit {
		decoded = decoded[:limit] + marker
	}

	return &FileContent{
		Content: sanitize.Content(decoded),
		Size:    file.GetSize(),
	}, nil
}
