package repourl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_ValidInputs(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantOwner string
		wantRepo  string
	}{
		{"full https URL", "https://github.com/octocat/Hello-World", "octocat", "Hello-World"},
		{"http URL", "http://github.com/octocat/Hello-World", "octocat", "Hello-World"},
		{"trailing .git stripped", "https://github.com/octocat/Hello-World.git", "octocat", "Hello-World"},
		{"trailing path ignored", "https://github.com/octocat/Hello-World/tree/main/src", "octocat", "Hello-World"},
		{"query stripped", "https://github.com/octocat/Hello-World?tab=readme", "octocat", "Hello-World"},
		{"fragment stripped", "https://github.com/octocat/Hello-World#readme", "octocat", "Hello-World"},
		{"bare github.com", "github.com/octocat/Hello-World", "octocat", "Hello-World"},
		{"owner/repo shorthand", "octocat/Hello-World", "octocat", "Hello-World"},
		{"dotted repo name", "https://github.com/golang/go.dev", "golang", "go.dev"},
		{"surrounding whitespace", "  https://github.com/octocat/Hello-World  ", "octocat", "Hello-World"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := Parse(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantOwner, ref.Owner)
			assert.Equal(t, tt.wantRepo, ref.Repo)
		})
	}
}

func TestParse_InvalidInputs(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrRequired},
		{"no repo part", "https://github.com/octocat", ErrInvalidFormat},
		{"not a url", "not-a-url!!", ErrInvalidFormat},
		{"gitlab host", "https://gitlab.com/octocat/Hello-World", ErrInvalidFormat},
		{"owner starts with hyphen", "https://github.com/-octocat/repo", ErrInvalidOwner},
		{"owner too long", "https://github.com/" + strings.Repeat("a", 40) + "/repo", ErrInvalidOwner},
		{"repo with bad chars", "https://github.com/octocat/re$po", ErrInvalidRepo},
		{"repo too long", "https://github.com/octocat/" + strings.Repeat("a", 101), ErrInvalidRepo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParse_OversizedInputRejectedBeforeMatching(t *testing.T) {
	// A perfectly shaped URL padded past the cap must still be rejected.
	input := "https://github.com/octocat/Hello-World/" + strings.Repeat("x", 500)
	_, err := Parse(input)
	assert.ErrorIs(t, err, ErrTooLong)
}

func TestParse_ReservedOwners(t *testing.T) {
	for _, owner := range []string{"api", "raw", "gist", "enterprise", "settings", "organizations", "API", "Settings"} {
		t.Run(owner, func(t *testing.T) {
			_, err := Parse("https://github.com/" + owner + "/some-repo")
			assert.ErrorIs(t, err, ErrReservedOwner)
		})
	}
}

func TestParse_TraversalRepoName(t *testing.T) {
	// ".." alone passes the repo character class, so the traversal check
	// has to catch it.
	_, err := Parse("octocat/..")
	assert.ErrorIs(t, err, ErrPathTraversal)
}
