package githubapi

import (
	"context"
	"strings"
	"sync"

	"github.com/codesimplify/backend/internal/logger"
	"github.com/codesimplify/backend/internal/models"
)

// Files whose presence reveals project identity: manifests, READMEs,
// container and build configs. Matched against the basename of each blob.
var keyFileNames = map[string]bool{
	"package.json":        true,
	"requirements.txt":    true,
	"README.md":           true,
	"readme.md":           true,
	"Readme.md":           true,
	"Dockerfile":          true,
	"dockerfile":          true,
	"docker-compose.yml":  true,
	"docker-compose.yaml": true,
	"pyproject.toml":      true,
	"Cargo.toml":          true,
	"go.mod":              true,
	"pom.xml":             true,
	"build.gradle":        true,
	"Gemfile":             true,
	"mix.exs":             true,
	".env.example":        true,
	"setup.py":            true,
	"tsconfig.json":       true,
	"vite.config.ts":      true,
	"next.config.js":      true,
	"nuxt.config.js":      true,
}

// FetchKeyFiles retrieves the contents of every allow-listed file in the
// tree. Fetches run with bounded concurrency; a failure for one file is
// logged and the entry omitted, never propagated. Results keep tree order.
func (c *Client) FetchKeyFiles(ctx context.Context, owner, repo string, tree []TreeEntry) []models.KeyFile {
	var candidates []TreeEntry
	for _, entry := range tree {
		base := entry.Path
		if idx := strings.LastIndex(base, "/"); idx >= 0 {
			base = base[idx+1:]
		}
		if entry.Type == "blob" && keyFileNames[base] {
			candidates = append(candidates, entry)
		}
	}

	results := make([]*models.KeyFile, len(candidates))

	var wg sync.WaitGroup
	sem := make(chan struct{}, 4)

	for i, entry := range candidates {
		wg.Add(1)
		go func(i int, entry TreeEntry) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			file, err := c.FetchFileContent(ctx, owner, repo, entry.Path, MaxKeyFileChars, TruncationMarker)
			if err != nil {
				logger.S().Warnw("key file fetch failed", "path", entry.Path, "error", err)
				return
			}
			results[i] = &models.KeyFile{Path: entry.Path, Content: file.Content}
		}(i, entry)
	}

	wg.Wait()

	keyFiles := make([]models.KeyFile, 0, len(candidates))
	for _, kf := range results {
		if kf != nil {
			keyFiles = append(keyFiles, *kf)
		}
	}
	return keyFiles
}
