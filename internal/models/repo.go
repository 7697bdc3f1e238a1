package models

// RepoRef is the validated identity of a GitHub repository. It is only
// ever constructed by repourl.Parse, so owner and repo are known-good.
type RepoRef struct {
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
}

// FullName returns "owner/repo".
func (r RepoRef) FullName() string {
	return r.Owner + "/" + r.Repo
}

// HTMLURL returns the canonical https URL for the repository.
func (r RepoRef) HTMLURL() string {
	return "https://github.com/" + r.Owner + "/" + r.Repo
}

// TreeNode is one entry of a repository's flat recursive listing.
type TreeNode struct {
	Path string `json:"path"`
	Type string `json:"type"` // "file" or "folder"
	Size int    `json:"size"`
}

// KeyFile is the decoded, truncated, sanitized content of one fetched file.
type KeyFile struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}
