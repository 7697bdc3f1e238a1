package models

import "time"

// ScanRecord is one persisted repository summarization, owned by a user.
type ScanRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	RepoName  string    `json:"repoName"`
	RepoURL   string    `json:"repoUrl"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"createdAt"`
}
