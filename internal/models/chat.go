package models

// ChatMessage is one turn in a running conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "system", "user" or "assistant"
	Content string `json:"content"`
}

// RepoContext carries a previously generated summary into a chat session.
type RepoContext struct {
	RepoName string `json:"repoName"`
	Summary  string `json:"summary"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Messages    []ChatMessage `json:"messages"`
	RepoContext *RepoContext  `json:"repoContext,omitempty"`
}
