package models

// SummarizeRequest is the body of POST /api/summarize.
type SummarizeRequest struct {
	RepoURL string `json:"repoUrl"`
	Mode    string `json:"mode,omitempty"` // summary (default), wiki, visualize
}

// SummarizeResponse is the success body of POST /api/summarize.
type SummarizeResponse struct {
	Success       bool   `json:"success"`
	RepoName      string `json:"repoName"`
	Summary       string `json:"summary"`
	FilesAnalyzed int    `json:"filesAnalyzed"`
	TotalFiles    int    `json:"totalFiles"`
}

// AnalyzeFileRequest is the body of POST /api/analyze-file.
type AnalyzeFileRequest struct {
	RepoURL  string `json:"repoUrl"`
	FilePath string `json:"filePath,omitempty"`
	Mode     string `json:"mode,omitempty"` // tree (default) or forensic
}

// TreeResponse is the success body of analyze-file in tree mode.
type TreeResponse struct {
	Success  bool       `json:"success"`
	Files    []TreeNode `json:"files"`
	RepoName string     `json:"repoName"`
}

// ForensicResponse is the success body of analyze-file in forensic mode.
type ForensicResponse struct {
	Success     bool             `json:"success"`
	FileName    string           `json:"fileName"`
	FilePath    string           `json:"filePath"`
	FileSize    int              `json:"fileSize"`
	FileContent string           `json:"fileContent"`
	Analysis    ForensicAnalysis `json:"analysis"`
}
