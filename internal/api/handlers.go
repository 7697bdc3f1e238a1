package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/codesimplify/backend/internal/analysis"
	"github.com/codesimplify/backend/internal/auth"
	"github.com/codesimplify/backend/internal/config"
	"github.com/codesimplify/backend/internal/db"
	"github.com/codesimplify/backend/internal/githubapi"
	"github.com/codesimplify/backend/internal/llm"
	"github.com/codesimplify/backend/internal/logger"
	"github.com/codesimplify/backend/internal/models"
	"github.com/codesimplify/backend/internal/prompt"
	"github.com/codesimplify/backend/internal/repourl"
	"github.com/codesimplify/backend/internal/sanitize"
)

const (
	// Listing bounds: the summarizer prompt works from at most 200 file
	// paths; the tree endpoint returns at most 500 entries.
	maxSummaryFiles = 200
	maxTreeItems    = 500

	summarizeMaxTokens = 2000
	forensicMaxTokens  = 3000

	recentScansLimit = 10
)

type Handler struct {
	cfg     *config.Config
	github  *githubapi.Client
	gateway *llm.Client
	scans   *db.ScanStore // nil when the store is unavailable
}

func NewHandler(cfg *config.Config, github *githubapi.Client, gateway *llm.Client, scans *db.ScanStore) *Handler {
	return &Handler{
		cfg:     cfg,
		github:  github,
		gateway: gateway,
		scans:   scans,
	}
}

// Summarize analyzes a whole repository and returns an AI-generated
// summary, README, or architecture map depending on mode.
func (h *Handler) Summarize(c fiber.Ctx) error {
	var req models.SummarizeRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.RepoURL == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Repository URL is required and must be a string"})
	}

	ref, err := repourl.Parse(req.RepoURL)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	mode, err := prompt.ParseSummarizeMode(req.Mode)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	userID, _ := c.Locals(auth.UserIDKey).(string)
	log := logger.S().With("user", userID, "repo", ref.FullName(), "mode", mode.String())
	log.Infow("analyzing repository")

	tree, err := h.github.FetchTree(c.Context(), ref.Owner, ref.Repo)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	var filePaths []string
	for _, entry := range tree {
		if entry.Type == "blob" && len(filePaths) < maxSummaryFiles {
			filePaths = append(filePaths, entry.Path)
		}
	}

	keyFiles := h.github.FetchKeyFiles(c.Context(), ref.Owner, ref.Repo, tree)
	log.Infow("fetched key files", "count", len(keyFiles))

	messages := []models.ChatMessage{
		{Role: "system", Content: prompt.SystemPrompt(mode)},
		{Role: "user", Content: prompt.BuildRepoPrompt(mode, ref, filePaths, keyFiles)},
	}

	summary, err := h.gateway.Complete(c.Context(), messages, summarizeMaxTokens)
	if err != nil {
		return h.gatewayError(c, err, "Failed to generate summary")
	}

	// Persistence is best-effort: a store failure never fails the request.
	if h.scans != nil {
		rec := &models.ScanRecord{
			UserID:   userID,
			RepoName: ref.FullName(),
			RepoURL:  ref.HTMLURL(),
			Summary:  summary,
		}
		if err := h.scans.SaveScan(c.Context(), rec); err != nil {
			log.Warnw("failed to save scan", "error", err)
		}
	}

	return c.JSON(models.SummarizeResponse{
		Success:       true,
		RepoName:      ref.FullName(),
		Summary:       summary,
		FilesAnalyzed: len(keyFiles),
		TotalFiles:    len(filePaths),
	})
}

// AnalyzeFile serves the forensic lab: tree mode returns the flat file
// listing, forensic mode runs a single-file structured analysis.
func (h *Handler) AnalyzeFile(c fiber.Ctx) error {
	var req models.AnalyzeFileRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	ref, err := repourl.Parse(req.RepoURL)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	switch req.Mode {
	case "", "tree":
		return h.fileTree(c, ref)
	case "forensic":
		return h.forensic(c, ref, req.FilePath)
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Invalid mode. Use 'tree' or 'forensic'"})
	}
}

func (h *Handler) fileTree(c fiber.Ctx, ref models.RepoRef) error {
	tree, err := h.github.FetchTree(c.Context(), ref.Owner, ref.Repo)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	files := make([]models.TreeNode, 0, len(tree))
	for _, entry := range tree {
		if entry.Type != "blob" && entry.Type != "tree" {
			continue
		}
		nodeType := "file"
		if entry.Type == "tree" {
			nodeType = "folder"
		}
		files = append(files, models.TreeNode{
			Path: entry.Path,
			Type: nodeType,
			Size: entry.Size,
		})
		if len(files) == maxTreeItems {
			break
		}
	}

	return c.JSON(models.TreeResponse{
		Success:  true,
		Files:    files,
		RepoName: ref.FullName(),
	})
}

func (h *Handler) forensic(c fiber.Ctx, ref models.RepoRef, filePath string) error {
	if filePath == "" {
		return c.Status(400).JSON(fiber.Map{"error": "File path is required for forensic analysis"})
	}
	filePath = sanitize.Path(filePath)

	logger.S().Infow("forensic analysis", "repo", ref.FullName(), "path", filePath)

	file, err := h.github.FetchFileContent(c.Context(), ref.Owner, ref.Repo, filePath,
		githubapi.MaxForensicChars, githubapi.ForensicTruncationMarker)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Could not fetch file content"})
	}

	messages := []models.ChatMessage{
		{Role: "system", Content: prompt.SystemPrompt(prompt.ModeForensic)},
		{Role: "user", Content: prompt.BuildForensicPrompt(filePath, file.Size, file.Content)},
	}

	reply, err := h.gateway.Complete(c.Context(), messages, forensicMaxTokens)
	if err != nil {
		return h.gatewayError(c, err, "Failed to analyze file")
	}

	fileName := filePath
	if idx := strings.LastIndex(filePath, "/"); idx >= 0 {
		fileName = filePath[idx+1:]
	}

	return c.JSON(models.ForensicResponse{
		Success:     true,
		FileName:    fileName,
		FilePath:    filePath,
		FileSize:    file.Size,
		FileContent: file.Content,
		Analysis:    analysis.ParseForensicReport(reply),
	})
}

// Chat relays a conversation to the gateway and streams the reply back as
// SSE, byte for byte. Errors before streaming starts come back as JSON;
// once the stream is open, a downstream failure simply ends it.
func (h *Handler) Chat(c fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if len(req.Messages) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "messages are required"})
	}

	outbound := make([]models.ChatMessage, 0, len(req.Messages)+1)
	outbound = append(outbound, models.ChatMessage{
		Role:    "system",
		Content: prompt.ChatSystemPrompt(req.RepoContext),
	})
	outbound = append(outbound, req.Messages...)

	stream, err := h.gateway.Stream(c.Context(), outbound)
	if err != nil {
		return h.gatewayError(c, err, "AI service temporarily unavailable")
	}

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	return c.SendStream(stream)
}

// RecentScans returns the authenticated user's latest scan records.
func (h *Handler) RecentScans(c fiber.Ctx) error {
	if h.scans == nil {
		return c.Status(500).JSON(fiber.Map{"error": "Scan history is unavailable"})
	}

	userID, _ := c.Locals(auth.UserIDKey).(string)
	scans, err := h.scans.ListScansByUser(c.Context(), userID, recentScansLimit)
	if err != nil {
		logger.S().Errorw("failed to list scans", "user", userID, "error", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load scan history"})
	}
	if scans == nil {
		scans = []*models.ScanRecord{}
	}

	return c.JSON(fiber.Map{"success": true, "scans": scans})
}

func (h *Handler) gatewayError(c fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, llm.ErrRateLimited):
		return c.Status(429).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, llm.ErrCreditsExhausted):
		return c.Status(402).JSON(fiber.Map{"error": err.Error()})
	default:
		logger.S().Errorw("gateway call failed", "error", err)
		return c.Status(500).JSON(fiber.Map{"error": fallback})
	}
}
