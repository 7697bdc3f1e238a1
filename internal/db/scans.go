package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/codesimplify/backend/internal/models"
)

// ScanStore persists completed summarization scans, one node per scan,
// keyed to the user who requested it. Records are append-only: nothing in
// the API mutates or deletes them.
type ScanStore struct {
	client *Neo4jClient
}

func NewScanStore(client *Neo4jClient) *ScanStore {
	return &ScanStore{client: client}
}

// SaveScan inserts one scan record. An empty ID gets a fresh UUID and
// CreatedAt is always set server-side.
func (s *ScanStore) SaveScan(ctx context.Context, rec *models.ScanRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	rec.CreatedAt = time.Now().UTC()

	_, err := s.client.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		query := `
			CREATE (s:Scan {
				id: $id,
				userId: $userId,
				repoName: $repoName,
				repoUrl: $repoUrl,
				summary: $summary,
				createdAt: $createdAt
			})
		`
		_, err := tx.Run(ctx, query, map[string]any{
			"id":        rec.ID,
			"userId":    rec.UserID,
			"repoName":  rec.RepoName,
			"repoUrl":   rec.RepoURL,
			"summary":   rec.Summary,
			"createdAt": rec.CreatedAt,
		})
		return nil, err
	})

	if err != nil {
		return fmt.Errorf("failed to save scan: %w", err)
	}
	return nil
}

// ListScansByUser returns the user's most recent scans, newest first.
func (s *ScanStore) ListScansByUser(ctx context.Context, userID string, limit int) ([]*models.ScanRecord, error) {
	if limit < 1 {
		limit = 10
	}

	result, err := s.client.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		query := `
			MATCH (s:Scan {userId: $userId})
			RETURN s.id AS id, s.userId AS userId, s.repoName AS repoName,
			       s.repoUrl AS repoUrl, s.summary AS summary, s.createdAt AS createdAt
			ORDER BY s.createdAt DESC
			LIMIT $limit
		`
		result, err := tx.Run(ctx, query, map[string]any{
			"userId": userID,
			"limit":  limit,
		})
		if err != nil {
			return nil, err
		}

		var scans []*models.ScanRecord
		for result.Next(ctx) {
			scans = append(scans, recordToScan(result.Record()))
		}
		return scans, result.Err()
	})

	if err != nil {
		return nil, err
	}
	return result.([]*models.ScanRecord), nil
}

func recordToScan(record *neo4j.Record) *models.ScanRecord {
	scan := &models.ScanRecord{}

	if id, ok := record.Get("id"); ok && id != nil {
		scan.ID = id.(string)
	}
	if userID, ok := record.Get("userId"); ok && userID != nil {
		scan.UserID = userID.(string)
	}
	if repoName, ok := record.Get("repoName"); ok && repoName != nil {
		scan.RepoName = repoName.(string)
	}
	if repoURL, ok := record.Get("repoUrl"); ok && repoURL != nil {
		scan.RepoURL = repoURL.(string)
	}
	if summary, ok := record.Get("summary"); ok && summary != nil {
		scan.Summary = summary.(string)
	}
	if createdAt, ok := record.Get("createdAt"); ok && createdAt != nil {
		if t, ok := createdAt.(time.Time); ok {
			scan.CreatedAt = t
		}
	}

	return scan
}
