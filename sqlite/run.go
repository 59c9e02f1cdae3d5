package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/ideaminer"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var (
	_ ideaminer.ReportWriter = (*RunService)(nil)
	_ ideaminer.IdeaFinder   = (*RunService)(nil)
)

// RunService persists mining reports to SQLite and reads them back. It is a
// report sink only: nothing stored here ever feeds back into analysis.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// hashURL computes xxHash of a URL and returns it as a hex string.
func hashURL(url string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(url))
	return hex.EncodeToString(b)
}

// WriteReport stores a run row plus one row per idea inside a single
// transaction, so a failed write never leaves a partial run behind. Idea
// positions record the ranked order so reads reproduce it.
func (s *RunService) WriteReport(ctx context.Context, report *ideaminer.Report) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	runID := uuid.New().String()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, generated_at, total_ideas, weekend_feasible)
		VALUES (?, ?, ?, ?)
	`, runID, report.GeneratedAt.UTC().Format(time.RFC3339Nano), report.TotalIdeas, report.WeekendFeasible)
	if err != nil {
		return err
	}

	for position, idea := range report.Ideas {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO ideas (id, run_id, title, url, url_hash, category, concepts,
				buildable_score, weekend_feasible, reasoning, source_bookmark, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), runID, idea.Title, idea.URL, hashURL(idea.URL), idea.Category,
			strings.Join(idea.Concepts, ","), idea.BuildableScore, idea.WeekendFeasible,
			idea.Reasoning, idea.SourceBookmark, position)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindIdeas retrieves ideas from the most recent run matching the filter,
// in ranked order. Returns ENOTFOUND if no run has been recorded.
func (s *RunService) FindIdeas(ctx context.Context, filter ideaminer.IdeaFilter) ([]*ideaminer.ProjectIdea, error) {
	var runID string
	err := s.db.QueryRowContext(ctx, `
		SELECT id FROM runs ORDER BY generated_at DESC LIMIT 1
	`).Scan(&runID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ideaminer.Errorf(ideaminer.ENOTFOUND, "no mining runs recorded")
	}
	if err != nil {
		return nil, err
	}

	var query strings.Builder
	args := []any{runID}

	query.WriteString(`
		SELECT title, url, category, concepts, buildable_score, weekend_feasible, reasoning, source_bookmark
		FROM ideas
		WHERE run_id = ?`)

	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, *filter.Category)
	}
	if filter.FeasibleOnly {
		query.WriteString(" AND weekend_feasible = 1")
	}

	query.WriteString(" ORDER BY position ASC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ideas []*ideaminer.ProjectIdea
	for rows.Next() {
		var idea ideaminer.ProjectIdea
		var concepts string

		if err := rows.Scan(&idea.Title, &idea.URL, &idea.Category, &concepts,
			&idea.BuildableScore, &idea.WeekendFeasible, &idea.Reasoning, &idea.SourceBookmark); err != nil {
			return nil, err
		}

		if concepts != "" {
			idea.Concepts = strings.Split(concepts, ",")
		} else {
			idea.Concepts = []string{}
		}

		ideas = append(ideas, &idea)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ideas: %w", err)
	}

	return ideas, nil
}
