package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateRun creates a new script run record and returns its ID. A nil user ID
// records an unowned run (CLI invocations without an account).
func (db *DB) CreateRun(ctx context.Context, userID uuid.UUID, productName, sourceURL, inputKind string) (uuid.UUID, error) {
	var owner any
	if userID != uuid.Nil {
		owner = userID
	}

	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO script_runs (user_id, product_name, source_url, input_kind, status)
		 VALUES ($1, $2, $3, $4, 'running')
		 RETURNING id`,
		owner, productName, sourceURL, inputKind,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun marks a script run as finished and records the generation mode
// and how many reviews were analyzed
func (db *DB) CompleteRun(ctx context.Context, runID uuid.UUID, status, mode string, reviewCount int) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE script_runs SET status = $1, mode = $2, review_count = $3, completed_at = NOW()
		 WHERE id = $4`,
		status, mode, reviewCount, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// GetRun retrieves a script run by ID scoped to its owner
func (db *DB) GetRun(ctx context.Context, userID, runID uuid.UUID) (*Run, error) {
	var run Run
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, product_name, COALESCE(source_url, ''), input_kind,
		        COALESCE(mode, ''), COALESCE(review_count, 0), status, created_at, completed_at
		 FROM script_runs WHERE id = $1 AND user_id = $2`,
		runID, userID,
	).Scan(&run.ID, &run.UserID, &run.ProductName, &run.SourceURL, &run.InputKind,
		&run.Mode, &run.ReviewCount, &run.Status, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// ListRuns retrieves a user's recent script runs, newest first
func (db *DB) ListRuns(ctx context.Context, userID uuid.UUID, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, product_name, COALESCE(source_url, ''), input_kind,
		        COALESCE(mode, ''), COALESCE(review_count, 0), status, created_at, completed_at
		 FROM script_runs WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.UserID, &run.ProductName, &run.SourceURL, &run.InputKind,
			&run.Mode, &run.ReviewCount, &run.Status, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// DeleteRun deletes a script run and all its artifacts (via cascade)
func (db *DB) DeleteRun(ctx context.Context, userID, runID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM script_runs WHERE id = $1 AND user_id = $2`, runID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("run not found: %s", runID)
	}
	return nil
}

// SaveArtifact stores a JSON artifact for a script run
func (db *DB) SaveArtifact(ctx context.Context, runID uuid.UUID, step, category string, content any) error {
	jsonBytes, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal artifact: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO script_artifacts (run_id, step, category, content)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (run_id, step) DO UPDATE SET category = $3, content = $4, created_at = NOW()`,
		runID, step, category, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save artifact %s: %w", step, err)
	}
	return nil
}

// SaveTextArtifact stores a text artifact (like the rendered prompt) for a script run
func (db *DB) SaveTextArtifact(ctx context.Context, runID uuid.UUID, step, category, text string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO script_artifacts (run_id, step, category, text_content)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (run_id, step) DO UPDATE SET category = $3, text_content = $4, created_at = NOW()`,
		runID, step, category, text,
	)
	if err != nil {
		return fmt.Errorf("failed to save text artifact %s: %w", step, err)
	}
	return nil
}

// GetArtifact retrieves a JSON artifact by run ID and step
func (db *DB) GetArtifact(ctx context.Context, runID uuid.UUID, step string) ([]byte, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM script_artifacts WHERE run_id = $1 AND step = $2`,
		runID, step,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get artifact %s: %w", step, err)
	}
	return content, nil
}

// GetTextArtifact retrieves a text artifact by run ID and step
func (db *DB) GetTextArtifact(ctx context.Context, runID uuid.UUID, step string) (string, error) {
	var text string
	err := db.pool.QueryRow(ctx,
		`SELECT text_content FROM script_artifacts WHERE run_id = $1 AND step = $2`,
		runID, step,
	).Scan(&text)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("failed to get text artifact %s: %w", step, err)
	}
	return text, nil
}
