package db

import (
	"time"

	"github.com/google/uuid"
)

// Run represents a script generation run record
type Run struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	ProductName string     `json:"product_name"`
	SourceURL   string     `json:"source_url,omitempty"`
	InputKind   string     `json:"input_kind"`
	Mode        string     `json:"mode,omitempty"`
	ReviewCount int        `json:"review_count"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// User represents a user account
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	PasswordSet  bool      `json:"password_set" db:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Input kind constants for script runs
const (
	InputKindURL  = "url"
	InputKindText = "text"
)

// Run status constants
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// ArtifactStep constants for known artifact types
const (
	StepOutput     = "script_output"
	StepAnalysis   = "analysis"
	StepPrompt     = "prompt"
	StepScriptText = "script_text"
)

// Artifact category constants grouping steps by pipeline stage
const (
	CategoryResolve    = "resolve"
	CategoryAnalysis   = "analysis"
	CategoryGeneration = "generation"
)
