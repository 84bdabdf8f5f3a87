package askpod

import (
	"context"
	"time"
)

// RunRecord is the persisted transcript of one completed ask cycle.
type RunRecord struct {
	ID           string `gorm:"primaryKey"`
	SessionID    string `gorm:"index"`
	Question     string
	Answer       string
	ToolNames    string
	InputTokens  int64
	OutputTokens int64
	CreatedAt    time.Time
}

type Storage interface {
	SaveRun(ctx context.Context, run *RunRecord) error
	Runs(ctx context.Context, limit, offset int) ([]RunRecord, error)
	Close() error
}
