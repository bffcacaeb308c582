package models

import (
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
	"github.com/uptrace/bun"
)

const (
	JobStatusPending    = "pending"
	JobStatusInProgress = "in_progress"
	JobStatusCompleted  = "completed"
	JobStatusFailed     = "failed"
)

const (
	JobTypeDownload = "download"
)

type Job struct {
	bun.BaseModel `bun:"table:jobs,alias:j"`

	ID              string      `bun:",pk,nullzero" json:"id"`
	Type            string      `bun:",nullzero" json:"type"`
	Status          string      `bun:",nullzero" json:"status"`
	Data            string      `bun:",nullzero" json:"-"`
	DataParsed      interface{} `bun:"-" json:"data"`
	ProgressCurrent int         `json:"progress_current"`
	ProgressTotal   int         `json:"progress_total"`
	ProgressBook    *string     `json:"progress_book,omitempty"`
	Error           *string     `json:"error,omitempty"`
	ProcessID       *string     `json:"process_id,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

func (job *Job) UnmarshalData() error {
	switch job.Type {
	case JobTypeDownload:
		job.DataParsed = &JobDownloadData{}
	}

	err := json.Unmarshal([]byte(job.Data), job.DataParsed)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// JobDownloadData is the payload of a bulk offline download job.
type JobDownloadData struct {
	LanguageCode string `json:"language_code"`
}
