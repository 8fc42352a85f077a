package report

import "time"

type JobStatus string

const (
	JobQueued    JobStatus = "queued"
	JobRunning   JobStatus = "running"
	JobSucceeded JobStatus = "succeeded"
	JobFailed    JobStatus = "failed"
)

// Job is a queued request to render a student's plan in the worker.
type Job struct {
	ID string `gorm:"primaryKey;size:26" json:"id"` // ULID length

	StudentID string `gorm:"size:64;index;not null" json:"student_id"`
	Format    string `gorm:"size:16;not null" json:"format"`

	Status JobStatus `gorm:"type:varchar(16);index;not null" json:"status"`

	// Filled when succeeded
	FilePath *string `gorm:"type:text" json:"file_path"`

	// Filled when failed
	Error *string `gorm:"type:text" json:"error"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Job) TableName() string { return "report_jobs" }
