package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kirubha-07/elix-career-advisor/internal/common"
	"github.com/kirubha-07/elix-career-advisor/internal/dataset"
)

// Queue hands job ids to the worker.
type Queue interface {
	PublishJob(ctx context.Context, jobID string) error
}

// Jobs creates report jobs and tracks their status.
type Jobs struct {
	repo     *Repo
	queue    Queue
	registry *Registry
	data     *dataset.Dataset
}

func NewJobs(repo *Repo, queue Queue, registry *Registry, data *dataset.Dataset) *Jobs {
	return &Jobs{repo: repo, queue: queue, registry: registry, data: data}
}

// Enqueue validates the request, stores a queued job and publishes it. A
// job that cannot be published is marked failed before returning.
func (j *Jobs) Enqueue(ctx context.Context, studentID, format string) (*Job, error) {
	rd, err := j.registry.Get(format)
	if err != nil {
		return nil, err
	}
	if _, err := j.data.ByID(studentID); err != nil {
		return nil, err
	}

	id, err := common.NewULID()
	if err != nil {
		return nil, fmt.Errorf("new job id: %w", err)
	}
	job := &Job{
		ID:        id,
		StudentID: strings.TrimSpace(studentID),
		Format:    strings.TrimPrefix(rd.Ext(), "."),
		Status:    JobQueued,
	}
	if err := j.repo.CreateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	if err := j.queue.PublishJob(ctx, job.ID); err != nil {
		if markErr := j.repo.MarkJobFailed(ctx, job.ID, "enqueue failed: "+err.Error()); markErr != nil {
			slog.ErrorContext(ctx, "mark unpublished job failed", "job_id", job.ID, "error", markErr)
		}
		return nil, fmt.Errorf("publish job: %w", err)
	}
	return job, nil
}

func (j *Jobs) Get(ctx context.Context, id string) (*Job, error) {
	return j.repo.GetJobByID(ctx, id)
}

// Processor renders queued jobs; the worker calls Handle per delivery.
type Processor struct {
	repo    *Repo
	reports *Service
	data    *dataset.Dataset
}

func NewProcessor(repo *Repo, reports *Service, data *dataset.Dataset) *Processor {
	return &Processor{repo: repo, reports: reports, data: data}
}

func (p *Processor) Handle(ctx context.Context, jobID string) error {
	start := time.Now()

	if err := p.repo.UpdateJobStatusRunning(ctx, jobID); err != nil {
		slog.WarnContext(ctx, "mark job running", "job_id", jobID, "error", err)
	}

	job, err := p.repo.GetJobByID(ctx, jobID)
	if err != nil {
		return fmt.Errorf("load job %s: %w", jobID, err)
	}

	doc, err := p.generate(ctx, job)
	if err != nil {
		if markErr := p.repo.MarkJobFailed(ctx, jobID, err.Error()); markErr != nil {
			slog.ErrorContext(ctx, "mark job failed", "job_id", jobID, "error", markErr)
		}
		slog.WarnContext(ctx, "report job failed", "job_id", jobID, "cost", time.Since(start), "error", err)
		return err
	}

	if err := p.repo.MarkJobSucceeded(ctx, jobID, doc.Path); err != nil {
		return fmt.Errorf("mark job %s succeeded: %w", jobID, err)
	}
	slog.InfoContext(ctx, "report job done", "job_id", jobID, "path", doc.Path, "cost", time.Since(start))
	return nil
}

func (p *Processor) generate(ctx context.Context, job *Job) (*Document, error) {
	rec, err := p.data.ByID(job.StudentID)
	if err != nil {
		return nil, fmt.Errorf("student %s: %w", job.StudentID, err)
	}
	return p.reports.Generate(ctx, rec, job.Format)
}
