package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/robfig/cron/v3"
)

// JobRunner runs and lists the scheduled jobs.
type JobRunner interface {
	RunNow(job string) bool
	EntryID(job string) (cron.EntryID, bool)
	Entries() []cron.Entry
}

// JobsHandler handles manual job triggers and job listing.
type JobsHandler struct {
	runner JobRunner
	jobs   []string
}

// NewJobsHandler creates a new JobsHandler over the named jobs.
func NewJobsHandler(r JobRunner, jobs ...string) *JobsHandler {
	return &JobsHandler{runner: r, jobs: jobs}
}

// JobInfo describes one scheduled job.
type JobInfo struct {
	Name      string     `json:"name"                example:"balance" doc:"Job name"`
	Scheduled bool       `json:"scheduled"           doc:"Whether the job has a positive interval"`
	NextRun   *time.Time `json:"next_run,omitempty"  doc:"Next scheduled run"`
	LastRun   *time.Time `json:"last_run,omitempty"  doc:"Previous scheduled run"`
}

// ListJobsOutput is the response body for the job listing endpoint.
type ListJobsOutput struct {
	Body struct {
		Jobs []JobInfo `json:"jobs"`
	}
}

// ListJobs reports every known job and its schedule.
func (h *JobsHandler) ListJobs(_ context.Context, _ *struct{}) (*ListJobsOutput, error) {
	byID := make(map[cron.EntryID]cron.Entry)
	for _, e := range h.runner.Entries() {
		byID[e.ID] = e
	}

	resp := &ListJobsOutput{}
	resp.Body.Jobs = make([]JobInfo, 0, len(h.jobs))
	for _, name := range h.jobs {
		info := JobInfo{Name: name}
		if id, ok := h.runner.EntryID(name); ok {
			info.Scheduled = true
			if e, ok := byID[id]; ok {
				info.NextRun = timePtr(e.Next)
				info.LastRun = timePtr(e.Prev)
			}
		}
		resp.Body.Jobs = append(resp.Body.Jobs, info)
	}
	return resp, nil
}

// RunJobInput names the job to run.
type RunJobInput struct {
	Job string `path:"job" example:"webhook_check" doc:"Job name"`
}

// RunJobOutput is the response body for the run endpoint.
type RunJobOutput struct {
	Body struct {
		Status string `json:"status" example:"job completed" doc:"Run status"`
	}
}

// RunJob runs a scheduled job immediately. The result of the run is
// reported through the job metrics and logs.
func (h *JobsHandler) RunJob(_ context.Context, in *RunJobInput) (*RunJobOutput, error) {
	if !h.runner.RunNow(in.Job) {
		return nil, huma.Error404NotFound("job not scheduled: " + in.Job)
	}

	resp := &RunJobOutput{}
	resp.Body.Status = "job completed"
	return resp, nil
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// RegisterJobRoutes registers job endpoints with the Huma API.
func RegisterJobRoutes(api huma.API, h *JobsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-jobs",
		Method:      http.MethodGet,
		Path:        "/api/v1/jobs",
		Summary:     "List scheduled jobs",
		Tags:        []string{"jobs"},
	}, h.ListJobs)

	huma.Register(api, huma.Operation{
		OperationID: "run-job",
		Method:      http.MethodPost,
		Path:        "/api/v1/jobs/{job}/run",
		Summary:     "Run a scheduled job now",
		Tags:        []string{"jobs"},
	}, h.RunJob)
}
