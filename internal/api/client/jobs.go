package client

import (
	"context"
	"fmt"
	"net/url"
)

// ListJobs returns every job the server knows about and its schedule.
func (c *Client) ListJobs(ctx context.Context) ([]Job, error) {
	var resp struct {
		Jobs []Job `json:"jobs"`
	}
	if err := c.get(ctx, "/api/v1/jobs", &resp); err != nil {
		return nil, err
	}
	return resp.Jobs, nil
}

// RunJob asks the server to run a scheduled job now and returns its status
// message.
func (c *Client) RunJob(ctx context.Context, job string) (string, error) {
	var resp struct {
		Status string `json:"status"`
	}
	path := fmt.Sprintf("/api/v1/jobs/%s/run", url.PathEscape(job))
	if err := c.post(ctx, path, nil, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}
