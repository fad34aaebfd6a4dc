package scripts

import (
	"context"
	"fmt"

	"github.com/opsbridge/netbox-mcp/netbox"
)

// scriptObjectType is the job filter value for custom-script runs.
const scriptObjectType = "extras.script"

// Execution reports the outcome of submitting a script run. JobID is
// nil when the instance accepted the run without returning a job
// handle. That still counts as started, the run is just not trackable
// from here.
type Execution struct {
	ScriptID int           `json:"script_id"`
	JobID    *int          `json:"job_id"`
	Job      netbox.Object `json:"job,omitempty"`
	Response netbox.Object `json:"response,omitempty"`
}

// JobStatus is a job record with the status value and completion flag
// pulled out as convenience fields.
type JobStatus struct {
	Status    string        `json:"status,omitempty"`
	Completed any           `json:"completed,omitempty"`
	Job       netbox.Object `json:"data"`
}

// Execute submits a script run with the given parameter values.
// Commit false is a dry run. The job handle comes back nested under
// "job" or, on some NetBox versions, as a top-level id; a response
// with neither shape leaves JobID nil.
//
// This layer is fire-and-forget: it never polls. Track the run with
// JobStatus at the caller's own pace.
func (s *Service) Execute(ctx context.Context, scriptID int, data map[string]any, commit bool) (*Execution, error) {
	if data == nil {
		data = map[string]any{}
	}
	payload := netbox.Object{"data": data, "commit": commit}

	endpoint := fmt.Sprintf("%s/%d", scriptsEndpoint, scriptID)
	resp, err := s.client.Create(ctx, endpoint, payload)
	if err != nil {
		return nil, err
	}

	exec := &Execution{ScriptID: scriptID, Response: resp}
	if job, ok := resp["job"].(map[string]any); ok {
		exec.Job = job
		if id, ok := numField(job, "id"); ok {
			exec.JobID = &id
		}
	} else if id, ok := numField(resp, "id"); ok {
		exec.JobID = &id
	}
	return exec, nil
}

// JobStatus fetches one job record.
func (s *Service) JobStatus(ctx context.Context, jobID int) (*JobStatus, error) {
	job, err := s.client.GetByID(ctx, jobsEndpoint, jobID, nil)
	if err != nil {
		return nil, err
	}

	js := &JobStatus{Job: job}
	if status, ok := job["status"].(map[string]any); ok {
		js.Status, _ = status["value"].(string)
	}
	js.Completed = job["completed"]
	return js, nil
}

// ListJobs returns recent script execution jobs, newest first per the
// API's default ordering, optionally filtered by script name.
func (s *Service) ListJobs(ctx context.Context, limit int, scriptName string) ([]netbox.Object, error) {
	params := netbox.Params{"limit": limit, "object_type": scriptObjectType}
	if scriptName != "" {
		params["name"] = scriptName
	}
	return s.client.List(ctx, jobsEndpoint, params)
}

// numField reads a numeric field, reporting whether it was present.
func numField(obj netbox.Object, key string) (int, bool) {
	switch v := obj[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}
