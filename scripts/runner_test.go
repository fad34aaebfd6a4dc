package scripts

import (
	"context"
	"errors"
	"testing"

	"github.com/opsbridge/netbox-mcp/netbox"
)

func TestExecuteJobIDShapes(t *testing.T) {
	tests := []struct {
		name      string
		response  netbox.Object
		wantJobID *int
	}{
		{
			name:      "nested job",
			response:  netbox.Object{"job": map[string]any{"id": float64(42), "status": "pending"}},
			wantJobID: intPtr(42),
		},
		{
			name:      "top-level id",
			response:  netbox.Object{"id": float64(7)},
			wantJobID: intPtr(7),
		},
		{
			name:      "no handle",
			response:  netbox.Object{"result": "accepted"},
			wantJobID: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{
				create: func(endpoint string, fields netbox.Object) (netbox.Object, error) {
					if endpoint != "extras/scripts/17" {
						t.Errorf("endpoint = %q, want extras/scripts/17", endpoint)
					}
					if fields["commit"] != true {
						t.Errorf("commit = %v, want true", fields["commit"])
					}
					data, ok := fields["data"].(map[string]any)
					if !ok || data["site_name"] != "DC-East-01" {
						t.Errorf("data = %v", fields["data"])
					}
					return tt.response, nil
				},
			}

			svc := NewService(client)
			exec, err := svc.Execute(context.Background(), 17, map[string]any{"site_name": "DC-East-01"}, true)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}

			if exec.ScriptID != 17 {
				t.Errorf("ScriptID = %d, want 17", exec.ScriptID)
			}
			if (exec.JobID == nil) != (tt.wantJobID == nil) {
				t.Fatalf("JobID = %v, want %v", exec.JobID, tt.wantJobID)
			}
			if tt.wantJobID != nil && *exec.JobID != *tt.wantJobID {
				t.Errorf("JobID = %d, want %d", *exec.JobID, *tt.wantJobID)
			}
		})
	}
}

func TestExecuteNilDataBecomesEmptyObject(t *testing.T) {
	client := &fakeClient{
		create: func(endpoint string, fields netbox.Object) (netbox.Object, error) {
			data, ok := fields["data"].(map[string]any)
			if !ok {
				t.Fatalf("data = %v, want empty map", fields["data"])
			}
			if len(data) != 0 {
				t.Errorf("data = %v, want empty", data)
			}
			if fields["commit"] != false {
				t.Errorf("commit = %v, want false", fields["commit"])
			}
			return netbox.Object{"id": float64(1)}, nil
		},
	}

	svc := NewService(client)
	if _, err := svc.Execute(context.Background(), 5, nil, false); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
}

func TestJobStatusExtractsFields(t *testing.T) {
	client := &fakeClient{
		getByID: func(endpoint string, id int) (netbox.Object, error) {
			if endpoint != "core/jobs" || id != 42 {
				t.Errorf("got %s/%d, want core/jobs/42", endpoint, id)
			}
			return netbox.Object{
				"id":        float64(42),
				"status":    map[string]any{"value": "completed", "label": "Completed"},
				"completed": "2026-08-20T12:00:00Z",
			}, nil
		},
	}

	svc := NewService(client)
	js, err := svc.JobStatus(context.Background(), 42)
	if err != nil {
		t.Fatalf("JobStatus() error = %v", err)
	}
	if js.Status != "completed" {
		t.Errorf("Status = %q, want completed", js.Status)
	}
	if js.Completed != "2026-08-20T12:00:00Z" {
		t.Errorf("Completed = %v", js.Completed)
	}
}

func TestListJobsFilters(t *testing.T) {
	client := &fakeClient{
		list: func(endpoint string, params netbox.Params) ([]netbox.Object, error) {
			if endpoint != "core/jobs" {
				t.Errorf("endpoint = %q, want core/jobs", endpoint)
			}
			if params["object_type"] != "extras.script" {
				t.Errorf("object_type = %v, want extras.script", params["object_type"])
			}
			if params["limit"] != 25 {
				t.Errorf("limit = %v, want 25", params["limit"])
			}
			if params["name"] != "CreateSiteAndLocations" {
				t.Errorf("name = %v", params["name"])
			}
			return []netbox.Object{{"id": float64(1)}}, nil
		},
	}

	svc := NewService(client)
	jobs, err := svc.ListJobs(context.Background(), 25, "CreateSiteAndLocations")
	if err != nil {
		t.Fatalf("ListJobs() error = %v", err)
	}
	if len(jobs) != 1 {
		t.Errorf("len(jobs) = %d, want 1", len(jobs))
	}
}

func TestExecutePropagatesClientError(t *testing.T) {
	wantErr := errors.New("boom")
	client := &fakeClient{
		create: func(endpoint string, fields netbox.Object) (netbox.Object, error) {
			return nil, wantErr
		},
	}

	svc := NewService(client)
	if _, err := svc.Execute(context.Background(), 1, nil, true); !errors.Is(err, wantErr) {
		t.Errorf("Execute() error = %v, want %v", err, wantErr)
	}
}

func intPtr(v int) *int { return &v }
