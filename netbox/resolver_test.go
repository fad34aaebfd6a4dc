package netbox

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFindByName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tenancy/tenants/" {
			t.Errorf("Path = %q, want /api/tenancy/tenants/", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "Acme" {
			t.Errorf("q = %q, want Acme", got)
		}
		if got := r.URL.Query().Get("limit"); got != "10" {
			t.Errorf("limit = %q, want 10", got)
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"results": [
			{"id": 1, "name": "Acme Corp", "display": "Acme Corp", "url": "https://nb/api/tenancy/tenants/1/"},
			{"id": 2, "display": "Acme Labs", "url": "https://nb/api/tenancy/tenants/2/"}
		]}`))
	}))
	defer server.Close()

	c := New(server.URL, "tok")
	matches, err := FindByName(context.Background(), c, "tenancy/tenants", "Acme")
	if err != nil {
		t.Fatalf("FindByName() error = %v", err)
	}

	if len(matches) != 2 {
		t.Fatalf("len(matches) = %d, want 2", len(matches))
	}
	if matches[0].ID != 1 || matches[0].Name != "Acme Corp" {
		t.Errorf("matches[0] = %+v, want id 1 name Acme Corp", matches[0])
	}
	// No name field: display fills in.
	if matches[1].Name != "Acme Labs" {
		t.Errorf("matches[1].Name = %q, want display fallback Acme Labs", matches[1].Name)
	}
}

func TestFindByNameNoHits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	c := New(server.URL, "tok")
	matches, err := FindByName(context.Background(), c, "dcim/regions", "nowhere")
	if err != nil {
		t.Fatalf("FindByName() error = %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("len(matches) = %d, want 0", len(matches))
	}
}
