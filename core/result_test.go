package core

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestOKEnvelope(t *testing.T) {
	r := OK(map[string]any{"id": 1})

	if !r.Success {
		t.Errorf("Success = false, want true")
	}
	if r.Error != "" {
		t.Errorf("Error = %q, want empty", r.Error)
	}

	encoded, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"success":true,"data":{"id":1}}`
	if string(encoded) != want {
		t.Errorf("Marshal() = %s, want %s", encoded, want)
	}
}

func TestFailEnvelope(t *testing.T) {
	r := Fail(errors.New("boom"))

	if r.Success {
		t.Errorf("Success = true, want false")
	}
	if r.Error != "boom" {
		t.Errorf("Error = %q, want %q", r.Error, "boom")
	}

	encoded, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"success":false,"error":"boom"}`
	if string(encoded) != want {
		t.Errorf("Marshal() = %s, want %s", encoded, want)
	}
}

func TestFailfFormats(t *testing.T) {
	r := Failf("script %d missing", 17)

	if r.Success {
		t.Errorf("Success = true, want false")
	}
	if r.Error != "script 17 missing" {
		t.Errorf("Error = %q, want %q", r.Error, "script 17 missing")
	}
}
