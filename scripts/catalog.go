// Package scripts layers the custom-script workflow over the NetBox
// client: catalog listing, per-variable guidance, relevance search,
// and execution with job tracking.
//
// Custom scripts are user-defined automation workflows living inside
// NetBox (provision a site, bulk-configure devices, run compliance
// checks). The catalog is read fresh from the instance on every query
// and never cached here.
package scripts

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/opsbridge/netbox-mcp/core"
	"github.com/opsbridge/netbox-mcp/netbox"
)

const (
	scriptsEndpoint = "extras/scripts"
	jobsEndpoint    = "core/jobs"
)

// defaultDescription fills in for scripts published without one.
const defaultDescription = "No description available"

// Script describes a NetBox custom script: identity, declared
// variables (name to type tag, e.g. "ObjectVar"), and whether the
// instance will let it run.
type Script struct {
	ID           int               `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Display      string            `json:"display,omitempty"`
	Module       string            `json:"module,omitempty"`
	Vars         map[string]string `json:"vars"`
	IsExecutable bool              `json:"is_executable"`
	LastResult   any               `json:"last_result,omitempty"`
}

// Service provides the script catalog and execution operations.
type Service struct {
	client netbox.Client
}

// NewService creates a script service over the given client.
func NewService(client netbox.Client) *Service {
	return &Service{client: client}
}

// List fetches the script catalog, normalized into uniform descriptors
// with safe defaults for missing optional fields.
func (s *Service) List(ctx context.Context) ([]Script, error) {
	objs, err := s.client.List(ctx, scriptsEndpoint, nil)
	if err != nil {
		return nil, err
	}

	catalog := make([]Script, 0, len(objs))
	for _, obj := range objs {
		catalog = append(catalog, normalizeScript(obj))
	}
	return catalog, nil
}

// Variables returns guidance for each declared variable of the script
// with the given id. The id is checked against the normalized catalog:
// an id absent there is a not-found failure regardless of what the
// transport would answer for it.
func (s *Service) Variables(ctx context.Context, scriptID int) (*VariablesInfo, error) {
	catalog, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, sc := range catalog {
		if sc.ID == scriptID {
			return buildVariablesInfo(sc), nil
		}
	}
	return nil, fmt.Errorf("script %d: %w", scriptID, core.ErrNotFound)
}

// Find ranks catalog scripts against a free-text query and returns the
// relevant ones, best match first. Scripts with no overlap are
// excluded; ties keep catalog order. The score itself is internal and
// not part of the output.
func (s *Service) Find(ctx context.Context, query string) ([]Script, error) {
	catalog, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	words := strings.Fields(q)

	type scored struct {
		script Script
		score  int
	}
	var matches []scored
	for _, sc := range catalog {
		if score := relevance(sc, q, words); score > 0 {
			matches = append(matches, scored{sc, score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	out := make([]Script, len(matches))
	for i, m := range matches {
		out[i] = m.script
	}
	return out, nil
}

// relevance computes the match score: whole-query substring hits count
// 10/5/3 for name/description/display, and each query word longer
// than two characters adds 2 for a name hit and 1 for a description
// hit.
func relevance(sc Script, query string, words []string) int {
	name := strings.ToLower(sc.Name)
	description := strings.ToLower(sc.Description)
	display := strings.ToLower(sc.Display)

	score := 0
	if strings.Contains(name, query) {
		score += 10
	}
	if strings.Contains(description, query) {
		score += 5
	}
	if strings.Contains(display, query) {
		score += 3
	}

	for _, word := range words {
		if len(word) <= 2 {
			continue
		}
		if strings.Contains(name, word) {
			score += 2
		}
		if strings.Contains(description, word) {
			score++
		}
	}
	return score
}

// normalizeScript maps a raw catalog entry to a Script, filling
// missing optional fields with safe defaults.
func normalizeScript(obj netbox.Object) Script {
	sc := Script{
		Description: defaultDescription,
		Vars:        map[string]string{},
	}

	sc.ID = intField(obj, "id")
	sc.Name, _ = obj["name"].(string)
	if d, ok := obj["description"].(string); ok && d != "" {
		sc.Description = d
	}
	sc.Display, _ = obj["display"].(string)
	sc.Module, _ = obj["module"].(string)

	if vars, ok := obj["vars"].(map[string]any); ok {
		for name, typ := range vars {
			if tag, ok := typ.(string); ok {
				sc.Vars[name] = tag
			} else {
				sc.Vars[name] = fmt.Sprint(typ)
			}
		}
	}

	sc.IsExecutable, _ = obj["is_executable"].(bool)
	sc.LastResult = obj["result"]
	return sc
}

// intField reads a numeric field from a decoded object. JSON numbers
// decode as float64.
func intField(obj netbox.Object, key string) int {
	switch v := obj[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}
