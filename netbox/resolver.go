package netbox

import "context"

// resolveLimit caps name-resolution results. Ten hits is plenty for
// picking an id out of a free-text match.
const resolveLimit = 10

// Match is a simplified search hit with just enough to resolve a
// human-supplied name to an object id.
type Match struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Display string `json:"display,omitempty"`
	URL     string `json:"url,omitempty"`
}

// FindByName searches a collection with NetBox's free-text q filter
// and extracts {id, name, display, url} from each hit. Matching
// behavior is whatever the server's search implements; this side does
// no ranking. Objects without a name field fall back to their display
// label.
//
// Many write operations require a numeric reference where a human
// supplies a name; this is the bridge between the two.
func FindByName(ctx context.Context, c Client, endpoint, query string) ([]Match, error) {
	objs, err := c.List(ctx, endpoint, Params{"q": query, "limit": resolveLimit})
	if err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(objs))
	for _, obj := range objs {
		m := Match{ID: intField(obj, "id")}
		m.Name, _ = obj["name"].(string)
		m.Display, _ = obj["display"].(string)
		if m.Name == "" {
			m.Name = m.Display
		}
		m.URL, _ = obj["url"].(string)
		matches = append(matches, m)
	}
	return matches, nil
}

// intField reads a numeric field from a decoded object. JSON numbers
// decode as float64.
func intField(obj Object, key string) int {
	switch v := obj[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}
