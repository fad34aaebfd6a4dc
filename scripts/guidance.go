package scripts

import (
	"fmt"
	"strings"
)

// Variable type tags NetBox reports for script parameters.
const (
	typeObject  = "ObjectVar"
	typeString  = "StringVar"
	typeInteger = "IntegerVar"
	typeBoolean = "BooleanVar"
)

// VarGuidance explains how to supply one script variable.
type VarGuidance struct {
	Type     string `json:"type"`
	Required bool   `json:"required"`
	Help     string `json:"help"`
	Example  string `json:"example"`
}

// VariablesInfo is the guidance payload for one script.
type VariablesInfo struct {
	ScriptID    int                    `json:"script_id"`
	ScriptName  string                 `json:"script_name"`
	Description string                 `json:"description"`
	Variables   map[string]VarGuidance `json:"variables"`
}

// objectVarHints routes ObjectVar parameters to the lookup tool for
// their object kind, keyed by a name fragment. Order matters: the
// first matching fragment wins.
var objectVarHints = []struct {
	fragment string
	help     string
}{
	{"tenant", "Use search_objects('tenancy/tenants', 'query') to find tenant ID"},
	{"region", "Use search_objects('dcim/regions', 'query') to find region ID"},
	{"site", "Use get_sites() or search_objects('dcim/sites', 'query') to find site ID"},
	{"device", "Use get_devices() or search_objects('dcim/devices', 'query') to find device ID"},
}

// buildVariablesInfo derives the guidance record for every declared
// variable of a script.
func buildVariablesInfo(sc Script) *VariablesInfo {
	info := &VariablesInfo{
		ScriptID:    sc.ID,
		ScriptName:  sc.Name,
		Description: sc.Description,
		Variables:   make(map[string]VarGuidance, len(sc.Vars)),
	}
	for name, typ := range sc.Vars {
		info.Variables[name] = guidanceFor(name, typ)
	}
	return info
}

// guidanceFor selects the guidance for one variable. ObjectVar
// parameters need an object id, not a name, so they get a hint naming
// the lookup helper; scalar types get an example value; anything
// unrecognized gets a generic pointer.
func guidanceFor(name, typ string) VarGuidance {
	g := VarGuidance{
		Type: typ,
		// The scripts API does not expose optionality, so treat every
		// declared variable as required.
		Required: true,
	}

	switch typ {
	case typeObject:
		lower := strings.ToLower(name)
		for _, hint := range objectVarHints {
			if strings.Contains(lower, hint.fragment) {
				g.Help = hint.help
				g.Example = fmt.Sprintf("Search for %s name and use the 'id' field", hint.fragment)
				return g
			}
		}
		g.Help = fmt.Sprintf("Use search_objects() to find the %s object ID", name)
		g.Example = "Search by name and use the 'id' field from results"
	case typeString:
		g.Help = "Provide as a string value"
		g.Example = fmt.Sprintf("%q", "example_"+name)
	case typeInteger:
		g.Help = "Provide as an integer value"
		g.Example = "10"
	case typeBoolean:
		g.Help = "Provide as true or false"
		g.Example = "true"
	default:
		g.Help = fmt.Sprintf("Provide value for %s", typ)
		g.Example = "See NetBox documentation"
	}
	return g
}
