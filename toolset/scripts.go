package toolset

import (
	"context"
	"encoding/json"

	"github.com/opsbridge/netbox-mcp/core"
	"github.com/opsbridge/netbox-mcp/scripts"
	"github.com/opsbridge/netbox-mcp/tools"
)

var getCustomScriptsSchema = json.RawMessage(`{
	"type": "object",
	"properties": {}
}`)

var getScriptVariablesSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"script_id": {"type": "integer", "description": "Script ID from get_custom_scripts"}
	},
	"required": ["script_id"]
}`)

var findCustomScriptSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"query": {"type": "string", "description": "Search term, e.g. 'create site' or 'provision'"}
	},
	"required": ["query"]
}`)

var executeCustomScriptSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"script_id": {"type": "integer", "description": "Script ID from get_custom_scripts"},
		"data": {"type": "object", "description": "Script parameters keyed by variable name. ObjectVar values must be object IDs; use search_for_object_id to resolve names first."},
		"commit": {"type": "boolean", "description": "Commit changes. False performs a dry run.", "default": true}
	},
	"required": ["script_id"]
}`)

var getScriptJobStatusSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"job_id": {"type": "integer", "description": "Job ID returned by execute_custom_script"}
	},
	"required": ["job_id"]
}`)

var listScriptJobsSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"limit": {"type": "integer", "description": "Maximum number of jobs to return", "default": 50},
		"script_name": {"type": "string", "description": "Filter by script name"}
	}
}`)

// scriptCatalog is the payload for get_custom_scripts.
type scriptCatalog struct {
	Count   int              `json:"count"`
	Scripts []scripts.Script `json:"scripts"`
}

// scriptMatches is the payload for find_custom_script.
type scriptMatches struct {
	Query   string           `json:"query"`
	Count   int              `json:"count"`
	Matches []scripts.Script `json:"matches"`
}

// scriptExecution is the payload for execute_custom_script. JobID has
// no omitempty: a run accepted without a job handle reports job_id
// null rather than dropping the field.
type scriptExecution struct {
	Message string `json:"message"`
	*scripts.Execution
}

func scriptTools(cfg Config) []tools.Tool {
	svc := cfg.Scripts

	return []tools.Tool{
		tools.Func("get_custom_scripts",
			"List all available custom scripts in NetBox with their metadata and input variables.",
			getCustomScriptsSchema,
			func(ctx context.Context, args json.RawMessage) core.Result {
				list, err := svc.List(ctx)
				if err != nil {
					return core.Fail(err)
				}
				return core.OK(scriptCatalog{Count: len(list), Scripts: list})
			}),

		tools.Func("get_script_variables",
			"Get a script's input variables with guidance on how to provide each value.",
			getScriptVariablesSchema,
			func(ctx context.Context, args json.RawMessage) core.Result {
				var in struct {
					ScriptID int `json:"script_id"`
				}
				if err := decodeArgs(args, &in); err != nil {
					return core.Fail(err)
				}
				info, err := svc.Variables(ctx, in.ScriptID)
				if err != nil {
					return core.Fail(err)
				}
				return core.OK(info)
			}),

		tools.Func("find_custom_script",
			"Search custom scripts by name or description, most relevant first.",
			findCustomScriptSchema,
			func(ctx context.Context, args json.RawMessage) core.Result {
				var in struct {
					Query string `json:"query"`
				}
				if err := decodeArgs(args, &in); err != nil {
					return core.Fail(err)
				}
				matches, err := svc.Find(ctx, in.Query)
				if err != nil {
					return core.Fail(err)
				}
				return core.OK(scriptMatches{Query: in.Query, Count: len(matches), Matches: matches})
			}),

		tools.Func("execute_custom_script",
			"Execute a NetBox custom script by ID. Returns the job handle for tracking the run with get_script_job_status.",
			executeCustomScriptSchema,
			func(ctx context.Context, args json.RawMessage) core.Result {
				var in struct {
					ScriptID int            `json:"script_id"`
					Data     map[string]any `json:"data"`
					Commit   *bool          `json:"commit"`
				}
				if err := decodeArgs(args, &in); err != nil {
					return core.Fail(err)
				}
				commit := true
				if in.Commit != nil {
					commit = *in.Commit
				}
				exec, err := svc.Execute(ctx, in.ScriptID, in.Data, commit)
				if err != nil {
					return core.Fail(err)
				}
				return core.OK(scriptExecution{
					Message:   "Script execution started successfully",
					Execution: exec,
				})
			}),

		tools.Func("get_script_job_status",
			"Get the status and results of a custom script execution job.",
			getScriptJobStatusSchema,
			func(ctx context.Context, args json.RawMessage) core.Result {
				var in struct {
					JobID int `json:"job_id"`
				}
				if err := decodeArgs(args, &in); err != nil {
					return core.Fail(err)
				}
				status, err := svc.JobStatus(ctx, in.JobID)
				if err != nil {
					return core.Fail(err)
				}
				return core.OK(status)
			}),

		tools.Func("list_script_jobs",
			"List recent custom script execution jobs.",
			listScriptJobsSchema,
			func(ctx context.Context, args json.RawMessage) core.Result {
				var in struct {
					Limit      int    `json:"limit"`
					ScriptName string `json:"script_name"`
				}
				if err := decodeArgs(args, &in); err != nil {
					return core.Fail(err)
				}
				jobs, err := svc.ListJobs(ctx, orDefault(in.Limit, defaultListLimit), in.ScriptName)
				if err != nil {
					return core.Fail(err)
				}
				return core.OK(jobs)
			}),
	}
}
