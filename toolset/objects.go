package toolset

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/opsbridge/netbox-mcp/core"
	"github.com/opsbridge/netbox-mcp/netbox"
	"github.com/opsbridge/netbox-mcp/tools"
)

var searchObjectsSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"endpoint": {"type": "string", "description": "NetBox API endpoint, e.g. dcim/sites or ipam/vlans"},
		"query": {"type": "string", "description": "Free-text search term"},
		"limit": {"type": "integer", "description": "Maximum number of results", "default": 25}
	},
	"required": ["endpoint", "query"]
}`)

var updateObjectSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"endpoint": {"type": "string", "description": "NetBox API endpoint"},
		"object_id": {"type": "integer", "description": "ID of the object to update"},
		"data": {"type": "object", "description": "Fields to change"}
	},
	"required": ["endpoint", "object_id", "data"]
}`)

var deleteObjectSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"endpoint": {"type": "string", "description": "NetBox API endpoint"},
		"object_id": {"type": "integer", "description": "ID of the object to delete"}
	},
	"required": ["endpoint", "object_id"]
}`)

var searchForObjectIDSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"endpoint": {"type": "string", "description": "NetBox API endpoint, e.g. tenancy/tenants or dcim/regions"},
		"search_name": {"type": "string", "description": "Name to search for"},
		"name_field": {"type": "string", "description": "Field name to search in", "default": "name"}
	},
	"required": ["endpoint", "search_name"]
}`)

// objectMatches is the payload for search_for_object_id: the resolved
// candidates plus enough context to repeat or refine the search.
type objectMatches struct {
	Endpoint   string         `json:"endpoint"`
	SearchName string         `json:"search_name"`
	Count      int            `json:"count"`
	Matches    []netbox.Match `json:"matches"`
}

func objectTools(cfg Config) []tools.Tool {
	client := cfg.Client

	return []tools.Tool{
		tools.Func("search_objects",
			"Search for objects in NetBox using the 'q' parameter.",
			searchObjectsSchema,
			func(ctx context.Context, args json.RawMessage) core.Result {
				var in struct {
					Endpoint string `json:"endpoint"`
					Query    string `json:"query"`
					Limit    int    `json:"limit"`
				}
				if err := decodeArgs(args, &in); err != nil {
					return core.Fail(err)
				}
				params := netbox.Params{"q": in.Query, "limit": orDefault(in.Limit, defaultSearchLimit)}
				objects, err := client.List(ctx, in.Endpoint, params)
				if err != nil {
					return core.Fail(err)
				}
				return core.OK(objects)
			}),

		tools.Func("update_object",
			"Update an existing object in NetBox.",
			updateObjectSchema,
			func(ctx context.Context, args json.RawMessage) core.Result {
				var in struct {
					Endpoint string         `json:"endpoint"`
					ObjectID int            `json:"object_id"`
					Data     map[string]any `json:"data"`
				}
				if err := decodeArgs(args, &in); err != nil {
					return core.Fail(err)
				}
				updated, err := client.Update(ctx, in.Endpoint, in.ObjectID, in.Data)
				if err != nil {
					return core.Fail(err)
				}
				return core.OK(updated)
			}),

		tools.Func("delete_object",
			"Delete an object from NetBox.",
			deleteObjectSchema,
			func(ctx context.Context, args json.RawMessage) core.Result {
				var in struct {
					Endpoint string `json:"endpoint"`
					ObjectID int    `json:"object_id"`
				}
				if err := decodeArgs(args, &in); err != nil {
					return core.Fail(err)
				}
				ok, err := client.Delete(ctx, in.Endpoint, in.ObjectID)
				if err != nil {
					return core.Fail(err)
				}
				if !ok {
					return core.Failf("Deletion failed")
				}
				return core.OK(map[string]any{"message": fmt.Sprintf("Object %d deleted", in.ObjectID)})
			}),

		tools.Func("search_for_object_id",
			"Search for NetBox objects by name and return their IDs. Use this to resolve ObjectVar parameters before executing a custom script.",
			searchForObjectIDSchema,
			func(ctx context.Context, args json.RawMessage) core.Result {
				var in struct {
					Endpoint   string `json:"endpoint"`
					SearchName string `json:"search_name"`
					// NameField is accepted for compatibility; matching is
					// free-text via the q parameter regardless.
					NameField string `json:"name_field"`
				}
				if err := decodeArgs(args, &in); err != nil {
					return core.Fail(err)
				}
				matches, err := netbox.FindByName(ctx, client, in.Endpoint, in.SearchName)
				if err != nil {
					return core.Fail(err)
				}
				return core.OK(objectMatches{
					Endpoint:   in.Endpoint,
					SearchName: in.SearchName,
					Count:      len(matches),
					Matches:    matches,
				})
			}),
	}
}
