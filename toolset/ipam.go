package toolset

import (
	"context"
	"encoding/json"

	"github.com/opsbridge/netbox-mcp/core"
	"github.com/opsbridge/netbox-mcp/netbox"
	"github.com/opsbridge/netbox-mcp/tools"
)

var getIPAddressesSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"limit": {"type": "integer", "description": "Maximum number of IP addresses to return", "default": 50},
		"vrf_id": {"type": "integer", "description": "Filter by VRF ID"},
		"params": {"type": "object", "description": "Additional NetBox filter parameters"}
	}
}`)

var createIPAddressSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"address": {"type": "string", "description": "IP address with prefix length, e.g. 10.0.0.1/24"},
		"status": {"type": "string", "description": "Address status", "default": "active"},
		"description": {"type": "string", "description": "Optional description"}
	},
	"required": ["address"]
}`)

var getPrefixesSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"limit": {"type": "integer", "description": "Maximum number of prefixes to return", "default": 50},
		"vrf_id": {"type": "integer", "description": "Filter by VRF ID"},
		"params": {"type": "object", "description": "Additional NetBox filter parameters"}
	}
}`)

var getVLANsSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"limit": {"type": "integer", "description": "Maximum number of VLANs to return", "default": 50},
		"site_id": {"type": "integer", "description": "Filter by site ID"}
	}
}`)

func ipamTools(cfg Config) []tools.Tool {
	client := cfg.Client

	return []tools.Tool{
		tools.Func("get_ip_addresses",
			"Get IP addresses from NetBox IPAM.",
			getIPAddressesSchema,
			func(ctx context.Context, args json.RawMessage) core.Result {
				var in struct {
					Limit  int            `json:"limit"`
					VRFID  *int           `json:"vrf_id"`
					Params map[string]any `json:"params"`
				}
				if err := decodeArgs(args, &in); err != nil {
					return core.Fail(err)
				}
				named := map[string]any{}
				if in.VRFID != nil {
					named["vrf_id"] = *in.VRFID
				}
				addrs, err := client.List(ctx, "ipam/ip-addresses", queryParams(orDefault(in.Limit, defaultListLimit), named, in.Params))
				if err != nil {
					return core.Fail(err)
				}
				return core.OK(addrs)
			}),

		tools.Func("create_ip_address",
			"Create a new IP address in NetBox.",
			createIPAddressSchema,
			func(ctx context.Context, args json.RawMessage) core.Result {
				var in struct {
					Address     string `json:"address"`
					Status      string `json:"status"`
					Description string `json:"description"`
				}
				if err := decodeArgs(args, &in); err != nil {
					return core.Fail(err)
				}
				if in.Status == "" {
					in.Status = "active"
				}
				addr, err := client.Create(ctx, "ipam/ip-addresses", netbox.Object{
					"address":     in.Address,
					"status":      in.Status,
					"description": in.Description,
				})
				if err != nil {
					return core.Fail(err)
				}
				return core.OK(addr)
			}),

		tools.Func("get_prefixes",
			"Get prefixes from NetBox IPAM.",
			getPrefixesSchema,
			func(ctx context.Context, args json.RawMessage) core.Result {
				var in struct {
					Limit  int            `json:"limit"`
					VRFID  *int           `json:"vrf_id"`
					Params map[string]any `json:"params"`
				}
				if err := decodeArgs(args, &in); err != nil {
					return core.Fail(err)
				}
				named := map[string]any{}
				if in.VRFID != nil {
					named["vrf_id"] = *in.VRFID
				}
				prefixes, err := client.List(ctx, "ipam/prefixes", queryParams(orDefault(in.Limit, defaultListLimit), named, in.Params))
				if err != nil {
					return core.Fail(err)
				}
				return core.OK(prefixes)
			}),

		tools.Func("get_vlans",
			"Get VLANs from NetBox IPAM.",
			getVLANsSchema,
			func(ctx context.Context, args json.RawMessage) core.Result {
				var in struct {
					Limit  int  `json:"limit"`
					SiteID *int `json:"site_id"`
				}
				if err := decodeArgs(args, &in); err != nil {
					return core.Fail(err)
				}
				named := map[string]any{}
				if in.SiteID != nil {
					named["site_id"] = *in.SiteID
				}
				vlans, err := client.List(ctx, "ipam/vlans", queryParams(orDefault(in.Limit, defaultListLimit), named, nil))
				if err != nil {
					return core.Fail(err)
				}
				return core.OK(vlans)
			}),
	}
}
