package toolset

import (
	"context"
	"encoding/json"

	"github.com/opsbridge/netbox-mcp/core"
	"github.com/opsbridge/netbox-mcp/netbox"
	"github.com/opsbridge/netbox-mcp/tools"
)

var getSitesSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"limit": {"type": "integer", "description": "Maximum number of sites to return", "default": 50},
		"params": {"type": "object", "description": "Additional NetBox filter parameters"}
	}
}`)

var getSiteByIDSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"site_id": {"type": "integer", "description": "Site ID"}
	},
	"required": ["site_id"]
}`)

var createSiteSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"name": {"type": "string", "description": "Site name"},
		"slug": {"type": "string", "description": "URL-friendly unique identifier"},
		"status": {"type": "string", "description": "Site status", "default": "active"},
		"description": {"type": "string", "description": "Optional description"}
	},
	"required": ["name", "slug"]
}`)

var getDevicesSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"limit": {"type": "integer", "description": "Maximum number of devices to return", "default": 50},
		"site_id": {"type": "integer", "description": "Filter by site ID"},
		"params": {"type": "object", "description": "Additional NetBox filter parameters"}
	}
}`)

var getDeviceByIDSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"device_id": {"type": "integer", "description": "Device ID"}
	},
	"required": ["device_id"]
}`)

var createDeviceSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"name": {"type": "string", "description": "Device name"},
		"device_type_id": {"type": "integer", "description": "Device type ID"},
		"site_id": {"type": "integer", "description": "Site ID the device belongs to"},
		"status": {"type": "string", "description": "Device status", "default": "active"}
	},
	"required": ["name", "device_type_id", "site_id"]
}`)

var getDeviceTypesSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"limit": {"type": "integer", "description": "Maximum number of device types to return", "default": 50},
		"manufacturer_id": {"type": "integer", "description": "Filter by manufacturer ID"}
	}
}`)

func dcimTools(cfg Config) []tools.Tool {
	client := cfg.Client

	return []tools.Tool{
		tools.Func("get_sites",
			"Get sites from NetBox DCIM. Optionally filter with params.",
			getSitesSchema,
			func(ctx context.Context, args json.RawMessage) core.Result {
				var in struct {
					Limit  int            `json:"limit"`
					Params map[string]any `json:"params"`
				}
				if err := decodeArgs(args, &in); err != nil {
					return core.Fail(err)
				}
				sites, err := client.List(ctx, "dcim/sites", queryParams(orDefault(in.Limit, defaultListLimit), nil, in.Params))
				if err != nil {
					return core.Fail(err)
				}
				return core.OK(sites)
			}),

		tools.Func("get_site_by_id",
			"Get a specific site by ID.",
			getSiteByIDSchema,
			func(ctx context.Context, args json.RawMessage) core.Result {
				var in struct {
					SiteID int `json:"site_id"`
				}
				if err := decodeArgs(args, &in); err != nil {
					return core.Fail(err)
				}
				site, err := client.GetByID(ctx, "dcim/sites", in.SiteID, nil)
				if err != nil {
					return core.Fail(err)
				}
				return core.OK(site)
			}),

		tools.Func("create_site",
			"Create a new site in NetBox.",
			createSiteSchema,
			func(ctx context.Context, args json.RawMessage) core.Result {
				var in struct {
					Name        string `json:"name"`
					Slug        string `json:"slug"`
					Status      string `json:"status"`
					Description string `json:"description"`
				}
				if err := decodeArgs(args, &in); err != nil {
					return core.Fail(err)
				}
				if in.Status == "" {
					in.Status = "active"
				}
				site, err := client.Create(ctx, "dcim/sites", netbox.Object{
					"name":        in.Name,
					"slug":        in.Slug,
					"status":      in.Status,
					"description": in.Description,
				})
				if err != nil {
					return core.Fail(err)
				}
				return core.OK(site)
			}),

		tools.Func("get_devices",
			"Get devices from NetBox DCIM. Optionally filter by site or other params.",
			getDevicesSchema,
			func(ctx context.Context, args json.RawMessage) core.Result {
				var in struct {
					Limit  int            `json:"limit"`
					SiteID *int           `json:"site_id"`
					Params map[string]any `json:"params"`
				}
				if err := decodeArgs(args, &in); err != nil {
					return core.Fail(err)
				}
				named := map[string]any{}
				if in.SiteID != nil {
					named["site_id"] = *in.SiteID
				}
				devices, err := client.List(ctx, "dcim/devices", queryParams(orDefault(in.Limit, defaultListLimit), named, in.Params))
				if err != nil {
					return core.Fail(err)
				}
				return core.OK(devices)
			}),

		tools.Func("get_device_by_id",
			"Get a specific device by ID.",
			getDeviceByIDSchema,
			func(ctx context.Context, args json.RawMessage) core.Result {
				var in struct {
					DeviceID int `json:"device_id"`
				}
				if err := decodeArgs(args, &in); err != nil {
					return core.Fail(err)
				}
				device, err := client.GetByID(ctx, "dcim/devices", in.DeviceID, nil)
				if err != nil {
					return core.Fail(err)
				}
				return core.OK(device)
			}),

		tools.Func("create_device",
			"Create a new device in NetBox.",
			createDeviceSchema,
			func(ctx context.Context, args json.RawMessage) core.Result {
				var in struct {
					Name         string `json:"name"`
					DeviceTypeID int    `json:"device_type_id"`
					SiteID       int    `json:"site_id"`
					Status       string `json:"status"`
				}
				if err := decodeArgs(args, &in); err != nil {
					return core.Fail(err)
				}
				if in.Status == "" {
					in.Status = "active"
				}
				device, err := client.Create(ctx, "dcim/devices", netbox.Object{
					"name":        in.Name,
					"device_type": in.DeviceTypeID,
					"site":        in.SiteID,
					"status":      in.Status,
				})
				if err != nil {
					return core.Fail(err)
				}
				return core.OK(device)
			}),

		tools.Func("get_device_types",
			"Get device types from NetBox DCIM.",
			getDeviceTypesSchema,
			func(ctx context.Context, args json.RawMessage) core.Result {
				var in struct {
					Limit          int  `json:"limit"`
					ManufacturerID *int `json:"manufacturer_id"`
				}
				if err := decodeArgs(args, &in); err != nil {
					return core.Fail(err)
				}
				named := map[string]any{}
				if in.ManufacturerID != nil {
					named["manufacturer_id"] = *in.ManufacturerID
				}
				types, err := client.List(ctx, "dcim/device-types", queryParams(orDefault(in.Limit, defaultListLimit), named, nil))
				if err != nil {
					return core.Fail(err)
				}
				return core.OK(types)
			}),
	}
}
