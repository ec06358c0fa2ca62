// Package docs holds the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {
			"name": "API Support",
			"url": "https://github.com/guttosm/spool-service"
		},
		"license": {
			"name": "MIT",
			"url": "https://opensource.org/licenses/MIT"
		},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/api/filaments": {
			"get": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Filaments"
				],
				"summary": "List filaments",
				"parameters": [
					{
						"type": "string",
						"description": "Filter by vendor",
						"name": "vendor_id",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Filter by material",
						"name": "material",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Maximum rows (0 means the ceiling)",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Rows to skip",
						"name": "offset",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"503": {
						"description": "Storage unavailable",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Filaments"
				],
				"summary": "Create a filament",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreateFilamentRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Referenced resource not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/filaments/{id}": {
			"get": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Filaments"
				],
				"summary": "Get a filament",
				"parameters": [
					{
						"type": "string",
						"description": "Object ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Filament not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			},
			"patch": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Filaments"
				],
				"summary": "Update a filament",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Object ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.UpdateFilamentRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Filament not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Filaments"
				],
				"summary": "Delete a filament",
				"parameters": [
					{
						"type": "string",
						"description": "Object ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Filament not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Filament still referenced by spools",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/logs": {
			"get": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Logs"
				],
				"summary": "Query audit log entries",
				"parameters": [
					{
						"type": "string",
						"description": "info, warn or error",
						"name": "level",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Request ID",
						"name": "request_id",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Action such as use_spool",
						"name": "action_type",
						"in": "query"
					},
					{
						"enum": [
							"vendor",
							"filament",
							"spool"
						],
						"type": "string",
						"description": "Audited resource",
						"name": "resource",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Resource ID, requires resource",
						"name": "resource_id",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Earliest timestamp (RFC3339)",
						"name": "since",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Latest timestamp (RFC3339)",
						"name": "until",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Maximum entries",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Entries to skip",
						"name": "skip",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/vendors/{id}/history": {
			"get": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Logs"
				],
				"summary": "Audit trail of a vendor",
				"parameters": [
					{
						"type": "string",
						"description": "Vendor ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Maximum entries",
						"name": "limit",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/filaments/{id}/history": {
			"get": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Logs"
				],
				"summary": "Audit trail of a filament",
				"parameters": [
					{
						"type": "string",
						"description": "Filament ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Maximum entries",
						"name": "limit",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/spools/{id}/history": {
			"get": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Logs"
				],
				"summary": "Audit trail of a spool",
				"parameters": [
					{
						"type": "string",
						"description": "Spool ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Maximum entries",
						"name": "limit",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/print-jobs": {
			"get": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Print jobs"
				],
				"summary": "List print jobs",
				"description": "Newest first.",
				"parameters": [
					{
						"type": "string",
						"description": "Only jobs of this spool",
						"name": "spool_id",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Part of the job name, case-insensitive",
						"name": "name",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Maximum rows (0 means the ceiling)",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Rows to skip",
						"name": "offset",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SuccessResponse"
						},
						"headers": {
							"X-Total-Count": {
								"type": "integer",
								"description": "Matching jobs without paging"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"503": {
						"description": "Storage unavailable",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Print jobs"
				],
				"summary": "Record a print job",
				"description": "Without a cost, one is derived from the spool price over its initial weight, else the filament price over its weight.",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreatePrintJobRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Spool not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/print-jobs/{id}": {
			"get": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Print jobs"
				],
				"summary": "Get a print job",
				"parameters": [
					{
						"type": "string",
						"description": "Print job ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Print job not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			},
			"patch": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Print jobs"
				],
				"summary": "Update a print job",
				"description": "Only the fields present change. The cost is not recomputed.",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Print job ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.UpdatePrintJobRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Print job or spool not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Print jobs"
				],
				"summary": "Delete a print job",
				"parameters": [
					{
						"type": "string",
						"description": "Print job ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Print job not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/print-jobs/{id}/history": {
			"get": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Logs"
				],
				"summary": "Audit trail of a print job",
				"parameters": [
					{
						"type": "string",
						"description": "Print job ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Maximum entries",
						"name": "limit",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/spools": {
			"get": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Spools"
				],
				"summary": "List spools",
				"parameters": [
					{
						"type": "boolean",
						"description": "Include archived spools",
						"name": "allow_archived",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Filter by filament",
						"name": "filament_id",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Maximum rows (0 means the ceiling)",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Rows to skip",
						"name": "offset",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"503": {
						"description": "Storage unavailable",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Spools"
				],
				"summary": "Create a spool",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreateSpoolRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Referenced resource not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/spools/{id}": {
			"get": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Spools"
				],
				"summary": "Get a spool",
				"parameters": [
					{
						"type": "string",
						"description": "Object ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Spool not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			},
			"patch": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Spools"
				],
				"summary": "Update a spool",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Object ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.UpdateSpoolRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Spool not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Spools"
				],
				"summary": "Delete a spool",
				"parameters": [
					{
						"type": "string",
						"description": "Object ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Spool not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/spools/{id}/use": {
			"post": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Spools"
				],
				"summary": "Consume filament from a spool",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Object ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.UseSpoolRequest"
						}
					},
					{
						"type": "string",
						"description": "Replays the first response for retried requests",
						"name": "Idempotency-Key",
						"in": "header"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Spool not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Spool is archived",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/summary": {
			"get": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Summary"
				],
				"summary": "Remaining filament grouped by material and color",
				"description": "Groups active spools by material and color signature and totals their remaining weight. Vendor and filament names only label a group.",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.SuccessResponse"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/dto.SummaryResponse"
										}
									}
								}
							]
						}
					},
					"503": {
						"description": "Storage unavailable",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/vendors": {
			"get": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Vendors"
				],
				"summary": "List vendors",
				"parameters": [
					{
						"type": "integer",
						"description": "Maximum rows (0 means the ceiling)",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Rows to skip",
						"name": "offset",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"503": {
						"description": "Storage unavailable",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Vendors"
				],
				"summary": "Create a vendor",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreateVendorRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Referenced resource not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/vendors/{id}": {
			"get": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Vendors"
				],
				"summary": "Get a vendor",
				"parameters": [
					{
						"type": "string",
						"description": "Object ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Vendor not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			},
			"patch": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Vendors"
				],
				"summary": "Update a vendor",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Object ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.UpdateVendorRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SuccessResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Vendor not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Vendors"
				],
				"summary": "Delete a vendor",
				"parameters": [
					{
						"type": "string",
						"description": "Object ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Vendor not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Vendor still referenced by filaments",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/healthz": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Health"
				],
				"summary": "Liveness check",
				"responses": {
					"200": {
						"description": "OK"
					},
					"503": {
						"description": "Degraded"
					}
				}
			}
		},
		"/readyz": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Health"
				],
				"summary": "Readiness check",
				"responses": {
					"200": {
						"description": "OK"
					},
					"503": {
						"description": "Degraded"
					}
				}
			}
		}
	},
	"definitions": {
		"dto.CreateFilamentRequest": {
			"type": "object",
			"properties": {
				"vendor_id": {
					"type": "string"
				},
				"name": {
					"type": "string",
					"example": "Galaxy Black"
				},
				"material": {
					"type": "string",
					"example": "PLA"
				},
				"color_hex": {
					"type": "string",
					"example": "#1a1a1a"
				},
				"multi_color_hexes": {
					"type": "string",
					"example": "FF0000,00FF00"
				},
				"multi_color_direction": {
					"type": "string",
					"example": "coaxial"
				},
				"weight": {
					"type": "number",
					"example": 1000
				},
				"spool_weight": {
					"type": "number",
					"example": 200
				},
				"density": {
					"type": "number",
					"example": 1.24
				},
				"diameter": {
					"type": "number",
					"example": 1.75
				},
				"price": {
					"type": "number",
					"example": 24.99
				},
				"comment": {
					"type": "string"
				}
			}
		},
		"dto.CreatePrintJobRequest": {
			"type": "object",
			"required": [
				"name",
				"spool_id",
				"weight_used"
			],
			"properties": {
				"spool_id": {
					"type": "string",
					"example": "665f1c2e8b3e4a0012345678"
				},
				"name": {
					"type": "string",
					"maxLength": 128,
					"example": "Benchy"
				},
				"weight_used": {
					"type": "number",
					"minimum": 0,
					"example": 15.5
				},
				"started_at": {
					"type": "string"
				},
				"completed_at": {
					"type": "string"
				},
				"cost": {
					"type": "number",
					"minimum": 0,
					"example": 0.31
				},
				"revenue": {
					"type": "number",
					"minimum": 0,
					"example": 5
				},
				"notes": {
					"type": "string",
					"maxLength": 1024
				},
				"external_reference": {
					"type": "string",
					"maxLength": 256,
					"example": "benchy_v2.gcode"
				}
			}
		},
		"dto.CreateSpoolRequest": {
			"type": "object",
			"properties": {
				"filament_id": {
					"type": "string"
				},
				"remaining_weight": {
					"type": "number",
					"example": 750
				},
				"initial_weight": {
					"type": "number",
					"example": 1000
				},
				"price": {
					"type": "number",
					"example": 21.5
				},
				"location": {
					"type": "string",
					"example": "Shelf A"
				},
				"lot_nr": {
					"type": "string"
				},
				"comment": {
					"type": "string"
				},
				"archived": {
					"type": "boolean"
				}
			}
		},
		"dto.CreateVendorRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string",
					"example": "Prusament"
				},
				"comment": {
					"type": "string"
				}
			}
		},
		"dto.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string",
					"example": "invalid_request"
				},
				"message": {
					"type": "string",
					"example": "use_weight: must be a positive number"
				},
				"details": {
					"type": "object",
					"additionalProperties": {
						"type": "string"
					}
				},
				"request_id": {
					"type": "string"
				},
				"timestamp": {
					"type": "string"
				},
				"trace_id": {
					"type": "string"
				}
			}
		},
		"dto.PrintJobListResponse": {
			"type": "object",
			"properties": {
				"jobs": {
					"type": "array",
					"items": {
						"type": "object"
					}
				},
				"total": {
					"type": "integer"
				}
			}
		},
		"dto.SuccessResponse": {
			"type": "object",
			"properties": {
				"data": {
					"type": "object"
				},
				"request_id": {
					"type": "string",
					"example": "550e8400-e29b-41d4-a716-446655440000"
				},
				"timestamp": {
					"type": "string",
					"example": "2025-01-28T10:00:00Z"
				}
			}
		},
		"dto.SummaryResponse": {
			"type": "object",
			"properties": {
				"active_spools": {
					"type": "integer"
				},
				"total_remaining_weight": {
					"type": "number"
				},
				"total_remaining_kg": {
					"type": "number"
				},
				"group_count": {
					"type": "integer"
				},
				"groups": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.SummaryRow"
					}
				},
				"footer": {
					"type": "object"
				}
			}
		},
		"dto.SummaryRow": {
			"type": "object",
			"properties": {
				"key": {
					"type": "string"
				},
				"material": {
					"type": "string"
				},
				"color_hex": {
					"type": "string"
				},
				"multi_color_hexes": {
					"type": "string"
				},
				"spool_count": {
					"type": "integer"
				},
				"total_remaining_weight": {
					"type": "number"
				},
				"total_filament_weight": {
					"type": "number"
				},
				"color_label": {
					"type": "string"
				},
				"swatch": {
					"type": "object"
				},
				"display_name": {
					"type": "string"
				},
				"remaining_percent": {
					"type": "number"
				}
			}
		},
		"dto.UpdateFilamentRequest": {
			"type": "object",
			"properties": {
				"vendor_id": {
					"type": "string"
				},
				"name": {
					"type": "string",
					"example": "Galaxy Black"
				},
				"material": {
					"type": "string",
					"example": "PLA"
				},
				"color_hex": {
					"type": "string",
					"example": "#1a1a1a"
				},
				"multi_color_hexes": {
					"type": "string",
					"example": "FF0000,00FF00"
				},
				"multi_color_direction": {
					"type": "string",
					"example": "coaxial"
				},
				"weight": {
					"type": "number",
					"example": 1000
				},
				"spool_weight": {
					"type": "number",
					"example": 200
				},
				"density": {
					"type": "number",
					"example": 1.24
				},
				"diameter": {
					"type": "number",
					"example": 1.75
				},
				"price": {
					"type": "number",
					"example": 24.99
				},
				"comment": {
					"type": "string"
				}
			}
		},
		"dto.UpdatePrintJobRequest": {
			"type": "object",
			"properties": {
				"spool_id": {
					"type": "string"
				},
				"name": {
					"type": "string",
					"maxLength": 128
				},
				"weight_used": {
					"type": "number",
					"minimum": 0
				},
				"started_at": {
					"type": "string"
				},
				"completed_at": {
					"type": "string"
				},
				"cost": {
					"type": "number",
					"minimum": 0
				},
				"revenue": {
					"type": "number",
					"minimum": 0
				},
				"notes": {
					"type": "string",
					"maxLength": 1024
				},
				"external_reference": {
					"type": "string",
					"maxLength": 256
				}
			}
		},
		"dto.UpdateSpoolRequest": {
			"type": "object",
			"properties": {
				"filament_id": {
					"type": "string"
				},
				"remaining_weight": {
					"type": "number",
					"example": 750
				},
				"initial_weight": {
					"type": "number",
					"example": 1000
				},
				"price": {
					"type": "number",
					"example": 21.5
				},
				"location": {
					"type": "string",
					"example": "Shelf A"
				},
				"lot_nr": {
					"type": "string"
				},
				"comment": {
					"type": "string"
				},
				"archived": {
					"type": "boolean"
				}
			}
		},
		"dto.UpdateVendorRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"comment": {
					"type": "string"
				}
			}
		},
		"dto.UseSpoolRequest": {
			"type": "object",
			"properties": {
				"use_weight": {
					"type": "number",
					"example": 12.5
				}
			}
		}
	},
	"securityDefinitions": {
		"ApiKeyAuth": {
			"description": "API key. Required when authentication is enabled.",
			"type": "apiKey",
			"name": "X-API-Key",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Spool Service API",
	Description:      "Filament spool inventory with remaining-weight summaries.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
