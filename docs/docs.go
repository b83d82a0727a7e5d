// Package docs holds the generated swagger specification.
// Regenerate with: swag init -g cmd/server/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/healthz": {
            "get": {
                "tags": ["health"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/readyz": {
            "get": {
                "tags": ["health"],
                "summary": "Readiness check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/accounts": {
            "get": {
                "tags": ["accounts"],
                "summary": "List trading accounts",
                "parameters": [
                    {"type": "boolean", "name": "is_burned", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["accounts"],
                "summary": "Create a trading account",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/accounts/{id}": {
            "get": {
                "tags": ["accounts"],
                "summary": "Get one trading account",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "patch": {
                "tags": ["accounts"],
                "summary": "Update a trading account",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["accounts"],
                "summary": "Delete a trading account and its trades",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/trades": {
            "get": {
                "tags": ["trades"],
                "summary": "List trades",
                "parameters": [
                    {"type": "string", "name": "account_id", "in": "query"},
                    {"type": "boolean", "name": "is_payout", "in": "query"},
                    {"type": "string", "name": "since", "in": "query"},
                    {"type": "string", "name": "until", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "integer", "name": "offset", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["trades"],
                "summary": "Record a trade",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/trades/payouts": {
            "post": {
                "tags": ["trades"],
                "summary": "Record a payout withdrawal",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/trades/{id}": {
            "delete": {
                "tags": ["trades"],
                "summary": "Delete a trade",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/dashboard/{account_id}": {
            "get": {
                "tags": ["dashboard"],
                "summary": "Account dashboard",
                "parameters": [
                    {"type": "string", "name": "account_id", "in": "path", "required": true},
                    {"type": "integer", "name": "month", "in": "query"},
                    {"type": "integer", "name": "year", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/dashboard/{account_id}/calendar": {
            "get": {
                "tags": ["dashboard"],
                "summary": "Month calendar grid",
                "parameters": [
                    {"type": "string", "name": "account_id", "in": "path", "required": true},
                    {"type": "integer", "name": "month", "in": "query"},
                    {"type": "integer", "name": "year", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/dashboard/{account_id}/equity-history": {
            "get": {
                "tags": ["dashboard"],
                "summary": "Daily capital snapshot history",
                "parameters": [
                    {"type": "string", "name": "account_id", "in": "path", "required": true},
                    {"type": "string", "name": "since", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/statistics/{account_id}": {
            "get": {
                "tags": ["statistics"],
                "summary": "Per-account trading statistics",
                "parameters": [
                    {"type": "string", "name": "account_id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/statistics/global": {
            "get": {
                "tags": ["statistics"],
                "summary": "Cross-account statistics",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/statements/{account_id}": {
            "get": {
                "tags": ["statements"],
                "summary": "Monthly statement sheets",
                "parameters": [
                    {"type": "string", "name": "account_id", "in": "path", "required": true},
                    {"type": "number", "name": "max_loss_pct", "in": "query"},
                    {"type": "number", "name": "obj_week_pct", "in": "query"},
                    {"type": "number", "name": "obj_day_pct", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/statements/{account_id}/export": {
            "post": {
                "tags": ["statements"],
                "summary": "Export statements as an xlsx workbook",
                "parameters": [
                    {"type": "string", "name": "account_id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "xlsx file"}}
            }
        },
        "/api/v1/playbook": {
            "get": {
                "tags": ["playbook"],
                "summary": "List playbook rules",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["playbook"],
                "summary": "Add a playbook rule",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/playbook/{id}": {
            "delete": {
                "tags": ["playbook"],
                "summary": "Delete a playbook rule",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/backup": {
            "get": {
                "tags": ["backup"],
                "summary": "Download the journal as a JSON backup",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/backup/import": {
            "post": {
                "tags": ["backup"],
                "summary": "Restore a journal backup",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/profile": {
            "get": {
                "tags": ["profile"],
                "summary": "Current profile and plan",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/profile/plan": {
            "put": {
                "tags": ["profile"],
                "summary": "Record a plan change",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/stream": {
            "get": {
                "tags": ["stream"],
                "summary": "Subscribe to journal change events over websocket",
                "responses": {"101": {"description": "switching protocols"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "TradeScope API",
	Description:      "Trading journal: accounts, trades, statistics, monthly statements and xlsx export.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
