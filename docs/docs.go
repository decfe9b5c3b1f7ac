// Package docs registers the OpenAPI description served under /swagger/.
// Regenerate with `swag init -g cmd/app/main.go` after changing handler annotations.
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
        "/api/auth/signup": {
            "post": {
                "tags": ["auth"],
                "summary": "Create an account and open a session",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}
            }
        },
        "/api/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in with email and password",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "End the current session",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/auth/user": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Current user",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/quests": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["quests"],
                "summary": "List quests",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["quests"],
                "summary": "Create a quest",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/quests/{id}": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["quests"],
                "summary": "Update a quest",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["quests"],
                "summary": "Delete a quest",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/quests/defaults": {
            "get": {
                "tags": ["quests"],
                "summary": "Built-in default quest catalog",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/daily": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["daily"],
                "summary": "Today's daily quests",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/daily/reroll": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["daily"],
                "summary": "Redraw today's daily set",
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            }
        },
        "/api/daily/{id}/complete": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["daily"],
                "summary": "Mark a daily quest complete or incomplete",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/stats": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["stats"],
                "summary": "Streaks, totals and achievements",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/achievements": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["stats"],
                "summary": "Unlocked achievements and catalog",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/settings": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["settings"],
                "summary": "User settings",
                "responses": {"200": {"description": "OK"}}
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["settings"],
                "summary": "Update user settings",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/export": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["export"],
                "summary": "Download all user data as JSON",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "SideQuest API",
	Description:      "Daily quest tracker with streaks, stats and achievements.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
