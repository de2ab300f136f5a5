// Package docs holds the OpenAPI document served at /swagger. It is
// maintained by hand and lists routes only; request and response shapes are
// documented on the handlers.
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
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Register an agent", "responses": {"201": {"description": "Created"}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Log in", "responses": {"200": {"description": "OK"}}}},
        "/auth/refresh": {"post": {"tags": ["auth"], "summary": "Refresh tokens", "responses": {"200": {"description": "OK"}}}},
        "/dictation/parse": {"post": {"security": [{"BearerAuth": []}], "tags": ["dictation"], "summary": "Parse a dictation", "responses": {"200": {"description": "OK"}}}},
        "/dictation/apply": {"post": {"security": [{"BearerAuth": []}], "tags": ["dictation"], "summary": "Merge a dictation into a client draft", "responses": {"200": {"description": "OK"}}}},
        "/dictation/phone": {"post": {"security": [{"BearerAuth": []}], "tags": ["dictation"], "summary": "Extract a spoken phone number", "responses": {"200": {"description": "OK"}}}},
        "/clients": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["clients"], "summary": "List clients", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["clients"], "summary": "Save a client", "responses": {"201": {"description": "Created"}, "422": {"description": "Missing name, invalid phone or schedule"}}}
        },
        "/clients/draft": {"get": {"security": [{"BearerAuth": []}], "tags": ["clients"], "summary": "Get an empty client form", "responses": {"200": {"description": "OK"}}}},
        "/clients/upcoming": {"get": {"security": [{"BearerAuth": []}], "tags": ["clients"], "summary": "List pending callbacks", "responses": {"200": {"description": "OK"}}}},
        "/clients/lookup": {"post": {"security": [{"BearerAuth": []}], "tags": ["clients"], "summary": "Find a client by a spoken phone number", "responses": {"200": {"description": "OK"}, "404": {"description": "No client with that phone"}}}},
        "/clients/search": {"post": {"security": [{"BearerAuth": []}], "tags": ["clients"], "summary": "Find clients by a spoken name", "responses": {"200": {"description": "OK"}, "404": {"description": "No similar name"}}}},
        "/clients/delete": {"post": {"security": [{"BearerAuth": []}], "tags": ["clients"], "summary": "Delete several clients", "responses": {"200": {"description": "OK"}}}},
        "/clients/{id}": {"get": {"security": [{"BearerAuth": []}], "tags": ["clients"], "summary": "Get a client", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}},
        "/clients/{id}/alarm": {"put": {"security": [{"BearerAuth": []}], "tags": ["clients"], "summary": "Turn a callback alarm on or off", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/schedule/options": {"get": {"security": [{"BearerAuth": []}], "tags": ["schedule"], "summary": "Selectable callback dates", "responses": {"200": {"description": "OK"}}}},
        "/schedule/evaluate": {"post": {"security": [{"BearerAuth": []}], "tags": ["schedule"], "summary": "Check a callback slot", "responses": {"200": {"description": "OK"}, "422": {"description": "Invalid date or time"}}}},
        "/schedule/holidays": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["schedule"], "summary": "List registered holidays", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["schedule"], "summary": "Register a holiday", "responses": {"201": {"description": "Created"}, "409": {"description": "Already registered"}}}
        },
        "/schedule/holidays/{id}": {"delete": {"security": [{"BearerAuth": []}], "tags": ["schedule"], "summary": "Remove a holiday", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/exports/{format}": {"get": {"security": [{"BearerAuth": []}], "tags": ["exports"], "summary": "Download all clients as a spreadsheet", "parameters": [{"type": "string", "name": "format", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/exports/archive": {"post": {"security": [{"BearerAuth": []}], "tags": ["exports"], "summary": "Upload an xlsx export and get a temporary link", "responses": {"200": {"description": "OK"}}}}
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
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Agendados API",
	Description:      "Dictation-driven client scheduling for field sales agents.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
