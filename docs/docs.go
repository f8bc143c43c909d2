// Package docs registers the OpenAPI document served at /swagger.
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
        "/notes": {
            "get": {
                "tags": ["Notes"],
                "summary": "List notes",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "integer", "name": "offset", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}}}
            },
            "post": {
                "tags": ["Notes"],
                "summary": "Create a note",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.createReq"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/notes/search": {
            "get": {
                "tags": ["Notes"],
                "summary": "Search notes by title, content or tag",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/notes/stats": {
            "get": {
                "tags": ["Notes"],
                "summary": "Note statistics",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/notes/infer": {
            "post": {
                "tags": ["Notes"],
                "summary": "Infer an event date and time from free text",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.inferReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/notes/generate": {
            "post": {
                "tags": ["Notes"],
                "summary": "Draft a structured note with the LLM",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.generateReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/notes/generate-and-save": {
            "post": {
                "tags": ["Notes"],
                "summary": "Draft a note with the LLM and store it",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.generateAndSaveReq"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/notes/{id}": {
            "get": {
                "tags": ["Notes"],
                "summary": "Get a note",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "put": {
                "tags": ["Notes"],
                "summary": "Partially update a note",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.updateReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "delete": {
                "tags": ["Notes"],
                "summary": "Delete a note",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/notes/{id}/translate": {
            "post": {
                "tags": ["Notes"],
                "summary": "Translate a note's title and content",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.translateReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        }
    },
    "definitions": {
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {}
            }
        },
        "http.createReq": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "content": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "event_date": {"type": "string", "example": "2025-10-20"},
                "event_time": {"type": "string", "example": "15:00:00"},
                "auto_schedule": {"type": "boolean"}
            }
        },
        "http.updateReq": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "content": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "event_date": {"type": "string"},
                "event_time": {"type": "string"}
            }
        },
        "http.generateReq": {
            "type": "object",
            "required": ["text"],
            "properties": {
                "text": {"type": "string", "example": "Badminton tmr 5pm @polyu"},
                "language": {"type": "string", "example": "English"}
            }
        },
        "http.generateAndSaveReq": {
            "type": "object",
            "required": ["text"],
            "properties": {
                "text": {"type": "string"},
                "language": {"type": "string"},
                "event_date": {"type": "string"},
                "event_time": {"type": "string"}
            }
        },
        "http.translateReq": {
            "type": "object",
            "required": ["target_language"],
            "properties": {
                "target_language": {"type": "string"},
                "title": {"type": "string"},
                "content": {"type": "string"}
            }
        },
        "http.inferReq": {
            "type": "object",
            "required": ["text"],
            "properties": {
                "text": {"type": "string", "example": "call mom next Monday evening"},
                "reference": {"type": "string", "example": "2025-10-17T10:00:00+08:00"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "AI Notes API",
	Description:      "Note taking with LLM drafting, translation and natural-language scheduling.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
