// Package docs holds the swagger spec of the /api/v1 view API, served at /swagger.
// It follows the swag output layout and is kept in sync with the handler annotations.
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
        "/views": {
            "post": {
                "description": "Mounts a new display and starts its one-shot fetch. With wait=true the response is sent once the fetch has settled.",
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Open a blog list display",
                "parameters": [
                    {"type": "boolean", "description": "Wait until the display leaves the loading phase", "name": "wait", "in": "query"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.ViewDTO"}}
                }
            }
        },
        "/views/{id}": {
            "get": {
                "description": "Current phase, search state, cards of the current page and pagination control",
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Get a display",
                "parameters": [
                    {"type": "string", "description": "Display ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ViewDTO"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            },
            "delete": {
                "description": "Drops the display. An in-flight fetch completes but its result is discarded.",
                "tags": ["views"],
                "summary": "Close a display",
                "parameters": [
                    {"type": "string", "description": "Display ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        },
        "/views/{id}/page": {
            "put": {
                "description": "Activates a pagination button. location is the URL the client should push onto its history.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Change page",
                "parameters": [
                    {"type": "string", "description": "Display ID", "name": "id", "in": "path", "required": true},
                    {"description": "Page", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ChangePageRequestDTO"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ViewDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        },
        "/views/{id}/query": {
            "put": {
                "description": "Replaces the query and resets the display to page 1",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Set the search query",
                "parameters": [
                    {"type": "string", "description": "Display ID", "name": "id", "in": "path", "required": true},
                    {"description": "Query", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateQueryRequestDTO"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ViewDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            },
            "delete": {
                "description": "Empties the query and resets the display to page 1",
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Clear the search query",
                "parameters": [
                    {"type": "string", "description": "Display ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ViewDTO"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        }
    },
    "definitions": {
        "dto.ChangePageRequestDTO": {
            "type": "object",
            "required": ["page"],
            "properties": {
                "current_url": {"type": "string", "example": "https://blog.example.com/?page=1"},
                "page": {"type": "integer", "example": 2}
            }
        },
        "dto.ErrorResponseDTO": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "view_not_found"}
            }
        },
        "dto.UpdateQueryRequestDTO": {
            "type": "object",
            "properties": {
                "query": {"type": "string", "example": "gopher"}
            }
        },
        "dto.ViewDTO": {
            "type": "object",
            "properties": {
                "cards": {"type": "array", "items": {"$ref": "#/definitions/postcard.Card"}},
                "current_page": {"type": "integer", "example": 1},
                "error": {"type": "string", "example": "Failed to fetch blog posts"},
                "filtered_count": {"type": "integer", "example": 14},
                "id": {"type": "string", "example": "0b8f6c7e-3f1a-4a53-9a44-6a1f0e0c9d21"},
                "location": {"type": "string", "example": "/?page=2"},
                "pagination": {"$ref": "#/definitions/pagination.Control"},
                "phase": {"type": "string", "enum": ["loading", "error", "ready"], "example": "ready"},
                "query": {"type": "string", "example": "gopher"},
                "total_pages": {"type": "integer", "example": 3}
            }
        },
        "pagination.Button": {
            "type": "object",
            "properties": {
                "active": {"type": "boolean"},
                "disabled": {"type": "boolean"},
                "label": {"type": "string"},
                "page": {"type": "integer"}
            }
        },
        "pagination.Control": {
            "type": "object",
            "properties": {
                "current_page": {"type": "integer"},
                "next": {"$ref": "#/definitions/pagination.Button"},
                "pages": {"type": "array", "items": {"$ref": "#/definitions/pagination.Button"}},
                "previous": {"$ref": "#/definitions/pagination.Button"},
                "total_pages": {"type": "integer"}
            }
        },
        "postcard.Card": {
            "type": "object",
            "properties": {
                "avatar_alt": {"type": "string"},
                "avatar_url": {"type": "string"},
                "byline": {"type": "string"},
                "cover_alt": {"type": "string"},
                "cover_url": {"type": "string"},
                "date": {"type": "string"},
                "excerpt": {"type": "string"},
                "id": {"type": "integer"},
                "link": {"type": "string"},
                "title": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Blog List API",
	Description:      "Paginated, searchable blog list displays",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
