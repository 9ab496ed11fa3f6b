// Package docs holds the OpenAPI document served at /swagger/*.
// Regenerate with: swag init -g cmd/server/main.go
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
        "/api/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/refresh": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Refresh access token",
                "parameters": [
                    {"description": "Refresh token", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.refreshRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.refreshResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/get-user": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get the authenticated user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/create-user": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create a user account",
                "parameters": [
                    {"description": "Account details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/update-user/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Partially update a user account",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/active-visitors": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List active visitor accounts",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.userResponse"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/visitor": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["visitors"],
                "summary": "Record a visitor check-in",
                "parameters": [
                    {"description": "Visitor details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createVisitorRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.visitorResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/visitor-list": {
            "get": {
                "produces": ["application/json"],
                "tags": ["visitors"],
                "summary": "List visitors",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.visitorResponse"}}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.readinessResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.readinessResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "handler.loginResponse": {
            "type": "object",
            "properties": {
                "access": {"type": "string"},
                "refresh": {"type": "string"},
                "user": {"$ref": "#/definitions/handler.userResponse"}
            }
        },
        "handler.refreshRequest": {
            "type": "object",
            "required": ["refresh"],
            "properties": {
                "refresh": {"type": "string"}
            }
        },
        "handler.refreshResponse": {
            "type": "object",
            "properties": {
                "access": {"type": "string"}
            }
        },
        "handler.createUserRequest": {
            "type": "object",
            "required": ["password", "role", "username"],
            "properties": {
                "email": {"type": "string", "maxLength": 254},
                "first_name": {"type": "string", "maxLength": 150},
                "is_active": {"type": "boolean"},
                "last_name": {"type": "string", "maxLength": 150},
                "password": {"type": "string", "minLength": 8},
                "role": {"type": "string"},
                "username": {"type": "string", "maxLength": 150}
            }
        },
        "handler.updateUserRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "maxLength": 254},
                "first_name": {"type": "string", "maxLength": 150},
                "is_active": {"type": "boolean"},
                "last_name": {"type": "string", "maxLength": 150},
                "password": {"type": "string", "minLength": 8},
                "role": {"type": "string"},
                "username": {"type": "string", "maxLength": 150}
            }
        },
        "handler.userResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "email": {"type": "string"},
                "first_name": {"type": "string"},
                "id": {"type": "string"},
                "is_active": {"type": "boolean"},
                "last_name": {"type": "string"},
                "role": {"type": "string"},
                "updated_at": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "handler.createVisitorRequest": {
            "type": "object",
            "required": ["date", "department", "first_name", "last_name", "purpose", "time"],
            "properties": {
                "contact_number": {"type": "string"},
                "date": {"type": "string", "example": "2024-05-01"},
                "department": {"type": "string"},
                "department_other": {"type": "string"},
                "email": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "middle_initial": {"type": "string", "maxLength": 2},
                "purpose": {"type": "string"},
                "purpose_other": {"type": "string"},
                "time": {"type": "string", "example": "09:30"}
            }
        },
        "handler.visitorResponse": {
            "type": "object",
            "properties": {
                "contact_number": {"type": "string"},
                "created_at": {"type": "string"},
                "date": {"type": "string"},
                "department": {"type": "string"},
                "department_other": {"type": "string"},
                "email": {"type": "string"},
                "first_name": {"type": "string"},
                "id": {"type": "string"},
                "last_name": {"type": "string"},
                "middle_initial": {"type": "string"},
                "purpose": {"type": "string"},
                "purpose_other": {"type": "string"},
                "time": {"type": "string"}
            }
        },
        "handler.dependencyStatus": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "handler.readinessResponse": {
            "type": "object",
            "properties": {
                "dependencies": {"type": "object", "additionalProperties": {"$ref": "#/definitions/handler.dependencyStatus"}},
                "status": {"type": "string"}
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
	Title:            "Visitor Registry API",
	Description:      "Front-desk accounts and visitor check-ins.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
