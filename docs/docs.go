// Package docs registers the OpenAPI document served at /docs/doc.json.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
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
        "/register/": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register a new user",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/controllers.RegisterRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/utils.RegisterResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/login/": {
            "post": {
                "tags": ["Authentication"],
                "summary": "User login",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/controllers.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/token/refresh/": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Refresh access token",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/controllers.RefreshTokenRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.RefreshResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/store/": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Stores"], "summary": "Get Stores", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.StoreResponse"}}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Stores"], "summary": "Create Store", "parameters": [{"in": "body", "name": "store", "required": true, "schema": {"$ref": "#/definitions/controllers.StoreRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.StoreResponse"}}}}
        },
        "/store/{id}/": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Stores"], "summary": "Get Store", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StoreResponse"}}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["Stores"], "summary": "Update Store", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/controllers.StoreRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StoreResponse"}}}},
            "patch": {"security": [{"BearerAuth": []}], "tags": ["Stores"], "summary": "Partially Update Store", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/controllers.StoreRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StoreResponse"}}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Stores"], "summary": "Delete Store", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/sales/": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Sales"], "summary": "Get Sales", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.SalesResponse"}}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Sales"], "summary": "Create Sale", "parameters": [{"in": "body", "name": "sale", "required": true, "schema": {"$ref": "#/definitions/controllers.SalesRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.SalesResponse"}}}}
        },
        "/sales/{id}/": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Sales"], "summary": "Get Sale", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SalesResponse"}}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["Sales"], "summary": "Update Sale", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/controllers.SalesRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SalesResponse"}}}},
            "patch": {"security": [{"BearerAuth": []}], "tags": ["Sales"], "summary": "Partially Update Sale", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/controllers.SalesRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SalesResponse"}}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Sales"], "summary": "Delete Sale", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/sale/": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Sales"], "description": "Alias of /sales/", "summary": "Get Sales", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.SalesResponse"}}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Sales"], "description": "Alias of /sales/", "summary": "Create Sale", "parameters": [{"in": "body", "name": "sale", "required": true, "schema": {"$ref": "#/definitions/controllers.SalesRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.SalesResponse"}}}}
        },
        "/sale/{id}/": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Sales"], "description": "Alias of /sales/", "summary": "Get Sale", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SalesResponse"}}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["Sales"], "description": "Alias of /sales/", "summary": "Update Sale", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/controllers.SalesRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SalesResponse"}}}},
            "patch": {"security": [{"BearerAuth": []}], "tags": ["Sales"], "description": "Alias of /sales/", "summary": "Partially Update Sale", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/controllers.SalesRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SalesResponse"}}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Sales"], "description": "Alias of /sales/", "summary": "Delete Sale", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/payment/": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Payments"], "summary": "Get Payments", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.PaymentResponse"}}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Payments"], "summary": "Create Payment", "parameters": [{"in": "body", "name": "payment", "required": true, "schema": {"$ref": "#/definitions/controllers.PaymentRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.PaymentResponse"}}}}
        },
        "/payment/{id}/": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Payments"], "summary": "Get Payment", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PaymentResponse"}}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["Payments"], "summary": "Update Payment", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/controllers.PaymentRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PaymentResponse"}}}},
            "patch": {"security": [{"BearerAuth": []}], "tags": ["Payments"], "summary": "Partially Update Payment", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/controllers.PaymentRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PaymentResponse"}}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Payments"], "summary": "Delete Payment", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/users/": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Users"], "summary": "Get Users", "description": "Admin only", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.UserResponse"}}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}}}
        },
        "/users/{id}/": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Users"], "summary": "Get User", "description": "Admin only", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.UserResponse"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Users"], "summary": "Delete User", "description": "Admin only. Removes the user's stores, their sales and payments, and login activity.", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "400": {"description": "Own account", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}}}
        },
        "/login-activity/": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Login Activity"], "summary": "Get Login Activity", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.LoginActivityResponse"}}}}}
        },
        "/login-activity/{id}/": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Login Activity"], "summary": "Get Login Activity Entry", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.LoginActivityResponse"}}}}
        }
    },
    "definitions": {
        "controllers.RegisterRequest": {"type": "object", "properties": {"email": {"type": "string", "example": "jane@example.com"}, "username": {"type": "string", "example": "jane"}, "password": {"type": "string", "example": "SecurePass123"}, "confirm_password": {"type": "string", "example": "SecurePass123"}}},
        "controllers.LoginRequest": {"type": "object", "properties": {"username": {"type": "string", "example": "jane"}, "password": {"type": "string", "example": "SecurePass123"}}},
        "controllers.RefreshTokenRequest": {"type": "object", "properties": {"refresh": {"type": "string"}}},
        "controllers.StoreRequest": {"type": "object", "properties": {"name": {"type": "string"}, "location": {"type": "string"}, "owner": {"type": "integer", "x-nullable": true, "description": "null clears the owner"}, "approved": {"type": "boolean"}}},
        "controllers.SalesRequest": {"type": "object", "properties": {"store": {"type": "integer"}, "medicine": {"type": "string"}, "quantity": {"type": "integer"}, "price": {"type": "string", "example": "19.99"}, "date": {"type": "string"}, "approved": {"type": "boolean"}}},
        "controllers.PaymentRequest": {"type": "object", "properties": {"sale": {"type": "integer"}, "amount": {"type": "string", "example": "59.97"}, "method": {"type": "string", "enum": ["cash", "card", "transfer"]}, "approved": {"type": "boolean"}}},
        "models.StoreResponse": {"type": "object", "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "location": {"type": "string"}, "owner": {"type": "integer"}, "owner_username": {"type": "string"}, "approved": {"type": "boolean"}}},
        "models.SalesResponse": {"type": "object", "properties": {"id": {"type": "integer"}, "store": {"type": "integer"}, "store_name": {"type": "string"}, "medicine": {"type": "string"}, "quantity": {"type": "integer"}, "price": {"type": "string"}, "total": {"type": "string"}, "date": {"type": "string"}, "approved": {"type": "boolean"}}},
        "models.PaymentResponse": {"type": "object", "properties": {"id": {"type": "integer"}, "sale": {"type": "integer"}, "medicine": {"type": "string"}, "amount": {"type": "string"}, "method": {"type": "string"}, "date": {"type": "string"}, "approved": {"type": "boolean"}}},
        "models.UserResponse": {"type": "object", "properties": {"id": {"type": "integer"}, "username": {"type": "string"}, "email": {"type": "string"}, "is_staff": {"type": "boolean"}, "is_superuser": {"type": "boolean"}, "is_active": {"type": "boolean"}, "last_login": {"type": "string"}}},
        "models.LoginActivityResponse": {"type": "object", "properties": {"id": {"type": "integer"}, "user": {"type": "integer"}, "username": {"type": "string"}, "logged_in_at": {"type": "string"}}},
        "utils.RegisterResponse": {"type": "object", "properties": {"message": {"type": "string"}, "user_id": {"type": "integer"}}},
        "utils.LoginResponse": {"type": "object", "properties": {"access": {"type": "string"}, "refresh": {"type": "string"}, "username": {"type": "string"}, "is_admin": {"type": "boolean"}}},
        "utils.RefreshResponse": {"type": "object", "properties": {"access": {"type": "string"}}},
        "utils.ErrorResponse": {"type": "object", "properties": {"success": {"type": "boolean"}, "error": {"type": "string"}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "Pharmacy POS API",
	Description:      "Stores, sales, payments and login auditing for pharmacy point of sale.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
