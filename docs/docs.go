// Package docs holds the OpenAPI definition registered with swag and served
// at /swagger. Maintained by hand; run swag init to regenerate it from the
// handler annotations when the surface changes.
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
        "/store/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["storefront"],
                "summary": "List products with filters",
                "parameters": [
                    {"type": "string", "name": "category", "in": "query"},
                    {"type": "string", "name": "brand", "in": "query"},
                    {"type": "number", "name": "minPrice", "in": "query"},
                    {"type": "number", "name": "maxPrice", "in": "query"},
                    {"type": "integer", "name": "minDiscount", "in": "query"},
                    {"type": "string", "name": "sizes", "in": "query"},
                    {"type": "string", "name": "sortBy", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/store/products/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["storefront"],
                "summary": "Get a single product",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "view", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/store/sections/{section}/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["storefront"],
                "summary": "List products for a section view",
                "parameters": [
                    {"type": "string", "name": "section", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/store/filters": {
            "get": {
                "produces": ["application/json"],
                "tags": ["storefront"],
                "summary": "Filter rail metadata",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/store/cart": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Add an item to the cart",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.AddToCartRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/store/cart/{session_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Get cart contents",
                "parameters": [
                    {"type": "string", "name": "session_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/store/orders": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Place an order from the session cart",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreateOrderRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/store/orders/{session_id}/{order_id}/invoice": {
            "get": {
                "produces": ["application/pdf"],
                "tags": ["orders"],
                "summary": "Download the order invoice PDF",
                "parameters": [
                    {"type": "string", "name": "session_id", "in": "path", "required": true},
                    {"type": "string", "name": "order_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.ApiResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "data": {},
                "error": {"type": "boolean"},
                "meta": {"$ref": "#/definitions/models.Pagination"},
                "requested_entity": {"type": "string"}
            }
        },
        "models.Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer", "example": 1},
                "limit": {"type": "integer", "example": 12},
                "total": {"type": "integer", "example": 42},
                "total_pages": {"type": "integer", "example": 4}
            }
        },
        "models.AddToCartRequest": {
            "type": "object",
            "required": ["product_id", "quantity", "session_id", "size"],
            "properties": {
                "session_id": {"type": "string"},
                "product_id": {"type": "string"},
                "size": {"type": "string"},
                "color": {"type": "string"},
                "quantity": {"type": "integer", "minimum": 1}
            }
        },
        "models.CreateOrderRequest": {
            "type": "object",
            "required": ["customer_email", "customer_name", "session_id", "shipping_address"],
            "properties": {
                "session_id": {"type": "string"},
                "customer_name": {"type": "string"},
                "customer_email": {"type": "string"},
                "shipping_address": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8081",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "Velora Storefront API",
	Description:      "REST API for the Velora fashion storefront: catalog, cart, wishlist and checkout.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
