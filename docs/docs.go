// Package docs holds the OpenAPI document served at /swagger.
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
		"/jwt": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Issue a session token",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.tokenResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"429": {
						"description": "Too Many Requests",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.tokenRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				]
			}
		},
		"/users": {
			"get": {
				"tags": [
					"users"
				],
				"summary": "List users",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/domain.User"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"users"
				],
				"summary": "Create a user if absent",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.UpsertResult"
						}
					},
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/domain.UpsertResult"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.createUserRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				]
			}
		},
		"/users/admin/{email}": {
			"get": {
				"tags": [
					"users"
				],
				"summary": "Check whether the caller is an admin",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.adminStatusResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "email",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Caller email"
					}
				],
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/users/admin/{id}": {
			"patch": {
				"tags": [
					"users"
				],
				"summary": "Promote a user to admin",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "User id"
					}
				],
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/users/{id}": {
			"delete": {
				"tags": [
					"users"
				],
				"summary": "Delete a user",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "User id"
					}
				],
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/menu": {
			"get": {
				"tags": [
					"menu"
				],
				"summary": "List menu items",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/domain.MenuItem"
							}
						}
					}
				}
			},
			"post": {
				"tags": [
					"menu"
				],
				"summary": "Create a menu item",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.insertedResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.menuItemRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/menu/{id}": {
			"get": {
				"tags": [
					"menu"
				],
				"summary": "Get a menu item",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.MenuItem"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Menu item id"
					}
				],
				"consumes": [
					"application/json"
				]
			},
			"patch": {
				"tags": [
					"menu"
				],
				"summary": "Update a menu item",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Menu item id"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.menuItemPatchRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"menu"
				],
				"summary": "Delete a menu item",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Menu item id"
					}
				],
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/reviews": {
			"get": {
				"tags": [
					"menu"
				],
				"summary": "List reviews",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/domain.Review"
							}
						}
					}
				}
			}
		},
		"/carts": {
			"get": {
				"tags": [
					"carts"
				],
				"summary": "List a user's cart",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/domain.CartEntry"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "email",
						"in": "query",
						"required": true,
						"type": "string"
					}
				],
				"consumes": [
					"application/json"
				]
			},
			"post": {
				"tags": [
					"carts"
				],
				"summary": "Add a cart entry",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.insertedResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.addCartRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				]
			}
		},
		"/carts/{id}": {
			"delete": {
				"tags": [
					"carts"
				],
				"summary": "Remove a cart entry",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.deleteResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Cart entry id"
					}
				],
				"consumes": [
					"application/json"
				]
			}
		},
		"/create-payment-intent": {
			"post": {
				"tags": [
					"payments"
				],
				"summary": "Create a card payment intent",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.createIntentResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"502": {
						"description": "Bad Gateway",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.createIntentRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				]
			}
		},
		"/payments": {
			"post": {
				"tags": [
					"payments"
				],
				"summary": "Record a completed card payment",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.recordPaymentResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.recordPaymentResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.recordPaymentRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				]
			}
		},
		"/payments/{email}": {
			"get": {
				"tags": [
					"payments"
				],
				"summary": "Payment history of the caller",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/domain.Payment"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "email",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Caller email"
					}
				],
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/payments/gateway": {
			"post": {
				"tags": [
					"payments"
				],
				"summary": "Start a gateway checkout",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.gatewayPaymentResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"502": {
						"description": "Bad Gateway",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.gatewayPaymentRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				]
			}
		},
		"/payments/gateway/success": {
			"post": {
				"tags": [
					"gateway"
				],
				"summary": "Gateway success callback",
				"produces": [
					"application/json"
				],
				"responses": {
					"303": {
						"description": "See Other"
					}
				},
				"parameters": [
					{
						"name": "val_id",
						"in": "formData",
						"type": "string"
					},
					{
						"name": "tran_id",
						"in": "formData",
						"type": "string"
					}
				],
				"consumes": [
					"application/x-www-form-urlencoded"
				]
			}
		},
		"/payments/gateway/fail": {
			"post": {
				"tags": [
					"gateway"
				],
				"summary": "Gateway fail callback",
				"produces": [
					"application/json"
				],
				"responses": {
					"303": {
						"description": "See Other"
					}
				},
				"parameters": [
					{
						"name": "tran_id",
						"in": "formData",
						"type": "string"
					}
				],
				"consumes": [
					"application/x-www-form-urlencoded"
				]
			}
		},
		"/payments/gateway/cancel": {
			"post": {
				"tags": [
					"gateway"
				],
				"summary": "Gateway cancel callback",
				"produces": [
					"application/json"
				],
				"responses": {
					"303": {
						"description": "See Other"
					}
				},
				"parameters": [
					{
						"name": "tran_id",
						"in": "formData",
						"type": "string"
					}
				],
				"consumes": [
					"application/x-www-form-urlencoded"
				]
			}
		},
		"/payments/gateway/ipn": {
			"post": {
				"tags": [
					"gateway"
				],
				"summary": "Gateway instant payment notification",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.settlementResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "val_id",
						"in": "formData",
						"type": "string"
					},
					{
						"name": "tran_id",
						"in": "formData",
						"type": "string"
					}
				],
				"consumes": [
					"application/x-www-form-urlencoded"
				]
			}
		},
		"/admin-stats": {
			"get": {
				"tags": [
					"stats"
				],
				"summary": "Dashboard counters",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.AdminStats"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/order-stats": {
			"get": {
				"tags": [
					"stats"
				],
				"summary": "Revenue by menu category",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/domain.CategoryStats"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		}
	},
	"definitions": {
		"handler.errorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				}
			}
		},
		"handler.messageResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				}
			}
		},
		"handler.tokenRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"name": {
					"type": "string"
				}
			}
		},
		"handler.tokenResponse": {
			"type": "object",
			"properties": {
				"token": {
					"type": "string"
				}
			}
		},
		"handler.createUserRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"name": {
					"type": "string"
				}
			}
		},
		"handler.adminStatusResponse": {
			"type": "object",
			"properties": {
				"admin": {
					"type": "boolean"
				}
			}
		},
		"handler.menuItemRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"price": {
					"type": "number"
				},
				"recipe": {
					"type": "string"
				},
				"image": {
					"type": "string"
				}
			}
		},
		"handler.menuItemPatchRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"price": {
					"type": "number"
				},
				"recipe": {
					"type": "string"
				},
				"image": {
					"type": "string"
				}
			}
		},
		"handler.insertedResponse": {
			"type": "object",
			"properties": {
				"insertedId": {
					"type": "string"
				}
			}
		},
		"handler.addCartRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"menuId": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"image": {
					"type": "string"
				},
				"price": {
					"type": "number"
				}
			}
		},
		"handler.deleteResponse": {
			"type": "object",
			"properties": {
				"deletedCount": {
					"type": "integer"
				}
			}
		},
		"handler.createIntentRequest": {
			"type": "object",
			"properties": {
				"price": {
					"type": "number"
				}
			}
		},
		"handler.createIntentResponse": {
			"type": "object",
			"properties": {
				"clientSecret": {
					"type": "string"
				}
			}
		},
		"handler.recordPaymentRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"price": {
					"type": "number"
				},
				"cartIds": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"menuItemIds": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"transactionId": {
					"type": "string"
				},
				"status": {
					"type": "string"
				}
			}
		},
		"handler.paymentResult": {
			"type": "object",
			"properties": {
				"insertedId": {
					"type": "string"
				},
				"error": {
					"type": "string"
				}
			}
		},
		"handler.deleteResult": {
			"type": "object",
			"properties": {
				"deletedCount": {
					"type": "integer"
				},
				"error": {
					"type": "string"
				}
			}
		},
		"handler.recordPaymentResponse": {
			"type": "object",
			"properties": {
				"paymentResult": {
					"$ref": "#/definitions/handler.paymentResult"
				},
				"deleteResult": {
					"$ref": "#/definitions/handler.deleteResult"
				}
			}
		},
		"handler.gatewayPaymentRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"price": {
					"type": "number"
				},
				"cartIds": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"menuItemIds": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"phone": {
					"type": "string"
				},
				"address": {
					"type": "string"
				},
				"city": {
					"type": "string"
				}
			}
		},
		"handler.gatewayPaymentResponse": {
			"type": "object",
			"properties": {
				"url": {
					"type": "string"
				}
			}
		},
		"handler.settlementResponse": {
			"type": "object",
			"properties": {
				"tranId": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"alreadySettled": {
					"type": "boolean"
				},
				"deletedCount": {
					"type": "integer"
				},
				"cartsCleared": {
					"type": "boolean"
				}
			}
		},
		"domain.User": {
			"type": "object",
			"properties": {
				"_id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"role": {
					"type": "string"
				},
				"createdAt": {
					"type": "string"
				}
			}
		},
		"domain.UpsertResult": {
			"type": "object",
			"properties": {
				"insertedId": {
					"type": "string"
				},
				"created": {
					"type": "boolean"
				}
			}
		},
		"domain.MenuItem": {
			"type": "object",
			"properties": {
				"_id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"price": {
					"type": "number"
				},
				"recipe": {
					"type": "string"
				},
				"image": {
					"type": "string"
				}
			}
		},
		"domain.Review": {
			"type": "object",
			"properties": {
				"_id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"details": {
					"type": "string"
				},
				"rating": {
					"type": "number"
				},
				"createdAt": {
					"type": "string"
				}
			}
		},
		"domain.CartEntry": {
			"type": "object",
			"properties": {
				"_id": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"menuId": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"image": {
					"type": "string"
				},
				"price": {
					"type": "number"
				},
				"createdAt": {
					"type": "string"
				}
			}
		},
		"domain.Payment": {
			"type": "object",
			"properties": {
				"_id": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"price": {
					"type": "number"
				},
				"cartIds": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"menuItemIds": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"transactionId": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"date": {
					"type": "string"
				},
				"settledAt": {
					"type": "string"
				},
				"cartsCleared": {
					"type": "boolean"
				}
			}
		},
		"domain.AdminStats": {
			"type": "object",
			"properties": {
				"users": {
					"type": "integer"
				},
				"menuItems": {
					"type": "integer"
				},
				"orders": {
					"type": "integer"
				},
				"totalRevenue": {
					"type": "number"
				}
			}
		},
		"domain.CategoryStats": {
			"type": "object",
			"properties": {
				"category": {
					"type": "string"
				},
				"quantity": {
					"type": "integer"
				},
				"revenue": {
					"type": "number"
				}
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
	Title:            "Bistro Boss API",
	Description:      "Restaurant ordering backend: menu, carts, card and gateway checkout, admin analytics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
