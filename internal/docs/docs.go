// Package docs holds the Swagger 2.0 document served under /docs. It follows
// swag's generated layout but is maintained by hand: dto.CompanyResult is
// described by its flattened JSON form, which swag cannot derive from the
// struct, so do not regenerate it with swag init.
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
        "/": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "summary": "Service status",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.RootResponse"
                        }
                    }
                }
            }
        },
        "/companies/": {
            "get": {
                "description": "Retrieve details for multiple companies, using a comma-separated list of company numbers.",
                "produces": [
                    "application/json"
                ],
                "summary": "Get Multiple Company Details",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Comma-separated list of company IDs",
                        "name": "company_ids",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "The details of each company, or an error entry for any companies that failed",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.CompanyResult"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/company/{company_id}": {
            "get": {
                "description": "Retrieve details for a single company using a company number.",
                "produces": [
                    "application/json"
                ],
                "summary": "Get Company Details",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Company number",
                        "name": "company_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "The details of the company, including its name, company number, the SIC codes for its activities and their descriptions.",
                        "schema": {
                            "$ref": "#/definitions/dto.CompanyInformation"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.CompanyInformation": {
            "type": "object",
            "properties": {
                "company_name": {
                    "type": "string"
                },
                "company_number": {
                    "type": "string"
                },
                "sic_codes": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "sic_descriptions": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.CompanyInformationError": {
            "type": "object",
            "properties": {
                "company_number": {
                    "type": "string"
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "dto.CompanyResult": {
            "description": "Either a dto.CompanyInformation or, when the object has an error key, a dto.CompanyInformationError.",
            "type": "object",
            "properties": {
                "company_name": {
                    "type": "string"
                },
                "company_number": {
                    "type": "string"
                },
                "error": {
                    "type": "string"
                },
                "sic_codes": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "sic_descriptions": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.RootResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Company Lookup API",
	Description:      "Looks up UK companies in the Companies House registry and describes their SIC codes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
