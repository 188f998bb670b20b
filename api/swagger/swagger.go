package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Park Maintenance Planner API",
        "description": "Builds daily maintenance schedules for amusement park staff",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Schedules", "description": "Day schedule generation and export"},
        {"name": "Profiles", "description": "Employee planning profiles"},
        {"name": "Planning Jobs", "description": "Asynchronous batch planning"},
        {"name": "Catalog", "description": "Maintenance task catalog"}
    ],
    "paths": {
        "/schedules": {
            "post": {
                "tags": ["Schedules"],
                "summary": "Generate a day schedule",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GenerateScheduleRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Profile not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "503": {"description": "Task catalog unavailable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedules/{name}": {
            "get": {
                "tags": ["Schedules"],
                "summary": "Latest day schedule of an employee",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "name", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "No schedule", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedules/{name}/export": {
            "get": {
                "tags": ["Schedules"],
                "summary": "Export the latest day schedule",
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "name", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Attachment"},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedules/batch": {
            "post": {
                "tags": ["Planning Jobs"],
                "summary": "Queue schedule generation for several employees",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BatchScheduleRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedules/batch/{id}": {
            "get": {
                "tags": ["Planning Jobs"],
                "summary": "Planning job status",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/catalog/tasks": {
            "put": {
                "tags": ["Catalog"],
                "summary": "Add or replace maintenance tasks",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ImportCatalogRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid catalog", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/employees/{name}/profile": {
            "get": {
                "tags": ["Profiles"],
                "summary": "Get an employee profile",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "name", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Profile not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Profiles"],
                "summary": "Create or replace an employee profile",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "name", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpsertProfileRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "WeatherInput": {
            "type": "object",
            "properties": {
                "temperature": {"type": "integer"},
                "description": {"type": "string"},
                "rain": {"type": "boolean"}
            }
        },
        "GenerateScheduleRequest": {
            "type": "object",
            "properties": {
                "employee_name": {"type": "string"},
                "weather": {"$ref": "#/definitions/WeatherInput"}
            },
            "required": ["employee_name"]
        },
        "BatchScheduleRequest": {
            "type": "object",
            "properties": {
                "employee_names": {"type": "array", "items": {"type": "string"}}
            },
            "required": ["employee_names"]
        },
        "UpsertProfileRequest": {
            "type": "object",
            "properties": {
                "job_role": {"type": "string"},
                "qualification": {"type": "string"},
                "max_work_minutes": {"type": "integer"},
                "outdoor_specializations": {"type": "array", "items": {"type": "string"}},
                "split_breaks": {"type": "boolean"},
                "max_physical_load": {"type": "integer"}
            },
            "required": ["job_role", "qualification"]
        },
        "CatalogTask": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "description": {"type": "string"},
                "duration_minutes": {"type": "integer"},
                "priority": {"type": "string", "enum": ["HIGH", "MEDIUM", "LOW"]},
                "job_role": {"type": "string"},
                "qualification": {"type": "string"},
                "physical_load": {"type": "integer"},
                "attraction": {"type": "string"},
                "outdoor": {"type": "boolean"}
            },
            "required": ["id", "description", "priority", "job_role", "qualification"]
        },
        "ImportCatalogRequest": {
            "type": "object",
            "properties": {
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/CatalogTask"}}
            },
            "required": ["tasks"]
        },
        "ScheduleEntry": {
            "type": "object",
            "properties": {
                "time": {"type": "string"},
                "kind": {"type": "string"},
                "activity": {"type": "string"},
                "duration_minutes": {"type": "integer"},
                "priority": {"type": "string"},
                "job_role": {"type": "string"},
                "qualification": {"type": "string"},
                "attraction": {"type": "string"},
                "physical_load": {"type": "integer"},
                "outdoor": {"type": "string"},
                "weather": {"type": "string"}
            }
        },
        "DaySchedule": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "employee": {"type": "object"},
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/ScheduleEntry"}},
                "total_duration": {"type": "integer"},
                "weather": {"$ref": "#/definitions/WeatherInput"},
                "used_fallback": {"type": "boolean"},
                "generated_at": {"type": "string", "format": "date-time"}
            }
        },
        "PlanningJob": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "employee_name": {"type": "string"},
                "status": {"type": "string", "enum": ["QUEUED", "PROCESSING", "FINISHED", "FAILED"]},
                "schedule_id": {"type": "string"},
                "error_message": {"type": "string"},
                "attempts": {"type": "integer"},
                "created_by": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"},
                "finished_at": {"type": "string", "format": "date-time"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
