package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Thesis Defense Scheduling API",
        "description": "Decision support system for thesis defense scheduling with AHP weighting and SAW/TOPSIS examiner ranking.",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Schedule", "description": "Schedule generation, retrieval, analysis and export"},
        {"name": "Evaluation", "description": "Standalone examiner ranking"},
        {"name": "AHP", "description": "Criteria weighting from pairwise comparisons"},
        {"name": "Configuration", "description": "Criteria, methods and demo data"}
    ],
    "paths": {
        "/schedule/generate": {
            "post": {
                "tags": ["Schedule"],
                "summary": "Generate a thesis defense schedule",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GenerateScheduleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedule/generate-async": {
            "post": {
                "tags": ["Schedule"],
                "summary": "Queue schedule generation in the background",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GenerateScheduleRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedule/solutions/{id}": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Fetch a stored schedule solution",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedule/solutions/{id}/export": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Download a schedule solution as CSV or PDF",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/analyze-schedule": {
            "post": {
                "tags": ["Schedule"],
                "summary": "Analyze schedule quality",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AnalyzeScheduleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/evaluate-examiners": {
            "post": {
                "tags": ["Evaluation"],
                "summary": "Rank examiner candidates for one student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EvaluateExaminersRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/ahp/weights": {
            "post": {
                "tags": ["AHP"],
                "summary": "Derive criteria weights from a pairwise comparison matrix",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AHPWeightsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/criteria": {
            "get": {
                "tags": ["Configuration"],
                "summary": "List the default evaluation criteria",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/methods": {
            "get": {
                "tags": ["Configuration"],
                "summary": "List supported ranking methods",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/sample-data": {
            "get": {
                "tags": ["Configuration"],
                "summary": "Fetch the built-in demo dataset",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "Criterion": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "weight": {"type": "number"},
                "type": {"type": "string", "enum": ["benefit", "cost"]}
            }
        },
        "GenerateScheduleRequest": {
            "type": "object",
            "properties": {
                "students": {"type": "array", "items": {"type": "object"}},
                "examiners": {"type": "array", "items": {"type": "object"}},
                "rooms": {"type": "array", "items": {"type": "object"}},
                "timeslots": {"type": "array", "items": {"type": "object"}},
                "sessions": {"type": "array", "items": {"type": "object"}},
                "criteria": {"type": "array", "items": {"$ref": "#/definitions/Criterion"}},
                "method": {"type": "string", "enum": ["SAW", "TOPSIS"]}
            },
            "required": ["students", "examiners", "rooms", "sessions"]
        },
        "AnalyzeScheduleRequest": {
            "type": "object",
            "properties": {
                "solution_id": {"type": "string"},
                "solution": {"type": "object"}
            }
        },
        "EvaluateExaminersRequest": {
            "type": "object",
            "properties": {
                "student": {"type": "object"},
                "examiners": {"type": "array", "items": {"type": "object"}},
                "timeslot_id": {"type": "integer"},
                "criteria": {"type": "array", "items": {"$ref": "#/definitions/Criterion"}},
                "method": {"type": "string", "enum": ["SAW", "TOPSIS"]}
            },
            "required": ["student", "examiners"]
        },
        "AHPWeightsRequest": {
            "type": "object",
            "properties": {
                "criteria": {"type": "array", "items": {"type": "string"}},
                "comparison_matrix": {
                    "type": "array",
                    "items": {"type": "array", "items": {"type": "number"}}
                }
            },
            "required": ["criteria", "comparison_matrix"]
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
