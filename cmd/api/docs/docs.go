// Package docs registers a hand-maintained OpenAPI description served under
// /swagger. Keep the paths in step with handler.RegisterRoutes.
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
        "/health": {"get": {"tags": ["health"], "summary": "Health check", "responses": {"200": {"description": "OK"}}}},
        "/quizzes": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["quizzes"], "summary": "List quizzes", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["quizzes"], "summary": "Create a quiz", "responses": {"201": {"description": "Created"}}}
        },
        "/quizzes/ai-generate": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["quizzes"], "summary": "Generate quiz questions", "responses": {"200": {"description": "OK"}}}},
        "/quizzes/explain": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["quizzes"], "summary": "Explain an answer", "responses": {"200": {"description": "OK"}}}},
        "/quizzes/{id}": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["quizzes"], "summary": "Get a quiz",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"type": "boolean", "name": "explain", "in": "query"}],
                "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"ApiKeyAuth": []}], "tags": ["quizzes"], "summary": "Update a quiz",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"ApiKeyAuth": []}], "tags": ["quizzes"], "summary": "Delete a quiz",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}}
        },
        "/results/my": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["results"], "summary": "List my results", "responses": {"200": {"description": "OK"}}}},
        "/results/quiz/{quizId}": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["results"], "summary": "List results of a quiz",
            "parameters": [{"type": "string", "name": "quizId", "in": "path", "required": true}],
            "responses": {"200": {"description": "OK"}}}},
        "/results/{quizId}/submit": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["results"], "summary": "Submit answers",
            "parameters": [{"type": "string", "name": "quizId", "in": "path", "required": true}],
            "responses": {"200": {"description": "OK"}}}}
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8090",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "QuizForge API",
	Description:      "Quiz authoring, AI question generation, grading and answer explanations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
