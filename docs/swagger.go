// Package docs регистрирует OpenAPI-спецификацию сервиса для /swagger/*.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "support@places-sync.dev"
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
        "/api/v1/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Проверка работоспособности сервиса",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/places/{placeId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Places"],
                "summary": "Получение места с проверкой свежести",
                "description": "Возвращает сохранённое место. Если запись не обновлялась сегодня, сначала выполняется ресинхронизация из Google Places API.",
                "parameters": [
                    {"type": "string", "name": "placeId", "in": "path", "required": true, "description": "Google Place ID"},
                    {"type": "string", "name": "lookup", "in": "query", "description": "Поисковый текст или телефон для повторного поиска"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Место не найдено"}
                }
            }
        },
        "/api/v1/places/sync": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Places"],
                "summary": "Синхронизация одного места",
                "description": "Выполняет поиск и загрузку деталей места из Google Places API и сохраняет результат. Сбои обогащения не считаются ошибкой: ответ всегда proceed=true.",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Невалидный запрос"}
                }
            }
        },
        "/api/v1/places/sync-all": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Sync"],
                "summary": "Запуск полной ресинхронизации",
                "description": "Ставит в очередь задачу синхронизации всех сохранённых мест. Возвращает job_id для отслеживания прогресса.",
                "responses": {
                    "202": {"description": "Задача поставлена в очередь"},
                    "500": {"description": "Очередь недоступна"}
                }
            }
        },
        "/api/v1/places/sync-all/{jobId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Sync"],
                "summary": "Прогресс задачи ресинхронизации",
                "parameters": [
                    {"type": "string", "name": "jobId", "in": "path", "required": true, "description": "ID задачи (UUID)"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Задача неизвестна"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Places Sync Service API",
	Description:      "Сервис синхронизации данных о местах из Google Places API. Находит место по текстовому запросу или номеру телефона, загружает детали (адрес, телефон, координаты, часы работы, ссылки) и хранит их в PostgreSQL с посуточной политикой свежести.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
