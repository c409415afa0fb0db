package domain

// Schema - версия схемы ответа Places API.
// Дискриминатор проставляется клиентом на границе, а не угадывается
// по наличию ключей в payload.
type Schema string

const (
	// SchemaLegacy - плоский ответ старого Place API (place/details/json)
	SchemaLegacy Schema = "legacy"
	// SchemaV1 - ответ нового Places API v1 (GET /v1/places/{id})
	SchemaV1 Schema = "v1"
)

// RawDetails - сырой payload деталей места с меткой схемы.
// Payload - декодированный JSON; маппер выбирает таблицу соответствий
// по Schema и отбрасывает все незадекларированные ключи.
type RawDetails struct {
	Schema  Schema
	Payload map[string]interface{}
}
