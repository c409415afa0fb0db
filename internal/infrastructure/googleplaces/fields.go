package googleplaces

import "strings"

// Запрашиваемые поля задекларированы один раз и используются и при построении
// запроса, и маппером как allow-list. Фиксированный набор полей вместо "всех
// полей" - осознанная политика: ответ меньше, вызов дешевле.
var detailFields = []string{
	"id",
	"displayName",
	"nationalPhoneNumber",
	"formattedAddress",
	"location",
	"googleMapsLinks",
	"websiteUri",
	"regularOpeningHours",
}

// searchFields - поля, запрашиваемые при текстовом поиске
var searchFields = []string{
	"places.id",
	"places.displayName",
}

func detailFieldMask() string {
	return strings.Join(detailFields, ",")
}

func searchFieldMask() string {
	return strings.Join(searchFields, ",")
}
