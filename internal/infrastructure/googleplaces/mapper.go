package googleplaces

import (
	"strings"

	"github.com/places-sync/internal/domain"
)

// formatter переносит значение одного ключа payload в Place.
// Форматтеры не возвращают ошибок: некорректное или отсутствующее значение
// деградирует до пустого поля.
type formatter func(value interface{}, place *domain.Place)

// v1Mapping - таблица соответствий для ответа Places API v1.
// Ключи вне таблицы отбрасываются (allow-list, а не deny-list): дрейф схемы
// внешнего API не может незаметно протащить данные в запись.
var v1Mapping = map[string]formatter{
	"id": func(v interface{}, p *domain.Place) {
		p.PlaceID = asString(v)
	},
	"displayName": func(v interface{}, p *domain.Place) {
		// Имя приходит вложенным объектом {text, languageCode}
		if obj, ok := v.(map[string]interface{}); ok {
			p.DisplayName = asString(obj["text"])
		}
	},
	"nationalPhoneNumber": func(v interface{}, p *domain.Place) {
		p.NationalPhoneNumber = asString(v)
	},
	"formattedAddress": func(v interface{}, p *domain.Place) {
		p.FormattedAddress = asString(v)
	},
	"websiteUri": func(v interface{}, p *domain.Place) {
		p.WebsiteURI = asString(v)
	},
	"googleMapsLinks": func(v interface{}, p *domain.Place) {
		if obj, ok := v.(map[string]interface{}); ok {
			p.ReviewsURI = asString(obj["reviewsUri"])
		}
	},
	"location": func(v interface{}, p *domain.Place) {
		obj, ok := v.(map[string]interface{})
		if !ok {
			return
		}
		setCoordinates(p, obj["latitude"], obj["longitude"])
	},
	"regularOpeningHours": func(v interface{}, p *domain.Place) {
		if obj, ok := v.(map[string]interface{}); ok {
			p.OpeningHours = parseWeekdayLines(obj["weekdayDescriptions"])
		}
	},
}

// legacyMapping - таблица соответствий для плоского ответа старого Place API
var legacyMapping = map[string]formatter{
	"place_id": func(v interface{}, p *domain.Place) {
		p.PlaceID = asString(v)
	},
	"name": func(v interface{}, p *domain.Place) {
		p.DisplayName = asString(v)
	},
	"formatted_phone_number": func(v interface{}, p *domain.Place) {
		p.NationalPhoneNumber = asString(v)
	},
	"formatted_address": func(v interface{}, p *domain.Place) {
		p.FormattedAddress = asString(v)
	},
	"website": func(v interface{}, p *domain.Place) {
		p.WebsiteURI = asString(v)
	},
	// url в legacy ответе - ссылка на страницу места в Google Maps с отзывами
	"url": func(v interface{}, p *domain.Place) {
		p.ReviewsURI = asString(v)
	},
	"geometry": func(v interface{}, p *domain.Place) {
		obj, ok := v.(map[string]interface{})
		if !ok {
			return
		}
		loc, ok := obj["location"].(map[string]interface{})
		if !ok {
			return
		}
		setCoordinates(p, loc["lat"], loc["lng"])
	},
	"opening_hours": func(v interface{}, p *domain.Place) {
		if obj, ok := v.(map[string]interface{}); ok {
			p.OpeningHours = parseWeekdayLines(obj["weekday_text"])
		}
	},
}

// MapDetails преобразует сырой ответ деталей места в Place.
// Чистая функция: выбирает таблицу по метке схемы и применяет форматтеры
// только к задекларированным ключам. Идемпотентна - одинаковый payload
// всегда даёт одинаковую запись (UpdatedAt проставляется оркестратором).
func MapDetails(raw domain.RawDetails) *domain.Place {
	place := &domain.Place{
		OpeningHours: []domain.OpeningHoursPeriod{},
	}

	mapping := v1Mapping
	if raw.Schema == domain.SchemaLegacy {
		mapping = legacyMapping
	}

	for key, apply := range mapping {
		if value, ok := raw.Payload[key]; ok {
			apply(value, place)
		}
	}

	return place
}

// setCoordinates проставляет координаты только парой: если широта или долгота
// отсутствует или не является числом, обе остаются пустыми
func setCoordinates(p *domain.Place, latValue, lngValue interface{}) {
	lat, latOK := asFloat(latValue)
	lng, lngOK := asFloat(lngValue)
	if !latOK || !lngOK {
		return
	}
	p.Latitude = &lat
	p.Longitude = &lng
}

// parseWeekdayLines разбирает строки вида "Monday: 9am-5pm" в пары
// {Label, Hours}. Отсутствующее или не-массивное значение даёт пустой срез.
func parseWeekdayLines(value interface{}) []domain.OpeningHoursPeriod {
	periods := []domain.OpeningHoursPeriod{}

	lines, ok := value.([]interface{})
	if !ok {
		return periods
	}

	for _, l := range lines {
		line, ok := l.(string)
		if !ok || line == "" {
			continue
		}
		// Разбиваем по первому вхождению ": "
		parts := strings.SplitN(line, ": ", 2)
		period := domain.OpeningHoursPeriod{Label: parts[0]}
		if len(parts) == 2 {
			period.Hours = parts[1]
		}
		periods = append(periods, period)
	}

	return periods
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asFloat(v interface{}) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}
