package domain

import "time"

// Place - данные о месте из Google Places, сохраняемые в БД.
// PlaceID является натуральным ключом: повторная синхронизация
// перезаписывает существующую запись, а не создаёт дубликат.
type Place struct {
	ID                  int64                `json:"id" db:"id"`
	PlaceID             string               `json:"place_id" db:"place_id" validate:"required"`
	DisplayName         string               `json:"display_name" db:"display_name" validate:"required"`
	NationalPhoneNumber string               `json:"national_phone_number,omitempty" db:"national_phone_number"`
	FormattedAddress    string               `json:"formatted_address,omitempty" db:"formatted_address"`
	Latitude            *float64             `json:"latitude,omitempty" db:"latitude"`
	Longitude           *float64             `json:"longitude,omitempty" db:"longitude"`
	ReviewsURI          string               `json:"reviews_uri,omitempty" db:"reviews_uri"`
	WebsiteURI          string               `json:"website_uri,omitempty" db:"website_uri"`
	OpeningHours        []OpeningHoursPeriod `json:"opening_hours,omitempty" db:"-"`
	UpdatedAt           time.Time            `json:"updated_at" db:"updated_at"`
	CreatedAt           time.Time            `json:"created_at" db:"created_at"`
}

// OpeningHoursPeriod - часы работы за один день недели.
// Исходная строка вида "Monday: 9am-5pm" разбивается на Label и Hours.
type OpeningHoursPeriod struct {
	Label string `json:"label"`
	Hours string `json:"hours"`
}

// PlaceQuery - входные данные одной попытки синхронизации.
// PlaceID имеет приоритет над Lookup; если оба пусты - синхронизация не выполняется.
type PlaceQuery struct {
	PlaceID string `json:"place_id"`
	Lookup  string `json:"lookup"`
}

// IsEmpty сообщает, что запрос не содержит ни ID, ни строки поиска
func (q PlaceQuery) IsEmpty() bool {
	return q.PlaceID == "" && q.Lookup == ""
}

// Candidate - кандидат из поискового запроса к Places API
type Candidate struct {
	PlaceID     string `json:"place_id"`
	DisplayName string `json:"display_name,omitempty"`
}
