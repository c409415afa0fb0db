package googleplaces

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/places-sync/internal/domain"
)

func v1Payload() map[string]interface{} {
	return map[string]interface{}{
		"id":                  "abc123",
		"displayName":         map[string]interface{}{"text": "Example Cafe", "languageCode": "en"},
		"nationalPhoneNumber": "(02) 4929 1154",
		"formattedAddress":    "1 Example St, Newcastle NSW 2300, Australia",
		"websiteUri":          "https://example.cafe",
		"googleMapsLinks":     map[string]interface{}{"reviewsUri": "https://maps.google.com/?cid=1#reviews"},
		"location":            map[string]interface{}{"latitude": -33.8, "longitude": 151.2},
		"regularOpeningHours": map[string]interface{}{
			"weekdayDescriptions": []interface{}{
				"Monday: 9am–5pm",
				"Tuesday: Closed",
			},
		},
	}
}

func TestMapDetails_V1(t *testing.T) {
	t.Run("maps all declared fields", func(t *testing.T) {
		place := MapDetails(domain.RawDetails{Schema: domain.SchemaV1, Payload: v1Payload()})

		assert.Equal(t, "abc123", place.PlaceID)
		assert.Equal(t, "Example Cafe", place.DisplayName)
		assert.Equal(t, "(02) 4929 1154", place.NationalPhoneNumber)
		assert.Equal(t, "1 Example St, Newcastle NSW 2300, Australia", place.FormattedAddress)
		assert.Equal(t, "https://example.cafe", place.WebsiteURI)
		assert.Equal(t, "https://maps.google.com/?cid=1#reviews", place.ReviewsURI)
		require.NotNil(t, place.Latitude)
		require.NotNil(t, place.Longitude)
		assert.Equal(t, -33.8, *place.Latitude)
		assert.Equal(t, 151.2, *place.Longitude)
		require.Len(t, place.OpeningHours, 2)
		assert.Equal(t, domain.OpeningHoursPeriod{Label: "Monday", Hours: "9am–5pm"}, place.OpeningHours[0])
		assert.Equal(t, domain.OpeningHoursPeriod{Label: "Tuesday", Hours: "Closed"}, place.OpeningHours[1])
	})

	t.Run("unknown keys never leak through", func(t *testing.T) {
		payload := v1Payload()
		payload["rating"] = 4.8
		payload["priceLevel"] = "PRICE_LEVEL_MODERATE"
		payload["internationalPhoneNumber"] = "+61 2 4929 1154"

		withExtras := MapDetails(domain.RawDetails{Schema: domain.SchemaV1, Payload: payload})
		without := MapDetails(domain.RawDetails{Schema: domain.SchemaV1, Payload: v1Payload()})

		assert.Equal(t, without, withExtras)
	})

	t.Run("mapping is idempotent", func(t *testing.T) {
		raw := domain.RawDetails{Schema: domain.SchemaV1, Payload: v1Payload()}

		first := MapDetails(raw)
		second := MapDetails(raw)

		assert.Equal(t, first, second)
	})

	t.Run("display name without text degrades to empty", func(t *testing.T) {
		payload := v1Payload()
		payload["displayName"] = map[string]interface{}{"languageCode": "en"}

		place := MapDetails(domain.RawDetails{Schema: domain.SchemaV1, Payload: payload})

		assert.Equal(t, "", place.DisplayName)
	})

	t.Run("missing longitude drops both coordinates", func(t *testing.T) {
		payload := v1Payload()
		payload["location"] = map[string]interface{}{"latitude": -33.8}

		place := MapDetails(domain.RawDetails{Schema: domain.SchemaV1, Payload: payload})

		assert.Nil(t, place.Latitude)
		assert.Nil(t, place.Longitude)
	})

	t.Run("malformed location is not an error", func(t *testing.T) {
		payload := v1Payload()
		payload["location"] = "not an object"

		place := MapDetails(domain.RawDetails{Schema: domain.SchemaV1, Payload: payload})

		assert.Nil(t, place.Latitude)
		assert.Nil(t, place.Longitude)
	})
}

func TestMapDetails_Legacy(t *testing.T) {
	payload := map[string]interface{}{
		"place_id":               "legacy42",
		"name":                   "Old Town Bakery",
		"formatted_phone_number": "(02) 1234 5678",
		"formatted_address":      "2 Heritage Ln, Newcastle NSW",
		"website":                "https://oldtown.example",
		"url":                    "https://maps.google.com/?cid=42",
		"geometry": map[string]interface{}{
			"location": map[string]interface{}{"lat": -32.9, "lng": 151.7},
		},
		"opening_hours": map[string]interface{}{
			"weekday_text": []interface{}{"Monday: 7am–2pm"},
		},
		// Поля вне allow-list
		"reviews": []interface{}{map[string]interface{}{"text": "great"}},
		"icon":    "https://maps.gstatic.com/icon.png",
	}

	place := MapDetails(domain.RawDetails{Schema: domain.SchemaLegacy, Payload: payload})

	assert.Equal(t, "legacy42", place.PlaceID)
	assert.Equal(t, "Old Town Bakery", place.DisplayName)
	assert.Equal(t, "(02) 1234 5678", place.NationalPhoneNumber)
	assert.Equal(t, "2 Heritage Ln, Newcastle NSW", place.FormattedAddress)
	assert.Equal(t, "https://oldtown.example", place.WebsiteURI)
	assert.Equal(t, "https://maps.google.com/?cid=42", place.ReviewsURI)
	require.NotNil(t, place.Latitude)
	require.NotNil(t, place.Longitude)
	assert.Equal(t, -32.9, *place.Latitude)
	assert.Equal(t, 151.7, *place.Longitude)
	require.Len(t, place.OpeningHours, 1)
	assert.Equal(t, "Monday", place.OpeningHours[0].Label)
	assert.Equal(t, "7am–2pm", place.OpeningHours[0].Hours)
}

func TestParseWeekdayLines(t *testing.T) {
	t.Run("splits on first separator only", func(t *testing.T) {
		periods := parseWeekdayLines([]interface{}{"Monday: 9am - 5pm: kitchen to 4pm"})

		require.Len(t, periods, 1)
		assert.Equal(t, "Monday", periods[0].Label)
		assert.Equal(t, "9am - 5pm: kitchen to 4pm", periods[0].Hours)
	})

	t.Run("line without separator keeps label only", func(t *testing.T) {
		periods := parseWeekdayLines([]interface{}{"Monday"})

		require.Len(t, periods, 1)
		assert.Equal(t, "Monday", periods[0].Label)
		assert.Equal(t, "", periods[0].Hours)
	})

	t.Run("empty input gives empty slice", func(t *testing.T) {
		assert.Empty(t, parseWeekdayLines([]interface{}{}))
	})

	t.Run("missing value gives empty slice", func(t *testing.T) {
		assert.Empty(t, parseWeekdayLines(nil))
	})

	t.Run("non-array value gives empty slice", func(t *testing.T) {
		assert.Empty(t, parseWeekdayLines("Monday: 9am-5pm"))
	})

	t.Run("non-string entries are skipped", func(t *testing.T) {
		periods := parseWeekdayLines([]interface{}{"Monday: 9am", 42.0, nil})

		assert.Len(t, periods, 1)
	})
}
