package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/places-sync/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate - валидация структуры.
// Ошибки конвертируются в AppError с тегами нарушенных правил по полям,
// чтобы транспортный слой отдавал их как 400 с деталями.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	details := make(map[string]interface{})
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fieldErr := range verrs {
			details[fieldErr.Field()] = fieldErr.Tag()
		}
	}

	appErr := errors.New("INVALID_REQUEST", "Invalid request parameters", http.StatusBadRequest)
	return appErr.WithDetails(details)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
