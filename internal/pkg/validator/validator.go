package validator

import (
	stderrors "errors"

	"github.com/go-playground/validator/v10"

	"github.com/routing-gateway/internal/pkg/errors"
)

var validate *validator.Validate

// enumValue - перечисления домена (режим, опции маршрута)
type enumValue interface {
	IsValid() bool
}

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("enum", validateEnum)
}

// validateEnum - тег enum: значение должно реализовать IsValid и быть допустимым
func validateEnum(fl validator.FieldLevel) bool {
	v, ok := fl.Field().Interface().(enumValue)
	return ok && v.IsValid()
}

// Validate - валидация структуры. Ошибки валидации возвращаются как INVALID_REQUEST
// с перечнем полей в деталях.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !stderrors.As(err, &validationErrs) {
		return err
	}

	fields := make(map[string]interface{}, len(validationErrs))
	for _, fe := range validationErrs {
		fields[fe.Namespace()] = fe.Tag()
	}

	return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"fields": fields})
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
