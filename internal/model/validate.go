package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()

		// В ошибках используем имена из json тегов
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = validate.RegisterValidation("student_level", func(fl validator.FieldLevel) bool {
			return StudentLevel(fl.Field().String()).Valid()
		})
	})
	return validate
}

// Validate проверяет запись по validate-тегам и возвращает читаемую ошибку
func Validate(v interface{}) error {
	return describe(validatorInstance().Struct(v))
}

// ValidateFields проверяет только перечисленные поля (имена полей структуры).
// Без полей проверять нечего.
func ValidateFields(v interface{}, fields ...string) error {
	if len(fields) == 0 {
		return nil
	}
	return describe(validatorInstance().StructPartial(v, fields...))
}

func describe(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("invalid %s", strings.Join(parts, ", "))
}
