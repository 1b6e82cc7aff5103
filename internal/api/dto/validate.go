package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/spec-kit/socialdev/pkg/util"
)

const validationFailed = "Validation failed"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Postgres text columns cannot store NUL.
	_ = v.RegisterValidation("nonul", func(fl validator.FieldLevel) bool {
		return !strings.ContainsRune(fl.Field().String(), 0)
	})
	return v
}

// fieldMessages maps a json field and a failing tag to the client message.
var fieldMessages = map[string]map[string]string{
	"email": {
		"required": "El email es requerido",
		"email":    "El email debe ser válido",
		"type":     "El email debe ser válido",
	},
	"password": {
		"required": "La contraseña es requerida",
		"min":      "La contraseña debe tener al menos 6 caracteres",
		"type":     "La contraseña debe ser un texto",
	},
	"content": {
		"required": "El contenido es requerido",
		"min":      "El contenido debe tener al menos 1 carácter",
		"max":      "El contenido no puede exceder 500 caracteres",
		"nonul":    "El contenido no puede contener caracteres nulos",
		"type":     "El contenido debe ser un texto",
	},
}

func messageFor(field, tag string) string {
	if msgs, ok := fieldMessages[field]; ok {
		if msg, ok := msgs[tag]; ok {
			return msg
		}
	}
	return fmt.Sprintf("%s is invalid", field)
}

// Decode strictly parses body into dst and validates it. Unknown properties,
// wrongly typed values and rule violations are all validation errors.
func Decode(body []byte, dst any) error {
	if len(bytes.TrimSpace(body)) > 0 {
		dec := json.NewDecoder(bytes.NewReader(body))
		dec.DisallowUnknownFields()
		if err := dec.Decode(dst); err != nil {
			return decodeError(err)
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return apperrors.NewValidationError("Invalid JSON payload")
		}
	}
	return Struct(dst)
}

// Struct runs the validation rules declared on s.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewInternalError(err)
	}
	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, messageFor(fe.Field(), fe.Tag()))
	}
	return apperrors.NewValidationError(validationFailed, messages...)
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apperrors.NewValidationError(validationFailed, messageFor(typeErr.Field, "type"))
	}
	if field, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
		return apperrors.NewValidationError(validationFailed,
			fmt.Sprintf("property %s should not exist", strings.Trim(field, `"`)))
	}
	return apperrors.NewValidationError("Invalid JSON payload")
}
