package req

import (
	"encoding/json"
	"fmt"
	"io"

	validator "github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Decode читает JSON тело запроса в структуру T и валидирует её по тегам validate.
// Числовые поля типа any декодируются как json.Number, а не float64
func Decode[T any](body io.Reader) (T, error) {
	var payload T

	dec := json.NewDecoder(body)
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return payload, fmt.Errorf("decode request body: %w", err)
	}

	if err := validate.Struct(payload); err != nil {
		return payload, fmt.Errorf("validate request body: %w", err)
	}

	return payload, nil
}
