package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/cmlabs-hris/hrms-lite-go/internal/pkg/validator"
)

const (
	msgJSONDecode    = "JSON decode error"
	msgNotObject     = "Input should be a valid dictionary"
	msgFieldRequired = "Field required"
	msgNotString     = "Input should be a valid string"
)

type validatable interface {
	Validate() error
}

// bodyField is a required string field of a request body. An enum field
// leaves non-string values to dst.Validate, which reports the allowed set.
type bodyField struct {
	Name string
	Enum bool
}

// decodeRequest reads a single JSON object with the given fields into dst
// and validates it. Failures come back as validator.ValidationErrors in
// field order, one per field: a missing or mistyped field is reported
// instead of whatever dst.Validate says about its zero value.
func decodeRequest(r *http.Request, fields []bodyField, dst validatable) error {
	dec := json.NewDecoder(r.Body)

	var raw map[string]json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return validator.ValidationErrors{{Message: msgNotObject}}
		}
		return validator.ValidationErrors{{Message: msgJSONDecode}}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return validator.ValidationErrors{{Message: msgJSONDecode}}
	}
	if raw == nil {
		return validator.ValidationErrors{{Message: msgNotObject}}
	}

	shapeErrs := make(map[string]string)
	known := make(map[string]json.RawMessage, len(fields))
	for _, field := range fields {
		value, ok := raw[field.Name]
		switch {
		case !ok:
			shapeErrs[field.Name] = msgFieldRequired
		case !isJSONString(value):
			if !field.Enum {
				shapeErrs[field.Name] = msgNotString
			}
		default:
			known[field.Name] = value
		}
	}

	body, err := json.Marshal(known)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return err
	}

	var fieldErrs validator.ValidationErrors
	if err := dst.Validate(); err != nil && !errors.As(err, &fieldErrs) {
		return err
	}

	var errs validator.ValidationErrors
	for _, field := range fields {
		if msg, ok := shapeErrs[field.Name]; ok {
			errs = append(errs, validator.ValidationError{Field: field.Name, Message: msg})
			continue
		}
		for _, fe := range fieldErrs {
			if fe.Field == field.Name {
				errs = append(errs, fe)
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func isJSONString(value json.RawMessage) bool {
	trimmed := bytes.TrimSpace(value)
	return len(trimmed) > 0 && trimmed[0] == '"'
}
