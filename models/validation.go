package models

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"golang.org/x/text/unicode/norm"
)

// ErrValidation matches every *ValidationError.
var ErrValidation = errors.New("validation failed")

// ValidationError reports malformed or incomplete input to a Create factory.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json names so messages line up with request bodies.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decode fills out from an untyped field map and validates the result.
// Every tagged field must be present and non-null, types are not coerced,
// and unknown keys are rejected.
func decode(fields map[string]any, out any) error {
	present := make(map[string]any, len(fields))
	var nulls []string
	for key, v := range fields {
		if v == nil {
			nulls = append(nulls, key)
			continue
		}
		present[key] = v
	}

	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:   out,
		TagName:  "json",
		Metadata: &md,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			checkTypes,
			normalizeStrings,
			checkIntegers,
			parseTimestamps,
		),
	})
	if err != nil {
		return fmt.Errorf("build decoder: %w", err)
	}
	if err := dec.Decode(present); err != nil {
		return decodeFailure(err)
	}

	unset := make(map[string]bool, len(md.Unset))
	for _, name := range md.Unset {
		unset[name] = true
	}
	unknown := append([]string(nil), md.Unused...)
	for _, key := range nulls {
		if !unset[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return &ValidationError{Field: unknown[0], Message: unknown[0] + " is not a known field"}
	}
	if len(md.Unset) > 0 {
		sort.Strings(md.Unset)
		return &ValidationError{Field: md.Unset[0], Message: md.Unset[0] + " is required"}
	}
	return check(out)
}

func check(record any) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}
	fe := fieldErrs[0]
	return &ValidationError{Field: fe.Field(), Message: describe(fe)}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
}

// fieldError is returned by the decode hooks. The decoder prefixes it with
// the quoted field name.
type fieldError struct {
	problem string
}

func (e *fieldError) Error() string { return e.problem }

var fieldName = regexp.MustCompile(`^'([^']*)'`)

// decodeFailure turns the first decoder error into a ValidationError naming
// the field.
func decodeFailure(err error) error {
	cause := firstCause(err)
	field := ""
	var named interface{ Name() string }
	if errors.As(cause, &named) {
		field = named.Name()
	} else if m := fieldName.FindStringSubmatch(cause.Error()); m != nil {
		field = m[1]
	}

	var fe *fieldError
	switch {
	case errors.As(cause, &fe) && field != "":
		return &ValidationError{Field: field, Message: field + " " + fe.problem}
	case field != "":
		return &ValidationError{Field: field, Message: field + " is invalid"}
	default:
		return &ValidationError{Message: "invalid input"}
	}
}

// firstCause descends through joined errors to the first per-field error.
func firstCause(err error) error {
	for {
		if fieldName.MatchString(err.Error()) {
			return err
		}
		switch u := err.(type) {
		case interface{ Unwrap() []error }:
			errs := u.Unwrap()
			if len(errs) == 0 {
				return err
			}
			err = errs[0]
		case interface{ Unwrap() error }:
			next := u.Unwrap()
			if next == nil {
				return err
			}
			err = next
		default:
			return err
		}
	}
}

var timeType = reflect.TypeOf(time.Time{})

// checkTypes rejects JSON values whose type does not match the field.
func checkTypes(from, to reflect.Type, data any) (any, error) {
	switch {
	case to == timeType:
		if _, ok := data.(string); !ok {
			return nil, &fieldError{"must be an RFC 3339 timestamp"}
		}
	case to.Kind() == reflect.String:
		if _, ok := data.(string); !ok {
			return nil, &fieldError{"must be a string"}
		}
	case to.Kind() == reflect.Int:
		switch data.(type) {
		case float64, int, int64:
		default:
			return nil, &fieldError{"must be an integer"}
		}
	}
	return data, nil
}

func normalizeStrings(from, to reflect.Type, data any) (any, error) {
	s, ok := data.(string)
	if !ok || to.Kind() != reflect.String {
		return data, nil
	}
	return norm.NFC.String(s), nil
}

func checkIntegers(from, to reflect.Type, data any) (any, error) {
	f, ok := data.(float64)
	if !ok || to.Kind() != reflect.Int {
		return data, nil
	}
	if f != math.Trunc(f) {
		return nil, &fieldError{"must be an integer"}
	}
	if f < math.MinInt || f >= -math.MinInt {
		return nil, &fieldError{"is out of range"}
	}
	return int(f), nil
}

func parseTimestamps(from, to reflect.Type, data any) (any, error) {
	s, ok := data.(string)
	if !ok || to != timeType {
		return data, nil
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, &fieldError{"must be an RFC 3339 timestamp"}
	}
	return ts, nil
}
