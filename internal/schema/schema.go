// Package schema validates untrusted JSON request bodies against the input
// shapes accepted by the API and reports every offending field.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrMalformedBody is returned when the body is not syntactically valid JSON
var ErrMalformedBody = errors.New("malformed JSON body")

// Issue describes a single field that failed validation
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every field that failed validation
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// IsValidationError reports whether err carries field issues and returns them
func IsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	return v
}

// Decode decodes body into dst, which must be a pointer to one of the input
// shapes. Fields are matched by their json tag; unknown keys are ignored.
// Pointer fields are nullable and may be omitted, all others are required.
func Decode(body []byte, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("schema: destination must be a pointer to a struct, got %T", dst)
	}

	raw, err := decodeObject(body)
	if err != nil {
		return err
	}

	target := rv.Elem()
	rt := target.Type()
	var issues []indexedIssue
	failed := make(map[string]bool)

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		name := jsonName(sf)
		if name == "" || !sf.IsExported() {
			continue
		}

		if msg := decodeField(raw, name, target.Field(i)); msg != "" {
			issues = append(issues, indexedIssue{index: i, Issue: Issue{Field: name, Message: msg}})
			failed[name] = true
		}
	}

	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("schema: %w", err)
		}
		for _, fe := range fieldErrs {
			if failed[fe.Field()] {
				continue
			}
			sf, _ := rt.FieldByName(fe.StructField())
			issues = append(issues, indexedIssue{index: sf.Index[0], Issue: Issue{Field: fe.Field(), Message: constraintMessage(fe)}})
		}
	}

	if len(issues) == 0 {
		return nil
	}

	sort.SliceStable(issues, func(a, b int) bool { return issues[a].index < issues[b].index })
	out := make([]Issue, len(issues))
	for i, issue := range issues {
		out[i] = issue.Issue
	}
	return &ValidationError{Issues: out}
}

type indexedIssue struct {
	index int
	Issue
}

func decodeObject(body []byte) (map[string]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return map[string]json.RawMessage{}, nil
	}
	if !json.Valid(trimmed) {
		return nil, ErrMalformedBody
	}
	if kind := rawKind(trimmed); kind != "object" {
		return nil, &ValidationError{Issues: []Issue{{Field: "", Message: "Expected object, received " + kind}}}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, ErrMalformedBody
	}
	return raw, nil
}

// decodeField sets field from raw[name] and returns an issue message on failure
func decodeField(raw map[string]json.RawMessage, name string, field reflect.Value) string {
	value, present := raw[name]
	nullable := field.Kind() == reflect.Pointer
	kind := "undefined"
	if present {
		kind = rawKind(value)
	}

	if kind == "undefined" || kind == "null" {
		if nullable {
			field.Set(reflect.Zero(field.Type()))
			return ""
		}
		if kind == "undefined" {
			return "Required"
		}
	}

	dst := field
	if nullable {
		dst = reflect.New(field.Type().Elem()).Elem()
	}

	if msg := decodeScalar(value, kind, dst); msg != "" {
		return msg
	}

	if nullable {
		ptr := reflect.New(dst.Type())
		ptr.Elem().Set(dst)
		field.Set(ptr)
	}
	return ""
}

func decodeScalar(value json.RawMessage, kind string, dst reflect.Value) string {
	switch dst.Kind() {
	case reflect.String:
		if kind != "string" {
			return "Expected string, received " + kind
		}
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return "Expected string, received " + kind
		}
		dst.SetString(s)
		return ""

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if kind != "number" {
			return "Expected number, received " + kind
		}
		f, err := strconv.ParseFloat(string(value), 64)
		if err != nil {
			return "Expected number, received " + kind
		}
		if f != math.Trunc(f) {
			return "Expected integer, received float"
		}
		if math.Abs(f) > 1<<53 || dst.OverflowInt(int64(f)) {
			return "Number must be a safe integer"
		}
		dst.SetInt(int64(f))
		return ""

	default:
		return fmt.Sprintf("Unsupported field type %s", dst.Kind())
	}
}

// rawKind names the JSON kind of a raw value the way the error messages do
func rawKind(value json.RawMessage) string {
	trimmed := bytes.TrimSpace(value)
	if len(trimmed) == 0 {
		return "undefined"
	}
	switch trimmed[0] {
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

func jsonName(sf reflect.StructField) string {
	tag := sf.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return sf.Name
	}
	return name
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min", "gte":
		return "Number must be greater than or equal to " + fe.Param()
	case "max", "lte":
		return "Number must be less than or equal to " + fe.Param()
	case "required":
		return "Required"
	default:
		return fmt.Sprintf("Failed %s constraint", fe.Tag())
	}
}
