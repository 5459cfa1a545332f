package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/dtroode/account-service/internal/apierror"
)

var phonePattern = regexp.MustCompile(`^[\d\s\-()+]{10,}$`)

const (
	minNameLen = 2
	maxNameLen = 50
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		_ = validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})
		// Names are stored trimmed, so the length rule applies to the trimmed value.
		_ = validate.RegisterValidation("displayname", func(fl validator.FieldLevel) bool {
			n := utf8.RuneCountInString(strings.TrimSpace(fl.Field().String()))
			return n >= minNameLen && n <= maxNameLen
		})
		_ = validate.RegisterValidation("pastdate", func(fl validator.FieldLevel) bool {
			d, err := time.Parse(dateLayout, fl.Field().String())
			return err == nil && d.Before(time.Now())
		})
	})
	return validate
}

// bindJSON decodes the request body into dst, rejecting unknown fields, and validates it.
func bindJSON(c *gin.Context, dst any) error {
	if err := decodeJSON(c.Request.Body, dst); err != nil {
		return err
	}
	return validateStruct(dst)
}

func decodeJSON(body io.Reader, dst any) error {
	if body == nil {
		return apierror.NewErrValidation("request body is required")
	}

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err == nil {
		return nil
	}

	var maxBytesErr *http.MaxBytesError
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return apierror.NewErrValidation("request body is required")
	case errors.As(err, &maxBytesErr):
		return apierror.NewErrPayloadTooLarge(maxBytesErr.Limit)
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return apierror.NewErrValidation("request body is not valid JSON")
	case errors.As(err, &typeErr):
		return apierror.NewErrValidation(typeErr.Field + ": has invalid type")
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		return apierror.NewErrValidation(strings.TrimPrefix(err.Error(), "json: ") + " is not allowed")
	default:
		return apierror.NewErrValidation("request body is not valid JSON")
	}
}

func validateStruct(s any) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apierror.NewErrValidation("validation failed")
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fieldPath(fe)+": "+formatFieldError(fe))
	}
	return apierror.NewErrValidation(strings.Join(messages, "; "))
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.Slice {
			return "must have at least " + fe.Param() + " items"
		}
		return "must be at least " + fe.Param() + " characters"
	case "max":
		if fe.Kind() == reflect.Slice {
			return "must have at most " + fe.Param() + " items"
		}
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "uuid":
		return "must be a valid id"
	case "phone":
		return "must be a valid phone number"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "pastdate":
		return "must be a date in the past"
	case "displayname":
		return fmt.Sprintf("must be between %d and %d characters", minNameLen, maxNameLen)
	default:
		return "is invalid"
	}
}
