package api

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"
	"sync"

	dto "guru-mess-api/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var fieldNamesOnce sync.Once

// useJSONFieldNames makes validator report fields by their JSON name
// ("message") instead of the Go field name ("Message").
func useJSONFieldNames() {
	fieldNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindErrorResponse turns a ShouldBindJSON error into a 400 body listing the
// offending fields where they are known.
func bindErrorResponse(err error) any {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]dto.FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			details = append(details, dto.FieldError{Field: fe.Field(), Reason: fe.Tag()})
		}
		return dto.ValidationErrorResponse{Error: "validation failed", Details: details}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return dto.ValidationErrorResponse{
			Error: "validation failed",
			Details: []dto.FieldError{{
				Field:  typeErr.Field,
				Reason: "expected " + typeErr.Type.String(),
			}},
		}
	}

	if errors.Is(err, io.EOF) {
		return gin.H{"error": "request body is empty"}
	}
	return gin.H{"error": err.Error()}
}
