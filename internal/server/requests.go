package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// QueryRecommendRequest holds the parameters of GET /recommend/query
type QueryRecommendRequest struct {
	Query string `validate:"required"`
	N     int    `validate:"min=1,max=100"`
}

// ContentRecommendRequest holds the parameters of GET /recommend/content/{id}
type ContentRecommendRequest struct {
	ID string `validate:"required"`
	N  int    `validate:"min=1,max=100"`
}

// SampleRequest holds the parameters of GET /listings/sample
type SampleRequest struct {
	N int `validate:"min=0,max=100"`
}

// SkillsRequest holds the parameters of GET /skills
type SkillsRequest struct {
	Raw string `validate:"required"`
}

// describeValidation turns a validator field error into a client-facing message.
func describeValidation(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Missing required parameter: %s", field)
	case "min":
		return fmt.Sprintf("Parameter %s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("Parameter %s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("Invalid parameter: %s", field)
	}
}

// parseQueryInt reads an integer query parameter. It returns defaultValue when
// the parameter is absent and false when it is present but not an integer.
func parseQueryInt(r *http.Request, key string, defaultValue int) (int, bool) {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue, true
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, false
	}
	return val, true
}
