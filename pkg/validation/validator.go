package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dd0wney/cluso-routerank/pkg/routes"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// MaxRankingLimit caps top-N requests
	MaxRankingLimit = 1000
)

// ErrInvalidAirportCode is returned for malformed airport identifiers
var ErrInvalidAirportCode = errors.New("invalid airport code")

func init() {
	validate = validator.New()
	validate.RegisterValidation("airport", func(fl validator.FieldLevel) bool {
		return routes.CheckIdentifier(fl.Field().String()) == nil
	})
}

// AirportRequest identifies one airport
type AirportRequest struct {
	Code string `json:"code" validate:"required,airport"`
}

// RankingRequest asks for the top airports under one measure
type RankingRequest struct {
	Measure string `json:"measure" validate:"required,oneof=degree closeness betweenness eigenvector"`
	Limit   int    `json:"limit" validate:"min=0,max=1000"`
}

// Struct validates any value carrying validate tags
func Struct(v any) error {
	if v == nil {
		return errors.New("value cannot be nil")
	}
	return formatValidationError(validate.Struct(v))
}

// ValidateAirportCode checks an airport identifier with the rule ingest
// applies (routes.CheckIdentifier), so every airport in a graph passes. It
// says nothing about whether the airport exists.
func ValidateAirportCode(code string) error {
	if err := routes.CheckIdentifier(code); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidAirportCode, code, err)
	}
	return nil
}

// ValidateRankingRequest validates a top-N request, normalizing the measure name
func ValidateRankingRequest(req *RankingRequest) error {
	if req == nil {
		return errors.New("ranking request cannot be nil")
	}
	req.Measure = strings.ToLower(strings.TrimSpace(req.Measure))
	return Struct(req)
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Field()
		param := e.Param()

		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min", "gte":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max", "lte":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "oneof":
			return fmt.Errorf("%s: must be one of [%s]", field, param)
		case "airport":
			return fmt.Errorf("%s: %w", field, ErrInvalidAirportCode)
		case "dive":
			return fmt.Errorf("%s: invalid element in array", field)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}

	return err
}
