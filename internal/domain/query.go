package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// WeatherQuery is a scoring request. Threshold is carried through to clients
// but does not influence scoring. A query is immutable once validated.
type WeatherQuery struct {
	Latitude   float64  `json:"lat" validate:"gte=-90,lte=90"`
	Longitude  float64  `json:"lng" validate:"gte=-180,lte=180"`
	Date       string   `json:"date" validate:"required,datetime=2006-01-02"`
	Threshold  int      `json:"threshold" validate:"gte=0,lte=100"`
	Conditions []string `json:"conditions" validate:"dive,condition"`
}

// ValidationError reports a request that failed validation. The transport
// boundary maps it to a 400 response carrying Message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// RegisterValidation only errors on an empty tag name.
	_ = v.RegisterValidation("condition", func(fl validator.FieldLevel) bool {
		return KnownCondition(fl.Field().String())
	})
	return v
}

// Validate checks the query and returns a *ValidationError describing the
// first failed check, in field order: latitude, longitude, date, threshold,
// then each condition keyword. Validation is all-or-nothing; no fetch or
// scoring work happens for an invalid query.
func (q WeatherQuery) Validate() error {
	err := validate.Struct(q)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Message: "invalid request"}
	}
	return &ValidationError{Message: messageFor(fieldErrs[0])}
}

func messageFor(fe validator.FieldError) string {
	field := fe.StructField()
	switch {
	case field == "Latitude":
		return "latitude must be between -90 and 90"
	case field == "Longitude":
		return "longitude must be between -180 and 180"
	case field == "Date":
		return "date must be a valid YYYY-MM-DD calendar date"
	case field == "Threshold":
		return "threshold must be between 0 and 100"
	case strings.HasPrefix(field, "Conditions"):
		return fmt.Sprintf("invalid condition: %v", fe.Value())
	}
	return fe.Error()
}
