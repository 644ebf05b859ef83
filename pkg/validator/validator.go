package validator

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("pricerange", validatePriceRange)
	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errs[field] = field + " is required"
			case "email":
				errs[field] = field + " must be a valid email address"
			case "min":
				errs[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errs[field] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				errs[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errs[field] = field + " must be less than or equal to " + e.Param()
			case "oneof":
				errs[field] = field + " must be one of: " + e.Param()
			case "pricerange":
				errs[field] = field + " must be a price like \"250\" or a range like \"200-300\" with min below max"
			default:
				errs[field] = field + " is invalid"
			}
		}
	}

	return errs
}

func validatePriceRange(fl validator.FieldLevel) bool {
	_, _, err := ParsePriceRange(fl.Field().String())
	return err == nil
}

var errInvalidPrice = errors.New("invalid price format")

// ParsePriceRange parses a catalog price string. A single value like
// "250" yields min == max; a range like "200-300" requires min < max.
func ParsePriceRange(s string) (decimal.Decimal, decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, decimal.Zero, errInvalidPrice
	}

	parts := strings.Split(s, "-")
	switch len(parts) {
	case 1:
		value, err := parsePrice(parts[0])
		if err != nil {
			return decimal.Zero, decimal.Zero, err
		}
		return value, value, nil
	case 2:
		minVal, err := parsePrice(parts[0])
		if err != nil {
			return decimal.Zero, decimal.Zero, err
		}
		maxVal, err := parsePrice(parts[1])
		if err != nil {
			return decimal.Zero, decimal.Zero, err
		}
		if minVal.GreaterThanOrEqual(maxVal) {
			return decimal.Zero, decimal.Zero, errInvalidPrice
		}
		return minVal, maxVal, nil
	default:
		return decimal.Zero, decimal.Zero, errInvalidPrice
	}
}

func parsePrice(s string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, errInvalidPrice
	}
	if value.IsNegative() {
		return decimal.Zero, errInvalidPrice
	}
	return value, nil
}
