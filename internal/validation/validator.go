package validation

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"investment-dashboard/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("month", validateMonth)
	_ = v.RegisterValidation("tier", validateTier)
	_ = v.RegisterValidation("chart_kind", validateChartKind)
	_ = v.RegisterValidation("date_system", validateDateSystem)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct and flattens the failures into readable messages
func (v *Validator) Struct(s interface{}) []string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, FormatFieldError(fe))
	}
	return messages
}

// FormatFieldError renders a single field failure as "field: reason"
func FormatFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + ": is required"
	case "month":
		return field + ": must be a month in YYYY-MM format"
	case "tier":
		return field + ": must be one of Bronze, Prata, Ouro"
	case "chart_kind":
		return field + ": unknown chart"
	case "date_system":
		return field + ": must be epoch1900 or excel1900"
	case "max":
		return field + ": must be at most " + fe.Param() + " characters"
	default:
		return field + ": failed " + fe.Tag() + " validation"
	}
}

// Custom validation functions

// validateMonth accepts a calendar month written as YYYY-MM
func validateMonth(fl validator.FieldLevel) bool {
	month := fl.Field().String()
	if len(month) != len(models.MonthLayout) {
		return false
	}
	_, err := time.Parse(models.MonthLayout, month)
	return err == nil
}

func validateTier(fl validator.FieldLevel) bool {
	return models.Tier(fl.Field().String()).IsValid()
}

func validateChartKind(fl validator.FieldLevel) bool {
	return models.ChartKind(fl.Field().String()).IsValid()
}

func validateDateSystem(fl validator.FieldLevel) bool {
	_, err := models.ParseDateSystem(fl.Field().String())
	return err == nil
}
