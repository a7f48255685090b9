package handlers

import (
	"math"
	"reflect"
	"sync"

	"github.com/SscSPs/shopdesk_erp/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// RegisterValidators adds the custom binding tags used by the request DTOs.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("currency", validateCurrency)
			_ = v.RegisterValidation("finite", validateFinite)
		}
	})
}

// validateCurrency accepts the supported currency codes, case-insensitively.
func validateCurrency(fl validator.FieldLevel) bool {
	_, ok := domain.ParseCurrency(fl.Field().String())
	return ok
}

// validateFinite rejects NaN and infinite numbers, which strconv accepts as query values.
func validateFinite(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return true
		}
		field = field.Elem()
	}
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		f := field.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return true
	}
}
