package server

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var currencyPairRe = regexp.MustCompile(`^[A-Z]{3}/[A-Z]{3}$`)

var registerOnce sync.Once

// registerValidations hooks the custom rules into gin's binding validator.
// Field names in validation errors follow the json tag so the error
// envelope speaks the client's vocabulary.
func registerValidations() {
	registerOnce.Do(func() {
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
		_ = v.RegisterValidation("currency_pair", func(fl validator.FieldLevel) bool {
			return currencyPairRe.MatchString(fl.Field().String())
		})
	})
}

// bindingFieldErrors turns validator failures into the per-field message
// map of the error envelope. Returns nil when err is not a validation
// failure (e.g. malformed JSON).
func bindingFieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe.Field(), fe.Tag())
	}
	return fields
}

func fieldMessage(field, tag string) string {
	switch field {
	case "currencyPair":
		if tag == "required" {
			return "Currency pair is required"
		}
		return "Currency pair must be in format XXX/YYY (e.g., EUR/USD)"
	case "side":
		if tag == "required" {
			return "Side is required"
		}
		return "Side must be BUY or SELL"
	case "amount":
		return "Amount is required"
	case "quoteId":
		if tag == "required" {
			return "Quote ID is required"
		}
		return "Quote ID must be a valid UUID"
	}
	return "Invalid value"
}

// amountLimit is 10^15, the smallest value with more than 15 integer digits.
var amountLimit = decimal.New(1, 15)

// minAmount is the smallest bookable amount.
var minAmount = decimal.New(1, -4)

// validateAmount applies the numeric rules binding tags cannot express:
// minimum 0.0001, at most 15 integer digits and 4 fractional digits.
func validateAmount(amount decimal.Decimal) (string, bool) {
	if amount.LessThan(minAmount) {
		return "Amount must be greater than 0", false
	}
	if amount.Abs().GreaterThanOrEqual(amountLimit) || !amount.Equal(amount.Truncate(4)) {
		return "Amount must have at most 15 integer digits and 4 decimal places", false
	}
	return "", true
}
