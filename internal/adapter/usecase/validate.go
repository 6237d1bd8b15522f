package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"stellar-ads/internal/core/port"
)

// check validates a request struct and converts validator errors into a
// port.ValidationError keyed by field name.
func (u *AdUseCase) check(req any) error {
	err := u.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", port.ErrValidation, err)
	}
	out := &port.ValidationError{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		out.Fields[jsonName(fe.Field())] = describe(fe)
	}
	return out
}

// jsonName maps a Go field name to the camelCase name clients send,
// e.g. SiteID to siteId and ImageURL to imageUrl.
func jsonName(field string) string {
	for _, acr := range []string{"ID", "URL"} {
		if strings.HasSuffix(field, acr) {
			field = strings.TrimSuffix(field, acr) + acr[:1] + strings.ToLower(acr[1:])
		}
	}
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return "must be at most " + fe.Param() + " long"
	case "url":
		return "must be a valid URL"
	case "fqdn":
		return "must be a domain name"
	case "stellar_address":
		return "must be a valid Stellar account address"
	default:
		return "failed on " + fe.Tag()
	}
}

var one = decimal.NewFromInt(1)

// checkShare validates a revenue share in [0,1].
func checkShare(share decimal.Decimal) error {
	if share.IsNegative() || share.GreaterThan(one) {
		return port.NewValidationError("revenueShare", "must be between 0 and 1")
	}
	return nil
}
