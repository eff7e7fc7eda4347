package orders

import (
	"encoding/json"
	"reflect"
	"strings"

	apperrors "github.com/anonymous-sherlock/shopify-api/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field paths by json tag so error maps read like the payload:
	// shipping_address.address1, not ShippingAddress.Address1.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Parse unmarshals and validates a webhook body. Schema violations come back
// as a validation error carrying field path -> messages; malformed JSON is an
// unknown-class error, matching how the upstream service classified it.
func Parse(body []byte) (*Order, error) {
	var order Order
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, apperrors.Wrap(err, "invalid JSON payload: "+err.Error())
	}

	if err := validate.Struct(&order); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, apperrors.Wrap(err, "")
		}

		fields := make(map[string][]string, len(verrs))
		for _, fe := range verrs {
			path := fieldPath(fe)
			fields[path] = append(fields[path], fieldMessage(fe))
		}
		return nil, apperrors.NewValidation(fields)
	}

	return &order, nil
}

func fieldPath(fe validator.FieldError) string {
	// Namespace is "Order.shipping_address.address1"; drop the root struct.
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "min":
		return "must contain at least " + fe.Param() + " element(s)"
	default:
		return "Invalid value"
	}
}
