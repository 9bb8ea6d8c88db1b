package create_booking

import (
	"errors"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/m04kA/VenueBookingService/pkg/ptr"
)

var contactValidator = playground.New()

// contactFieldNames имена полей в ответе API
var contactFieldNames = map[string]string{
	"FullName":        "fullName",
	"Email":           "email",
	"Phone":           "phone",
	"CompanyName":     "companyName",
	"PaymentPlan":     "paymentPlan",
	"MealFormat":      "services.mealFormat",
	"TransferSlipURL": "transferSlipUrl",
	"Notes":           "notes",
	"AgreedToRules":   "agreedToRules",
}

// normalizeContact убирает пробелы по краям контактных полей
func normalizeContact(req *Request) {
	req.Contact.FullName = strings.TrimSpace(req.Contact.FullName)
	req.Contact.Email = strings.TrimSpace(req.Contact.Email)
	req.Contact.Phone = strings.TrimSpace(req.Contact.Phone)

	if req.Contact.CompanyName != nil {
		company := strings.TrimSpace(*req.Contact.CompanyName)
		if company == "" {
			req.Contact.CompanyName = nil
		} else {
			req.Contact.CompanyName = &company
		}
	}
}

// validateContact проверяет контактные данные, вариант оплаты, формат питания и согласие с правилами
func validateContact(req *Request) ([]FieldError, error) {
	input := contactInput{
		FullName:        req.Contact.FullName,
		Email:           req.Contact.Email,
		Phone:           req.Contact.Phone,
		CompanyName:     ptr.Deref(req.Contact.CompanyName),
		PaymentPlan:     string(req.PaymentPlan),
		MealFormat:      string(req.Services.MealFormat),
		TransferSlipURL: ptr.Deref(req.TransferSlipURL),
		Notes:           ptr.Deref(req.Notes),
		AgreedToRules:   req.AgreedToRules,
	}

	err := contactValidator.Struct(input)
	if err == nil {
		return nil, nil
	}

	var validationErrs playground.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil, err
	}

	fields := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		name, ok := contactFieldNames[fe.StructField()]
		if !ok {
			name = fe.StructField()
		}
		fields = append(fields, FieldError{Field: name, Rule: fe.Tag()})
	}

	return fields, nil
}
