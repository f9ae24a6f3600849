package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

func FormatValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, fieldError := range validationErrors {
			messages = append(messages, getFieldErrorMessage(fieldError))
		}
		return strings.Join(messages, "; ")
	}
	return err.Error()
}

func getFieldErrorMessage(fe validator.FieldError) string {
	field := getFieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "max":
		if fe.Type().String() == "string" {
			return fmt.Sprintf("%s must be less than %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "min":
		if fe.Type().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func getFieldName(field string) string {
	fieldNames := map[string]string{
		"Title":         "Title",
		"Description":   "Description",
		"Date":          "Date",
		"Location":      "Location",
		"Category":      "Category",
		"Image":         "Image",
		"Capacity":      "Capacity",
		"EventID":       "Event ID",
		"TicketID":      "Ticket ID",
		"CollegeName":   "College name",
		"Degree":        "Degree",
		"YearOfPassing": "Year of passing",
		"Agenda":        "Agenda",
		"Action":        "Action",
	}

	if name, ok := fieldNames[field]; ok {
		return name
	}
	return field
}
