package utils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/ttacon/libphonenumber"
)

func ValidatePhoneNumber(phoneNumber, countryCode string) error {
	p, err := libphonenumber.Parse(phoneNumber, countryCode)
	if err != nil {
		return err // Phone number is invalid
	}

	if !libphonenumber.IsValidNumber(p) {
		return fmt.Errorf("phone number is not valid")
	}

	return nil // Phone number is valid for the specified country code
}

func ProcessValidationErrors(err error) map[string]string {
	errorResponse := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errorResponse["error"] = err.Error()
		return errorResponse
	}

	for _, fieldErr := range validationErrors {
		switch fieldErr.Tag() {
		case "required":
			errorResponse[fieldErr.Field()] = fieldErr.Field() + " is required"
		case "email":
			errorResponse[fieldErr.Field()] = fieldErr.Field() + " must be a valid email"
		case "min":
			errorResponse[fieldErr.Field()] = fieldErr.Field() + " is too short"
		default:
			errorResponse[fieldErr.Field()] = fieldErr.Field() + " is invalid"
		}
	}
	return errorResponse
}
