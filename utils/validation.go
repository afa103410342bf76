package utils

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(fmt.Sprintf("%s is required", fieldName))
	}
	return nil
}

// ValidatePositive checks if a number is positive
func ValidatePositive(value float64, fieldName string) error {
	if value <= 0 {
		return NewValidationError(fmt.Sprintf("%s must be positive", fieldName))
	}
	return nil
}

// ValidateNonNegative checks if a number is non-negative
func ValidateNonNegative(value float64, fieldName string) error {
	if value < 0 {
		return NewValidationError(fmt.Sprintf("%s cannot be negative", fieldName))
	}
	return nil
}

// ValidateDriverType checks if a driver type is one of the known values
func ValidateDriverType(driverType string) error {
	if driverType != DriverTypeAffiliate && driverType != DriverTypeRenter {
		return NewValidationError(fmt.Sprintf("driver type must be %q or %q", DriverTypeAffiliate, DriverTypeRenter))
	}
	return nil
}

// ValidateFinancingType checks if a financing type is one of the known values
func ValidateFinancingType(financingType string) error {
	if financingType != FinancingTypeLoan && financingType != FinancingTypeDiscount {
		return NewValidationError(fmt.Sprintf("financing type must be %q or %q", FinancingTypeLoan, FinancingTypeDiscount))
	}
	return nil
}
