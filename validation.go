// validation.go
package ecommerce

import (
	"fmt"
	"strings"
)

func validateUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: empty user name", ErrInvalidInput)
	}
	return nil
}

func validateCountry(c Country) error {
	if strings.TrimSpace(string(c)) == "" {
		return fmt.Errorf("%w: empty country code", ErrInvalidValue)
	}
	return nil
}

func validateLanguage(l Language) error {
	if strings.TrimSpace(string(l)) == "" {
		return fmt.Errorf("%w: empty language code", ErrInvalidValue)
	}
	return nil
}
