// Package handlers wires the HTTP surface: public catalog, blog, rates
// and checkout endpoints plus the cookie-gated admin CRUD screens.
package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// fieldErrors turns validator output into a field -> message map for 400
// responses.
func fieldErrors(err error) map[string]string {
	messages := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			messages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	}
	return messages
}
