// Package response renders the wire format of the Teamed API. Every business
// outcome, success or failure, is a normal JSON body with a message field;
// payloads ride alongside under their legacy keys (user, users, leads).
package response

import (
	"github.com/labstack/echo/v4"
)

// Message renders a body holding only a message.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, echo.Map{"message": message})
}

// MessageWith renders a message body with one named payload field.
func MessageWith(c echo.Context, statusCode int, message, key string, value any) error {
	return c.JSON(statusCode, echo.Map{"message": message, key: value})
}

// Payload renders a body holding only the named payload field.
func Payload(c echo.Context, statusCode int, key string, value any) error {
	return c.JSON(statusCode, echo.Map{key: value})
}
