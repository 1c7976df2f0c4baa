package errors

import "fmt"

// UserMessage returns a short description of err suitable for display.
// Errors outside the network taxonomy get a generic message.
func UserMessage(err error) string {
	switch KindOf(err) {
	case KindInvalidURL:
		return "The recipe source address is not valid."
	case KindInvalidResponse:
		return "The recipe source could not be reached."
	case KindServerError:
		return fmt.Sprintf("The recipe source returned an error (%d).", StatusCodeOf(err))
	case KindDecoding:
		return "The recipe data could not be read."
	}
	if err == nil {
		return ""
	}
	return "Something went wrong."
}
