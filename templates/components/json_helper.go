package components

import (
	"encoding/json"

	"car_rental_app_go/logger"
)

// JSON marshals an object to a JSON string, returning "{}" on error
func JSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		logger.WithError(err).Warn("Error marshaling JSON")
		return "{}"
	}
	return string(b)
}
