package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/rental-blocklist/models"
)

// mapHTTPError returns nil for 2xx responses and an *APIError otherwise.
// JSON error bodies are decoded; anything else is kept as the message.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{Status: resp.StatusCode()}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		apiErr.Code = body.Code
		apiErr.Message = body.Error
		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(resp.Body()))
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode())
	}

	return apiErr
}
