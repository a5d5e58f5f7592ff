package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so the adapter can use its full API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client rooted at baseURL that sends and expects
// JSON. A zero timeout leaves resty's default in place.
//
//	client := utils.NewHTTPClient("http://localhost:8080", 10*time.Second)
//	resp, err := client.R().Get("/api/version")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
