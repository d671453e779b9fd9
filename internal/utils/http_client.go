package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// RequestIDHeader is set on every outgoing request.
const RequestIDHeader = "X-Request-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Every request carries an X-Request-ID header: the id stored in the request
// context by [WithRequestID], or a freshly generated UUID.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://drive.example.com", time.Minute)
//	resp, err := client.R().SetContext(ctx).Get("/api/pubkey")
type HTTPClient struct {
	*resty.Client

	ids *UUIDGenerator
}

// NewHTTPClient creates an independent client rooted at baseURL. A
// non-positive timeout leaves resty's default (none) in place.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := &HTTPClient{Client: resty.New(), ids: NewUUIDGenerator()}

	c.SetBaseURL(baseURL)
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	c.OnBeforeRequest(c.setRequestID)

	return c
}

func (c *HTTPClient) setRequestID(_ *resty.Client, r *resty.Request) error {
	if r.Header.Get(RequestIDHeader) != "" {
		return nil
	}

	id, ok := GetRequestIDFromContext(r.Context())
	if !ok {
		id = c.ids.Generate()
	}
	r.SetHeader(RequestIDHeader, id)
	return nil
}
