package http

import "context"

// IClient defines the interface for a single-shot JSON HTTP client.
// Implementations are safe for concurrent use.
type IClient interface {
	// Post sends body as JSON and returns the raw response body and status code.
	// A non-2xx status is not an error. Network level failures wrap ErrRequestFailed.
	Post(ctx context.Context, url string, body any, headers map[string]string) ([]byte, int, error)
}

// NewClient creates a new HTTP client. Returns the interface.
func NewClient(cfg ClientConfig) (IClient, error) {
	client, err := newHTTPClient(cfg)
	if err != nil {
		return nil, err
	}
	return &clientImpl{
		client: client,
		config: cfg,
	}, nil
}
