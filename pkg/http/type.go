package http

import (
	"net/http"
	"time"
)

// ClientConfig holds configuration for the HTTP client.
type ClientConfig struct {
	// Timeout of zero means no client side timeout; the caller's context governs.
	Timeout time.Duration
	// ProxyURL accepts http, https and socks5 schemes. Empty means direct.
	ProxyURL string
}

// clientImpl implements IClient.
type clientImpl struct {
	client *http.Client
	config ClientConfig
}
