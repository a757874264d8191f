package http

import "errors"

var (
	// ErrRequestFailed marks failures below the HTTP status level: dial, TLS, DNS, timeouts, cancellation.
	ErrRequestFailed = errors.New("http: request failed")
	// ErrUnsupportedProxy is returned for proxy URLs that are not http, https or socks5.
	ErrUnsupportedProxy = errors.New("http: unsupported proxy scheme")
)
