package clients

import (
	"net"
	"net/http"
	"time"
)

// DefaultTransport returns a configured HTTP transport with connection limits.
// Caps concurrent connections per host so a dead upstream cannot pile up
// goroutines waiting on new connections.
func DefaultTransport() *http.Transport {
	return &http.Transport{
		MaxConnsPerHost: 100,

		MaxIdleConnsPerHost: 10,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,

		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,

		TLSHandshakeTimeout: 10 * time.Second,

		ExpectContinueTimeout: 1 * time.Second,
	}
}

// DefaultHTTPClient returns a client using DefaultTransport. It carries no
// overall timeout: request lifetimes are bounded by the caller's context,
// or not at all.
func DefaultHTTPClient() *http.Client {
	return &http.Client{Transport: DefaultTransport()}
}
