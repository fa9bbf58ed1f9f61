package util

import (
	"net/http"
	"time"
)

const UserAgent = "unreddit-bot/1.0"

var httpSession = &http.Client{
	Timeout: 20 * time.Second,
}

// GetHTTPSession returns the shared client. Loaders hold it by reference
// so delegation reuses the same connection pool.
func GetHTTPSession() *http.Client {
	return httpSession
}
