package utils

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"
)

// NewHTTPClient builds the client used for all outbound API calls.
// MusicBrainz and AcousticBrainz are rate-limited-by-convention services, so
// the timeout is kept short and configurable via HTTP_TIMEOUT_SECONDS.
func NewHTTPClient() *http.Client {
	timeout := 10 * time.Second
	if raw := os.Getenv("HTTP_TIMEOUT_SECONDS"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			log.Printf("⚠️  Invalid HTTP_TIMEOUT_SECONDS %q, keeping default %s", raw, timeout)
		} else {
			timeout = time.Duration(secs) * time.Second
		}
	}

	return &http.Client{Timeout: timeout}
}
