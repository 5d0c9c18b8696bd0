package clients

import (
	"net/http"
	"strings"
	"time"
)

type HTTP struct {
	base string
	c    *http.Client
}

// New returns a client bound to the analysis backend at base,
// e.g. "http://localhost:8000".
func New(base string) *HTTP {
	return &HTTP{
		base: strings.TrimRight(base, "/"),
		c:    &http.Client{Timeout: 60 * time.Second},
	}
}
