package clever

import (
	"net/http"
	"os"
	"strconv"
	"time"
)

const DefaultBaseURL = "https://mobileapp-backend.clever.dk/api"

// DefaultAuthorizationHeader is the credential the Clever mobile app sends
// with every request. It is shared by all clients of the backend, not
// per-user.
const DefaultAuthorizationHeader = "Basic bW9iaWxlYXBwOmFwcHN0b3Jl"

type Config struct {
	RequestTimeout      time.Duration
	BaseURL             string
	AuthorizationHeader string
	HTTPClient          *http.Client
	DebugLog            bool
}

func DefaultConfig() *Config {
	c := &Config{}
	c.ReadConfig()
	return c
}

func (c *Config) ReadConfig() {
	timeout, err := strconv.Atoi(c.getEnv("CLEVER_REQUEST_TIMEOUT", "10"))
	if err != nil {
		timeout = 10
	}
	c.RequestTimeout = time.Duration(timeout) * time.Second
	c.BaseURL = c.getEnv("CLEVER_BASE_URL", DefaultBaseURL)
	c.AuthorizationHeader = c.getEnv("CLEVER_AUTH_HEADER", DefaultAuthorizationHeader)
	c.DebugLog = (c.getEnv("DEBUG_LOG", "0") == "1")
}

func (c *Config) getEnv(key, defaultValue string) string {
	res := os.Getenv(key)
	if res == "" {
		return defaultValue
	}
	return res
}
