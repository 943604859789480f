// Package clever is a client for the Clever EV charger subscription and
// home charger backend.
package clever

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sync"

	"github.com/go-playground/validator"
)

// Doer issues a single request against the Clever backend and decodes the
// JSON response into result. Auth and Subscription depend on this instead of
// a concrete Client so tests can substitute a mock transport.
type Doer interface {
	Request(method string, target string, payload interface{}, result interface{}) error
}

// Client handles the connection with the Clever backend. The zero value is
// not usable; create one with NewClient.
type Client struct {
	Config      *Config
	httpClient  *http.Client
	closeClient bool
	sessionOnce sync.Once
}

func NewClient(config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	c := &Client{Config: config}
	if config.HTTPClient != nil {
		c.httpClient = config.HTTPClient
	}
	return c
}

// Request performs a single call against the Clever backend. The target URL
// must be fully formed, query parameters included. A non-nil payload is sent
// as a JSON body. There are no retries; every failure is surfaced to the
// caller, a timeout as ErrTimeout, everything else unchanged.
func (c *Client) Request(method string, target string, payload interface{}, result interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	r, err := http.NewRequest(method, target, body)
	if err != nil {
		return err
	}
	r.Header.Add("Authorization", c.Config.AuthorizationHeader)
	if payload != nil {
		r.Header.Add("Content-Type", "application/json")
	}
	c.logDebug("request: " + method + " " + target)

	resp, err := c.session().Do(r)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			log.Println(ErrTimeout.Error())
			return ErrTimeout
		}
		log.Printf("request failed: %s\n", err.Error())
		return err
	}
	defer resp.Body.Close()
	c.logDebug(fmt.Sprintf("response status: %d", resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected response code %d", resp.StatusCode)
	}

	if result != nil {
		if err := UnmarshalValidateBody(resp.Body, result); err != nil {
			log.Printf("request failed: %s\n", err.Error())
			return err
		}
	}
	return nil
}

// session returns the underlying http client, creating one on first use if
// none was supplied. A client created here is owned and closed by this
// Client; concurrent requests share it.
func (c *Client) session() *http.Client {
	c.sessionOnce.Do(func() {
		if c.httpClient == nil {
			c.httpClient = &http.Client{
				Timeout: c.Config.RequestTimeout,
			}
			c.closeClient = true
		}
	})
	return c.httpClient
}

// Close releases the underlying http client if this Client created it. A
// client supplied via Config.HTTPClient stays open, its owner closes it.
// Calling Close more than once is harmless.
func (c *Client) Close() {
	if c.httpClient != nil && c.closeClient {
		c.httpClient.CloseIdleConnections()
		c.closeClient = false
	}
}

func (c *Client) logDebug(s string) {
	if c.Config.DebugLog {
		log.Println("DEBUG: " + s)
	}
}

func UnmarshalBody(r io.Reader, o interface{}) error {
	if r == nil {
		return errors.New("body is NIL")
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(body, &o); err != nil {
		return err
	}
	return nil
}

func UnmarshalValidateBody(r io.Reader, o interface{}) error {
	err := UnmarshalBody(r, o)
	if err != nil {
		return err
	}
	err = validator.New().Struct(o)
	if err != nil {
		return err
	}
	return nil
}
