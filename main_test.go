package clever

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"
)

type MockTime struct {
	CurTime time.Time
}

func (m MockTime) UTCNow() time.Time {
	return m.CurTime
}

type DoerMock struct {
	mock.Mock
}

func (d *DoerMock) Request(method string, target string, payload interface{}, result interface{}) error {
	args := d.Called(method, target, payload, result)
	return args.Error(0)
}

func newBackendRouter() *mux.Router {
	return mux.NewRouter()
}

func newTestClient(server *httptest.Server) *Client {
	config := &Config{
		RequestTimeout:      time.Second * 5,
		BaseURL:             server.URL,
		AuthorizationHeader: DefaultAuthorizationHeader,
	}
	return NewClient(config)
}

func sendTestJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(body))
}
