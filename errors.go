package clever

import "errors"

// ErrTimeout is returned when a request does not complete within the
// configured timeout. It is the only transport failure that gets translated;
// everything else is passed through as-is.
var ErrTimeout = errors.New("timeout while connecting to Clever backend")

// ApiError is a business-rule failure reported by the backend, e.g. an
// expired verification link or a denied profile registration. Message is the
// backend's own result string; the backend does not supply error codes.
type ApiError struct {
	Message string
}

func (e *ApiError) Error() string {
	return e.Message
}
