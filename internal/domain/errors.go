package domain

import (
	"errors"
	"fmt"
)

// ErrMissingCredential - запрос без API ключа не отправляется
var ErrMissingCredential = errors.New("missing api key")

// TransportError - HTTP вызов не завершился (сеть, DNS, таймаут)
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
