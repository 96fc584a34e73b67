package api

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// NetworkError означает, что HTTP-вызов не завершился: DNS, отказ соединения,
// отсутствие сети или истечение таймаута. Кэш при такой ошибке не трогается.
type NetworkError struct {
	Err error
	Op  string
}

func (e *NetworkError) Error() string {
	if e.Timeout() {
		return fmt.Sprintf("%s: request timed out: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Timeout reports whether the call hit its deadline.
func (e *NetworkError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(e.Err, &ne) && ne.Timeout()
}

// AuthError is returned for 401/403 responses and for an expired local session.
type AuthError struct {
	Op      string
	Message string
	Status  int
}

func (e *AuthError) Error() string {
	if e.Op == "" {
		return "authorization failed: " + e.Message
	}
	return fmt.Sprintf("%s: authorization failed: %s", e.Op, e.Message)
}

// BusinessError carries the literal rejection text of the server.
type BusinessError struct {
	Op      string
	Message string
	Status  int

	// Unparsed: тело ответа не было конвертом (страница прокси, обрыв ответа)
	Unparsed bool
}

// Transient reports whether the rejection came from a failing server or an
// intermediary rather than from a decision about the request.
func (e *BusinessError) Transient() bool {
	return e.Status >= 500 || e.Unparsed
}

// Error returns the server message unchanged so that it can be shown verbatim.
func (e *BusinessError) Error() string {
	return e.Message
}

// IsNetwork reports whether err is a transport failure.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsAuth reports whether err is an authorization failure.
func IsAuth(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

// IsTransient reports whether err is worth retrying on the next pass:
// a transport failure, a 5xx response or a body that was not an envelope.
func IsTransient(err error) bool {
	if IsNetwork(err) {
		return true
	}
	var be *BusinessError
	return errors.As(err, &be) && be.Transient()
}

// IsBusiness reports whether err is a server-side rejection.
func IsBusiness(err error) bool {
	var be *BusinessError
	return errors.As(err, &be)
}
