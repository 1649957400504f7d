// Package weberror maps service errors onto HTTP responses.
package weberror

import (
	"errors"
	"log"
	"net/http"
	"strings"
)

// statusError pairs an error with a fixed HTTP status.
type statusError struct {
	err    error
	status int
}

func (e statusError) Error() string { return e.err.Error() }
func (e statusError) Unwrap() error { return e.err }

// WithStatus wraps err so Write responds with the given status and the
// error's own message.
func WithStatus(err error, status int) error {
	if err == nil {
		return nil
	}
	return statusError{err: err, status: status}
}

// HTTPStatus resolves the response status for an error. Errors without an
// explicit status map to 500.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var se statusError
	if errors.As(err, &se) {
		return se.status
	}
	return http.StatusInternalServerError
}

// PublicMessage resolves a user-safe message for an error. Internal errors
// collapse to the status text so details never leak.
func PublicMessage(err error) string {
	status := HTTPStatus(err)
	if status < http.StatusInternalServerError && err != nil {
		if msg := strings.TrimSpace(err.Error()); msg != "" {
			return msg
		}
	}
	return http.StatusText(status)
}

// Write logs the error and writes the mapped plain-text response.
func Write(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil || err == nil {
		return
	}
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		path := "-"
		if r != nil && r.URL != nil {
			path = r.URL.Path
		}
		log.Printf("request failed path=%s status=%d err=%v", path, status, err)
	}
	http.Error(w, PublicMessage(err), status)
}
