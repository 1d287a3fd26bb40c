package bgg

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrConnection indicates no usable response was obtained: a transport
	// failure, or a response that was not an XML document.
	ErrConnection = errors.New("connection error")
	// ErrServerNotReady indicates the service kept answering 202 Accepted
	// until the retry deadline elapsed
	ErrServerNotReady = errors.New("server not ready")
)

// ServerError is returned for any HTTP status other than 200 and 202.
type ServerError struct {
	StatusCode int
}

// Error implements the error interface
func (e *ServerError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d", e.StatusCode)
}

// APIError is a semantic error reported by the service, such as an unknown
// username or a malformed id list.
type APIError struct {
	Message string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("bgg API error: %s", e.Message)
}

// XMLError indicates the document could not be parsed or did not match the
// shape expected for the requested entity.
type XMLError struct {
	Detail string
	Err    error
}

func (e *XMLError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("xml error: %s: %v", e.Detail, e.Err)
	}
	return fmt.Sprintf("xml error: %s", e.Detail)
}

func (e *XMLError) Unwrap() error {
	return e.Err
}

// TypeConversionError wraps a failure to deserialize an entity together with
// the element it was read from.
type TypeConversionError struct {
	Entity  string
	Element string
	Err     error
}

func (e *TypeConversionError) Error() string {
	return fmt.Sprintf("could not deserialize %s: %v: %s", e.Entity, e.Err, e.Element)
}

func (e *TypeConversionError) Unwrap() error {
	return e.Err
}

// FieldError is returned when a required attribute or element is missing or
// cannot be converted to the target type.
type FieldError struct {
	Field   string
	Element string
	Value   string
	Missing bool
}

func (e *FieldError) Error() string {
	if e.Missing {
		return fmt.Sprintf("missing field %q on <%s>", e.Field, e.Element)
	}
	return fmt.Sprintf("invalid value %q for field %q on <%s>", e.Value, e.Field, e.Element)
}

func connectionError(err error) error {
	return fmt.Errorf("%w: %w", ErrConnection, err)
}
