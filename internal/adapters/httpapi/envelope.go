package httpapi

import (
	"fmt"

	"github.com/goccy/go-json"
)

const defaultFailureMessage = "Request failed"

// Envelope is the uniform wrapper of every API body except token refresh.
type Envelope[T any] struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    T          `json:"data"`
	Error   *errorBody `json:"error,omitempty"`
}

// Decode unwraps resp's envelope into T. A success=false envelope becomes an
// *EnvelopeError carrying the server message.
func Decode[T any](resp *Response) (T, error) {
	var zero T
	if resp == nil {
		return zero, fmt.Errorf("decode envelope: nil response")
	}

	var envelope Envelope[T]
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return zero, fmt.Errorf("decode envelope: %w", err)
	}

	if !envelope.Success {
		failure := &EnvelopeError{Message: defaultFailureMessage}
		if envelope.Error != nil {
			if envelope.Error.Message != "" {
				failure.Message = envelope.Error.Message
			}
			failure.Detail = envelope.Error.Detail
		}
		return zero, failure
	}

	return envelope.Data, nil
}

// Check verifies the envelope of a response whose data is not needed.
func Check(resp *Response) error {
	if resp == nil || len(resp.Body) == 0 {
		return nil
	}
	_, err := Decode[json.RawMessage](resp)
	return err
}
