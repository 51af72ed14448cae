// Package jsonutil wraps JSON parsing to isolate the external dependency.
// This allows swapping the underlying JSON library without modifying callers.
package jsonutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// MaxInputSize limits JSON input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("jsonutil: nil or empty data")
	ErrNilDestination = errors.New("jsonutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("jsonutil: input exceeds maximum size")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

func Unmarshal(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("jsonutil: %w", err)
	}
	return nil
}

func Marshal(v any) ([]byte, error) {
	result, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("jsonutil: %w", err)
	}
	return result, nil
}

// MarshalIndent produces two-space indented output for human-edited files.
func MarshalIndent(v any) ([]byte, error) {
	result, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("jsonutil: %w", err)
	}
	return result, nil
}
