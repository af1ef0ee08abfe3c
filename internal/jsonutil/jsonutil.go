// Package jsonutil provides helpers for JSON Lines output and parsing.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"io"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v any, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// UnmarshalLine unmarshals a single JSON line (string) into v.
// Returns an error if the line is empty or cannot be parsed.
func UnmarshalLine(line string, v any) error {
	if line == "" {
		return fmt.Errorf("empty JSON line")
	}
	return UnmarshalWithContext([]byte(line), v, "json line")
}

// WriteLine writes v to w as one compact JSON line.
func WriteLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode json line: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
