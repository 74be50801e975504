// Package jsonutil provides shared helpers for reading and writing JSON files
// with contextual error messages.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v any, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// ReadFile decodes the JSON file at path into a T.
func ReadFile[T any](path string) (T, error) {
	var out T
	data, err := os.ReadFile(path)
	if err != nil {
		return out, fmt.Errorf("read %s: %w", path, err)
	}
	if err := UnmarshalWithContext(data, &out, "decode "+path); err != nil {
		return out, err
	}
	return out, nil
}

// WriteIndented encodes v as two-space indented JSON followed by a newline.
func WriteIndented(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// WriteFile writes v to path as indented JSON, replacing any existing file.
func WriteFile(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteIndented(f, v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
