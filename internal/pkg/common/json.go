package common

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ParseJSON parses a JSON string into v.
func ParseJSON(data string, v interface{}) error {
	return decodeJSON(strings.NewReader(data), v)
}

// ParseJSONBytes parses a JSON byte slice into v.
func ParseJSONBytes(data []byte, v interface{}) error {
	return decodeJSON(bytes.NewReader(data), v)
}

// DecodeJSON decodes JSON from r with unified settings.
func DecodeJSON(r io.Reader, v interface{}) error {
	return decodeJSON(r, v)
}

// decodeJSON keeps numbers as json.Number so downstream coercion can
// tell "200" from 200 without losing precision.
func decodeJSON(r io.Reader, v interface{}) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	if err := dec.Decode(v); err != nil {
		return err
	}

	// Reject trailing data after the first value.
	for {
		t, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if t != nil {
			return fmt.Errorf("unexpected extra JSON data")
		}
	}
}

// ExtractJSONObject strips markdown fences and surrounding prose from
// model output by slicing from the first '{' or '[' to its matching
// last '}' or ']'. Returns the input unchanged when no JSON envelope is
// found.
func ExtractJSONObject(raw string) string {
	content := strings.TrimSpace(raw)

	objStart, objEnd := strings.Index(content, "{"), strings.LastIndex(content, "}")
	arrStart, arrEnd := strings.Index(content, "["), strings.LastIndex(content, "]")

	// A bare array response starts before any object.
	if arrStart != -1 && (objStart == -1 || arrStart < objStart) && arrEnd > arrStart {
		return content[arrStart : arrEnd+1]
	}
	if objStart != -1 && objEnd > objStart {
		return content[objStart : objEnd+1]
	}
	return content
}

// ToJSON marshals v into a JSON string.
func ToJSON(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
