package rpc

import (
	"encoding/json"
	"errors"
	"fmt"
)

// FieldMap maps wire keys to the keys of the public record shape.
// Only listed keys survive the projection; nested values are passed through untouched.
type FieldMap map[string]string

type validator interface {
	Validate() error
}

func (m FieldMap) project(obj map[string]json.RawMessage) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(m))
	for wire, public := range m {
		if v, ok := obj[wire]; ok {
			out[public] = v
		}
	}
	return out
}

// DecodeRenamed decodes a JSON object into T after renaming its keys with fields.
// A nil FieldMap decodes the object as-is.
func DecodeRenamed[T any](data []byte, fields FieldMap) (T, error) {
	out, err := decodeObject[T](data, fields)
	if err != nil {
		var zero T
		return zero, &DecodeError{Body: string(data), Err: err}
	}
	return out, nil
}

// DecodeListRenamed decodes a top-level JSON array, keeping element order.
func DecodeListRenamed[T any](data []byte, fields FieldMap) ([]T, error) {
	items, err := decodeArray(data)
	if err != nil {
		return nil, &DecodeError{Body: string(data), Err: err}
	}
	out := make([]T, 0, len(items))
	for i, item := range items {
		v, err := decodeObject[T](item, fields)
		if err != nil {
			return nil, &DecodeError{Body: string(data), Err: fmt.Errorf("element %d: %w", i, err)}
		}
		out = append(out, v)
	}
	return out, nil
}

// DecodeFirstRenamed unwraps the first element of a top-level JSON array.
// An empty array is a *NotFoundError for resource, not a malformed response.
func DecodeFirstRenamed[T any](data []byte, fields FieldMap, resource string) (T, error) {
	var zero T
	items, err := decodeArray(data)
	if err != nil {
		return zero, &DecodeError{Body: string(data), Err: err}
	}
	if len(items) == 0 {
		return zero, &NotFoundError{Resource: resource}
	}
	v, err := decodeObject[T](items[0], fields)
	if err != nil {
		return zero, &DecodeError{Body: string(data), Err: err}
	}
	return v, nil
}

func decodeArray(data []byte) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("expected JSON array: %w", err)
	}
	if items == nil {
		return nil, errors.New("expected JSON array, got null")
	}
	return items, nil
}

func decodeObject[T any](data []byte, fields FieldMap) (T, error) {
	var out T

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return out, fmt.Errorf("expected JSON object: %w", err)
	}
	if obj == nil {
		return out, errors.New("expected JSON object, got null")
	}

	payload := data
	if fields != nil {
		b, err := json.Marshal(fields.project(obj))
		if err != nil {
			return out, err
		}
		payload = b
	}
	if err := json.Unmarshal(payload, &out); err != nil {
		return out, err
	}
	if v, ok := any(&out).(validator); ok {
		if err := v.Validate(); err != nil {
			return out, err
		}
	}
	return out, nil
}
