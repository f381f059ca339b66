package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONStrings stores a string slice as JSON-encoded TEXT, preserving the
// serialization contract of the original listing tables.
type JSONStrings []string

// Value implements driver.Valuer.
func (j JSONStrings) Value() (driver.Value, error) {
	if j == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(j))
	if err != nil {
		return nil, fmt.Errorf("failed to encode string list column: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (j *JSONStrings) Scan(src interface{}) error {
	if src == nil {
		*j = JSONStrings{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for string list column", src)
	}
	if len(data) == 0 {
		*j = JSONStrings{}
		return nil
	}
	return json.Unmarshal(data, (*[]string)(j))
}

// JSONMap stores a free-form object (e.g. car specifications) as
// JSON-encoded TEXT.
type JSONMap map[string]interface{}

// Value implements driver.Valuer.
func (j JSONMap) Value() (driver.Value, error) {
	if j == nil {
		return "{}", nil
	}
	b, err := json.Marshal(map[string]interface{}(j))
	if err != nil {
		return nil, fmt.Errorf("failed to encode object column: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (j *JSONMap) Scan(src interface{}) error {
	if src == nil {
		*j = JSONMap{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for object column", src)
	}
	if len(data) == 0 {
		*j = JSONMap{}
		return nil
	}
	return json.Unmarshal(data, (*map[string]interface{})(j))
}
