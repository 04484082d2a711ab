// Package repository holds what the SQL storage adapters share. Slot lists
// are stored as JSON array text so any relational backend can hold them
// without a native array type.
package repository

import (
	"encoding/json"
	"fmt"
)

func EncodeSlots(slots []string) (string, error) {
	if slots == nil {
		slots = []string{}
	}
	b, err := json.Marshal(slots)
	if err != nil {
		return "", fmt.Errorf("failed to encode slots: %w", err)
	}
	return string(b), nil
}

func DecodeSlots(text string) ([]string, error) {
	var slots []string
	if err := json.Unmarshal([]byte(text), &slots); err != nil {
		return nil, fmt.Errorf("failed to decode slots: %w", err)
	}
	if slots == nil {
		slots = []string{}
	}
	return slots, nil
}
