// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ids

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrInvalidSessionID = errors.New("invalid session id")

// Row ID lengths in bytes (hex length is double)
const (
	RecordIDBytes = 12
	OrderIDBytes  = 16
)

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// NewSessionID returns a fresh identity for one wizard session.
// A new session never reuses the identity of a closed one.
func NewSessionID() string {
	return uuid.NewString()
}

// ParseSessionID normalizes a session ID taken from a URL path
func ParseSessionID(s string) (string, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidSessionID, s)
	}
	return id.String(), nil
}

// OrderNumber derives a short human-facing reference from an order ID,
// e.g. "FD-3F9A12C4". IDs shorter than 8 characters are used whole.
func OrderNumber(orderID string) string {
	short := orderID
	if len(short) > 8 {
		short = short[:8]
	}
	return "FD-" + upperHex(short)
}

func upperHex(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'f' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
