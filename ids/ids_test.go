// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ids

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerateID(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
		wantLen int // hex encoded length = byteLen * 2
	}{
		{"8 bytes", 8, 16},
		{"record", RecordIDBytes, 24},
		{"order", OrderIDBytes, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GenerateID(tt.byteLen)
			if err != nil {
				t.Fatalf("GenerateID() error = %v", err)
			}
			if len(id) != tt.wantLen {
				t.Errorf("GenerateID() length = %d, want %d", len(id), tt.wantLen)
			}
			for _, c := range id {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("GenerateID() contains invalid hex char: %c", c)
				}
			}
		})
	}

	id1, _ := GenerateID(16)
	id2, _ := GenerateID(16)
	if id1 == id2 {
		t.Error("GenerateID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestNewSessionID(t *testing.T) {
	a := NewSessionID()
	b := NewSessionID()
	if a == b {
		t.Error("NewSessionID() produced duplicate IDs")
	}

	parsed, err := ParseSessionID(a)
	if err != nil {
		t.Fatalf("ParseSessionID(%q) error = %v", a, err)
	}
	if parsed != a {
		t.Errorf("ParseSessionID() = %q, want %q", parsed, a)
	}
}

func TestParseSessionID_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "not-a-uuid-at-all"} {
		_, err := ParseSessionID(in)
		if !errors.Is(err, ErrInvalidSessionID) {
			t.Errorf("ParseSessionID(%q) error = %v, want ErrInvalidSessionID", in, err)
		}
	}

	upper := strings.ToUpper(NewSessionID())
	parsed, err := ParseSessionID(upper)
	if err != nil {
		t.Fatalf("ParseSessionID(upper) error = %v", err)
	}
	if parsed != strings.ToLower(upper) {
		t.Errorf("ParseSessionID() did not normalize case: %q", parsed)
	}
}

func TestOrderNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"3f9a12c4deadbeef", "FD-3F9A12C4"},
		{"ab12", "FD-AB12"},
		{"", "FD-"},
	}
	for _, tt := range tests {
		if got := OrderNumber(tt.in); got != tt.want {
			t.Errorf("OrderNumber(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
