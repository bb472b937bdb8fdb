// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"

	"github.com/dustin/go-humanize"
)

// ByteSize is a byte count that parses human-readable strings such as
// "1MiB", "100 KB" or "1.5MB". It implements encoding.TextUnmarshaler (env),
// flag.Value (flags) and json.Unmarshaler (JSON files, numbers or strings).
type ByteSize uint64

// UnmarshalText parses a human-readable size.
func (s *ByteSize) UnmarshalText(text []byte) error {
	n, err := humanize.ParseBytes(string(text))
	if err != nil {
		return fmt.Errorf("invalid byte size %q: %w", text, err)
	}
	*s = ByteSize(n)
	return nil
}

// Set implements flag.Value.
func (s *ByteSize) Set(v string) error {
	return s.UnmarshalText([]byte(v))
}

// String renders the size in IEC units, e.g. "1.0 MiB".
func (s ByteSize) String() string {
	return humanize.IBytes(uint64(s))
}

// Int64 returns the size as an int64 for length arithmetic.
func (s ByteSize) Int64() int64 {
	return int64(s)
}

func (s *ByteSize) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		if value < 0 {
			return fmt.Errorf("invalid byte size %v", value)
		}
		*s = ByteSize(value)
		return nil
	case string:
		return s.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid byte size %s", b)
	}
}

func (s ByteSize) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
