// Package util holds small helpers shared by config consumers.
package util

import (
	"github.com/labstack/gommon/bytes"
	"github.com/pkg/errors"
)

// ParseSize parses a human size such as "5MB" or "512KiB" into bytes.
// Decimal units are powers of 1000, binary units powers of 1024.
func ParseSize(size string) (int64, error) {
	n, err := bytes.Parse(size)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid size %q", size)
	}
	if n <= 0 {
		return 0, errors.Errorf("size %q must be positive", size)
	}

	return n, nil
}

// FormatSize renders n with decimal units, so a configured "5MB" reads back as "5.00MB".
func FormatSize(n int64) string {
	return bytes.FormatDecimal(n)
}
