package cryptox

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

var ten = big.NewInt(10)

// GenerateNumericCode creates an n-digit numeric code where each digit is
// drawn independently and uniformly from 0-9. Leading zeros are allowed, so
// the result must be treated as a string, never an integer.
func GenerateNumericCode(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("cryptox: code length must be positive, got %d", n)
	}

	buf := make([]byte, n)
	for i := range buf {
		d, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("cryptox: failed to generate code digit: %w", err)
		}
		buf[i] = '0' + byte(d.Int64())
	}
	return string(buf), nil
}
