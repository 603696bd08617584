package domain

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	codeLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	codeDigits  = "0123456789"
)

// GenerateCode builds a candidate key code: four uppercase letters and four
// digits, shuffled, behind a fixed product tag. Uniqueness is NOT guaranteed
// here; the repository checks for collisions and retries.
func GenerateCode(prefix string) (string, error) {
	chars := make([]byte, 0, 8)
	for i := 0; i < 4; i++ {
		c, err := randByte(codeLetters)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}
	for i := 0; i < 4; i++ {
		c, err := randByte(codeDigits)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}

	// Fisher-Yates so the letter/digit positions are not predictable
	for i := len(chars) - 1; i > 0; i-- {
		j, err := randInt(i + 1)
		if err != nil {
			return "", err
		}
		chars[i], chars[j] = chars[j], chars[i]
	}

	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteString("-")
	sb.Write(chars)
	return sb.String(), nil
}

func randByte(alphabet string) (byte, error) {
	i, err := randInt(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[i], nil
}

func randInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("entropy source failed: %w", err)
	}
	return int(v.Int64()), nil
}
