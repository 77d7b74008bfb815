// File: /services/shortcode_service.go
package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

const shortCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// ShortCodeLength is fixed at 3: 62^3 = 238,328 possible codes.
const ShortCodeLength = 3

const maxGenerateAttempts = 10

// ErrCodeSpaceExhausted is returned when maxGenerateAttempts consecutive
// draws collided with existing codes.
var ErrCodeSpaceExhausted = errors.New("short code space exhausted")

var alphabetSize = big.NewInt(int64(len(shortCodeAlphabet)))

// TakenFunc reports whether a candidate code is already assigned.
type TakenFunc func(code string) (bool, error)

// ShortCodeGenerator draws random base62 codes and retries on collision,
// bounded so a crowded keyspace fails loudly instead of looping forever.
type ShortCodeGenerator struct {
	length int
	taken  TakenFunc
}

func NewShortCodeGenerator(length int, taken TakenFunc) *ShortCodeGenerator {
	if length <= 0 {
		length = ShortCodeLength
	}
	return &ShortCodeGenerator{length: length, taken: taken}
}

// Generate returns a fresh code not currently assigned to any record.
func (g *ShortCodeGenerator) Generate() (string, error) {
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		code, err := randomCode(g.length)
		if err != nil {
			return "", fmt.Errorf("draw short code: %w", err)
		}
		inUse, err := g.taken(code)
		if err != nil {
			return "", fmt.Errorf("check short code: %w", err)
		}
		if !inUse {
			return code, nil
		}
	}
	return "", ErrCodeSpaceExhausted
}

func randomCode(n int) (string, error) {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", err
		}
		b.WriteByte(shortCodeAlphabet[idx.Int64()])
	}
	return b.String(), nil
}

// Alphabet exposes the code alphabet for tests.
func Alphabet() string { return shortCodeAlphabet }
