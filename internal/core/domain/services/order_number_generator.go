package services

import (
	"crypto/rand"
	"fmt"
	"io"

	"foodorder/internal/core/domain/model/order"
)

const (
	// OrderNumberLength is the length of generated order numbers.
	OrderNumberLength = 10

	orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// OrderNumberGenerator produces random order numbers drawn uniformly from
// [A-Z0-9]{10}. Uniqueness against stored orders is checked by the caller.
type OrderNumberGenerator struct {
	source io.Reader
}

// NewOrderNumberGenerator returns a generator backed by crypto/rand.
func NewOrderNumberGenerator() *OrderNumberGenerator {
	return &OrderNumberGenerator{source: rand.Reader}
}

// NewOrderNumberGeneratorWithSource lets tests supply a deterministic byte stream.
func NewOrderNumberGeneratorWithSource(source io.Reader) *OrderNumberGenerator {
	return &OrderNumberGenerator{source: source}
}

// Next returns a fresh order number.
func (g *OrderNumberGenerator) Next() (order.Number, error) {
	const alphabetSize = len(orderNumberAlphabet)
	// bytes at or above limit are skipped so every symbol is equally likely
	const limit = 256 - 256%alphabetSize

	buf := make([]byte, 0, OrderNumberLength)
	one := make([]byte, 1)
	for len(buf) < OrderNumberLength {
		if _, err := io.ReadFull(g.source, one); err != nil {
			return order.Number{}, fmt.Errorf("read random bytes: %w", err)
		}
		if int(one[0]) >= limit {
			continue
		}
		buf = append(buf, orderNumberAlphabet[int(one[0])%alphabetSize])
	}

	return order.NewNumber(string(buf))
}
