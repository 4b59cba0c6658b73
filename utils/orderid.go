package utils

import (
	"crypto/rand"
	"math/big"
)

const (
	orderIDChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	orderIDLength = 8
)

// GenerateOrderID returns a random 8-character uppercase alphanumeric id.
// Uniqueness is enforced by the order store's insert-if-absent, not here.
func GenerateOrderID() string {
	max := big.NewInt(int64(len(orderIDChars)))
	id := make([]byte, orderIDLength)
	for i := range id {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken.
			panic(err)
		}
		id[i] = orderIDChars[n.Int64()]
	}
	return string(id)
}
