package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

var orderIDSpace = big.NewInt(1_000_000_000)

// GenerateOrderID returns "OD" followed by nine random digits.
func GenerateOrderID() string {
	n, err := rand.Int(rand.Reader, orderIDSpace)
	if err != nil {
		// fallback: time-based entropy
		n = big.NewInt(time.Now().UnixNano() % orderIDSpace.Int64())
	}
	return fmt.Sprintf("OD%09d", n.Int64())
}
