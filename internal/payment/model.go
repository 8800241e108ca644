package payment

import (
	"fmt"
	"strings"
	"time"
)

type Method string

const (
	MethodUPI        Method = "upi"
	MethodCard       Method = "card"
	MethodNetBanking Method = "netbanking"
	MethodCOD        Method = "cod"
)

var methods = []Method{MethodUPI, MethodCard, MethodNetBanking, MethodCOD}

func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range methods {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMethod, s)
}

// Outcome is what the simulated gateway answers with.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeDecline Outcome = "decline"
	OutcomeTimeout Outcome = "timeout"
)

type Request struct {
	Amount int64
	Method Method
	Email  string
}

type Result struct {
	Reference    string    `json:"reference"`
	Method       Method    `json:"method"`
	Amount       int64     `json:"amount"`
	Status       string    `json:"status"`
	AuthorizedAt time.Time `json:"authorizedAt"`
}
