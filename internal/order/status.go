package order

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
)

var statuses = []Status{StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}

// transitions is the fulfilment graph. Delivered and Cancelled are terminal.
var transitions = map[Status][]Status{
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
}

func ParseStatus(s string) (Status, error) {
	for _, st := range statuses {
		if strings.EqualFold(string(st), strings.TrimSpace(s)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}
