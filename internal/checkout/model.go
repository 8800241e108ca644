package checkout

import (
	"time"

	"shopswift-be/internal/address"
	"shopswift-be/internal/cart"
	"shopswift-be/internal/order"
	"shopswift-be/internal/payment"
)

// Step is the position in the linear checkout flow.
type Step int

const (
	StepAuth Step = iota + 1
	StepAddress
	StepSummary
	StepPayment
)

func (s Step) String() string {
	switch s {
	case StepAuth:
		return "auth"
	case StepAddress:
		return "address"
	case StepSummary:
		return "summary"
	case StepPayment:
		return "payment"
	}
	return "unknown"
}

// Session is the persisted checkout progress of one storefront session.
type Session struct {
	Step              Step              `json:"step"`
	Guest             bool              `json:"guest"`
	Addresses         []address.Address `json:"addresses"`
	SelectedAddressID string            `json:"selectedAddressId,omitempty"`
	StartedAt         time.Time         `json:"startedAt"`
}

// signIn hands a guest or auth-step session over to a signed-in customer:
// the auth step is skipped and the Home/Work entries are rebuilt for them.
// Addresses added during checkout are kept. It reports whether s changed.
func (s *Session) signIn(owner address.Owner) bool {
	if s.Step != StepAuth && !s.Guest {
		return false
	}

	s.Guest = false
	if s.Step == StepAuth {
		s.Step = StepAddress
	}

	book := address.Defaults(&owner)
	for _, a := range s.Addresses {
		if !address.IsDefault(a.ID) {
			book = append(book, a)
		}
	}
	s.Addresses = book

	if _, ok := s.selectedAddress(); !ok {
		s.SelectedAddressID = s.Addresses[0].ID
	}
	return true
}

func (s *Session) selectedAddress() (address.Address, bool) {
	for _, a := range s.Addresses {
		if a.ID == s.SelectedAddressID {
			return a, true
		}
	}
	return address.Address{}, false
}

// View is the session as the storefront renders it, with the selected cart
// lines and their totals read fresh.
type View struct {
	Step            Step              `json:"step"`
	StepName        string            `json:"stepName"`
	Guest           bool              `json:"guest"`
	Addresses       []address.Address `json:"addresses"`
	SelectedAddress *address.Address  `json:"selectedAddress,omitempty"`
	Items           []cart.CartItem   `json:"items"`
	Totals          cart.Totals       `json:"totals"`
	PaymentMethods  []payment.Method  `json:"paymentMethods"`
}

type Receipt struct {
	Order    order.Order     `json:"order"`
	Recorded bool            `json:"recorded"`
	Payment  *payment.Result `json:"payment"`
}

var paymentMethods = []payment.Method{
	payment.MethodUPI,
	payment.MethodCard,
	payment.MethodNetBanking,
	payment.MethodCOD,
}
