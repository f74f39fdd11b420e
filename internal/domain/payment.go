package domain

import (
	"errors"
	"fmt"
)

var ErrUnknownPaymentMethod = errors.New("unknown payment method")

type PaymentMethod int

const (
	PaymentCash PaymentMethod = iota + 1
	PaymentCard
	PaymentGCash
)

// PaymentMethods lists the methods in menu order.
var PaymentMethods = []PaymentMethod{PaymentCash, PaymentCard, PaymentGCash}

// ParsePaymentMethod maps a 1-based menu choice to a method.
func ParsePaymentMethod(choice int) (PaymentMethod, error) {
	m := PaymentMethod(choice)
	if !m.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownPaymentMethod, choice)
	}
	return m, nil
}

func (m PaymentMethod) Valid() bool {
	return m >= PaymentCash && m <= PaymentGCash
}

// Label is the name recorded on orders and in the audit log.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCash:
		return "Cash"
	case PaymentCard:
		return "Credit / Debit Card"
	case PaymentGCash:
		return "GCash"
	default:
		return ""
	}
}

// MenuName is the short name shown in the payment method menu.
func (m PaymentMethod) MenuName() string {
	switch m {
	case PaymentCash:
		return "Cash"
	case PaymentCard:
		return "Card"
	case PaymentGCash:
		return "GCash"
	default:
		return ""
	}
}

func (m PaymentMethod) String() string {
	return m.Label()
}

type Receipt struct {
	Method  PaymentMethod
	Label   string
	Amount  int
	Message string
}

// Pay simulates a payment. It never fails for a valid method.
func Pay(m PaymentMethod, amount int) (Receipt, error) {
	if !m.Valid() {
		return Receipt{}, fmt.Errorf("%w: %d", ErrUnknownPaymentMethod, int(m))
	}
	label := m.Label()
	return Receipt{
		Method:  m,
		Label:   label,
		Amount:  amount,
		Message: fmt.Sprintf("Paid %d using %s.", amount, label),
	}, nil
}
