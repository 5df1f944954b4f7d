package payment

import (
	"errors"
	"strings"
)

var ErrUnknownMethod = errors.New("unknown payment method")

type Method string

const (
	MethodCash     Method = "cash"
	MethodTransfer Method = "transfer"
	MethodQR       Method = "qr"
	MethodLink     Method = "link"
)

func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case MethodCash, MethodTransfer, MethodQR, MethodLink:
		return m, nil
	default:
		return "", ErrUnknownMethod
	}
}

func (m Method) String() string {
	return string(m)
}

// IsExternal reports whether the method settles through the payment provider.
func (m Method) IsExternal() bool {
	switch m {
	case MethodQR, MethodLink:
		return true
	default:
		return false
	}
}

// ExternalStatus is what the payment provider reports for a checkout.
type ExternalStatus string

const (
	ExternalPending  ExternalStatus = "pending"
	ExternalApproved ExternalStatus = "approved"
	ExternalRejected ExternalStatus = "rejected"
	ExternalExpired  ExternalStatus = "expired"
)

var ErrUnknownExternalStatus = errors.New("unknown external payment status")

func ParseExternalStatus(s string) (ExternalStatus, error) {
	st := ExternalStatus(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case ExternalPending, ExternalApproved, ExternalRejected, ExternalExpired:
		return st, nil
	default:
		return "", ErrUnknownExternalStatus
	}
}

func (s ExternalStatus) IsFinal() bool {
	return s != ExternalPending
}
