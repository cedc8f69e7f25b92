package finance

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backoffice/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PaymentMethod is how a customer paid
type PaymentMethod string

const (
	PaymentMethodCash    PaymentMethod = "CASH"
	PaymentMethodCard    PaymentMethod = "CARD"
	PaymentMethodWallet  PaymentMethod = "WALLET"
	PaymentMethodVoucher PaymentMethod = "VOUCHER"
)

// IsValid checks if the method is a valid PaymentMethod
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodWallet, PaymentMethodVoucher:
		return true
	}
	return false
}

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusSettled  PaymentStatus = "SETTLED"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// PaymentStatuses lists every payment status
var PaymentStatuses = []PaymentStatus{
	PaymentStatusPending, PaymentStatusSettled, PaymentStatusFailed, PaymentStatusRefunded,
}

// IsValid checks if the status is a valid PaymentStatus
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusSettled, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// String returns the string representation of PaymentStatus
func (s PaymentStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	switch s {
	case PaymentStatusPending:
		return target == PaymentStatusSettled || target == PaymentStatusFailed
	case PaymentStatusSettled:
		return target == PaymentStatusRefunded
	}
	return false
}

// Payment is money received against an order
type Payment struct {
	shared.TenantEntity
	Reference   string
	OrderNumber string
	Method      PaymentMethod
	Status      PaymentStatus
	Amount      decimal.Decimal
	PaidAt      time.Time
}

// NewPayment creates a pending payment
func NewPayment(tenantID uuid.UUID, reference, orderNumber string, method PaymentMethod, amount decimal.Decimal, paidAt time.Time) (*Payment, error) {
	if reference == "" {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Payment reference cannot be empty")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_METHOD", fmt.Sprintf("Unknown payment method %q", method))
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if paidAt.IsZero() {
		paidAt = time.Now()
	}

	return &Payment{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Reference:    reference,
		OrderNumber:  orderNumber,
		Method:       method,
		Status:       PaymentStatusPending,
		Amount:       amount,
		PaidAt:       paidAt,
	}, nil
}

// TransitionTo moves the payment to the target status
func (p *Payment) TransitionTo(target PaymentStatus) error {
	if !p.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot move payment from %s to %s", p.Status, target))
	}
	p.Status = target
	p.Touch()
	return nil
}
