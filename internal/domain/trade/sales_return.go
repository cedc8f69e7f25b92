package trade

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backoffice/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ReturnStatus represents the status of a sales return
type ReturnStatus string

const (
	ReturnStatusPending  ReturnStatus = "PENDING"  // Waiting for approval
	ReturnStatusApproved ReturnStatus = "APPROVED" // Approved, refund not yet paid
	ReturnStatusRejected ReturnStatus = "REJECTED"
	ReturnStatusRefunded ReturnStatus = "REFUNDED"
)

// ReturnStatuses lists every return status
var ReturnStatuses = []ReturnStatus{
	ReturnStatusPending, ReturnStatusApproved, ReturnStatusRejected, ReturnStatusRefunded,
}

// IsValid checks if the status is a valid ReturnStatus
func (s ReturnStatus) IsValid() bool {
	switch s {
	case ReturnStatusPending, ReturnStatusApproved, ReturnStatusRejected, ReturnStatusRefunded:
		return true
	}
	return false
}

// String returns the string representation of ReturnStatus
func (s ReturnStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s ReturnStatus) CanTransitionTo(target ReturnStatus) bool {
	switch s {
	case ReturnStatusPending:
		return target == ReturnStatusApproved || target == ReturnStatusRejected
	case ReturnStatusApproved:
		return target == ReturnStatusRefunded
	}
	return false
}

// SalesReturn is a customer's request to return (part of) an order
type SalesReturn struct {
	shared.TenantEntity
	ReturnNumber string
	OrderNumber  string
	CustomerName string
	Reason       string
	Status       ReturnStatus
	Amount       decimal.Decimal
	RequestedAt  time.Time
}

// NewSalesReturn creates a pending return for an order
func NewSalesReturn(tenantID uuid.UUID, returnNumber, orderNumber, reason string, amount decimal.Decimal, requestedAt time.Time) (*SalesReturn, error) {
	if returnNumber == "" {
		return nil, shared.NewDomainError("INVALID_RETURN_NUMBER", "Return number cannot be empty")
	}
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if reason == "" {
		return nil, shared.NewDomainError("INVALID_REASON", "Return reason is required")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Refund amount must be positive")
	}
	if requestedAt.IsZero() {
		requestedAt = time.Now()
	}

	return &SalesReturn{
		TenantEntity: shared.NewTenantEntity(tenantID),
		ReturnNumber: returnNumber,
		OrderNumber:  orderNumber,
		Reason:       reason,
		Status:       ReturnStatusPending,
		Amount:       amount,
		RequestedAt:  requestedAt,
	}, nil
}

// TransitionTo moves the return to the target status
func (r *SalesReturn) TransitionTo(target ReturnStatus) error {
	if !r.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot move return from %s to %s", r.Status, target))
	}
	r.Status = target
	r.Touch()
	return nil
}
