package trade

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backoffice/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the status of a customer invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft  InvoiceStatus = "DRAFT"
	InvoiceStatusIssued InvoiceStatus = "ISSUED"
	InvoiceStatusPaid   InvoiceStatus = "PAID"
	InvoiceStatusVoid   InvoiceStatus = "VOID"
)

// InvoiceStatuses lists every invoice status
var InvoiceStatuses = []InvoiceStatus{
	InvoiceStatusDraft, InvoiceStatusIssued, InvoiceStatusPaid, InvoiceStatusVoid,
}

// IsValid checks if the status is a valid InvoiceStatus
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusIssued, InvoiceStatusPaid, InvoiceStatusVoid:
		return true
	}
	return false
}

// String returns the string representation of InvoiceStatus
func (s InvoiceStatus) String() string {
	return string(s)
}

// CustomerInvoice is the bill issued for an order
type CustomerInvoice struct {
	shared.TenantEntity
	InvoiceNumber string
	OrderNumber   string
	CustomerName  string
	Status        InvoiceStatus
	Amount        decimal.Decimal
	IssuedAt      time.Time
	DueAt         *time.Time
}

// NewCustomerInvoice creates a draft invoice for an order
func NewCustomerInvoice(tenantID uuid.UUID, invoiceNumber, orderNumber, customerName string, amount decimal.Decimal, issuedAt time.Time) (*CustomerInvoice, error) {
	if invoiceNumber == "" {
		return nil, shared.NewDomainError("INVALID_INVOICE_NUMBER", "Invoice number cannot be empty")
	}
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Invoice amount must be positive")
	}
	if issuedAt.IsZero() {
		issuedAt = time.Now()
	}

	return &CustomerInvoice{
		TenantEntity:  shared.NewTenantEntity(tenantID),
		InvoiceNumber: invoiceNumber,
		OrderNumber:   orderNumber,
		CustomerName:  customerName,
		Status:        InvoiceStatusDraft,
		Amount:        amount,
		IssuedAt:      issuedAt,
	}, nil
}

// Issue sends a draft invoice to the customer
func (i *CustomerInvoice) Issue(dueAt time.Time) error {
	if i.Status != InvoiceStatusDraft {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot issue invoice in %s status", i.Status))
	}
	if dueAt.Before(i.IssuedAt) {
		return shared.NewDomainError("INVALID_DUE_DATE", "Due date cannot precede the issue date")
	}
	i.Status = InvoiceStatusIssued
	i.DueAt = &dueAt
	i.Touch()
	return nil
}

// MarkPaid settles an issued invoice
func (i *CustomerInvoice) MarkPaid() error {
	if i.Status != InvoiceStatusIssued {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot pay invoice in %s status", i.Status))
	}
	i.Status = InvoiceStatusPaid
	i.Touch()
	return nil
}

// Void cancels an unpaid invoice
func (i *CustomerInvoice) Void() error {
	if i.Status == InvoiceStatusPaid || i.Status == InvoiceStatusVoid {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot void invoice in %s status", i.Status))
	}
	i.Status = InvoiceStatusVoid
	i.Touch()
	return nil
}

// IsOverdue reports whether an issued invoice is past its due date at now
func (i *CustomerInvoice) IsOverdue(now time.Time) bool {
	return i.Status == InvoiceStatusIssued && i.DueAt != nil && now.After(*i.DueAt)
}
