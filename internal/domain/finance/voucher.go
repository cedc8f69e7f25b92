package finance

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backoffice/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DiscountType is how a voucher reduces an order total
type DiscountType string

const (
	DiscountPercent DiscountType = "PERCENT"
	DiscountFixed   DiscountType = "FIXED"
)

// IsValid checks if the type is a valid DiscountType
func (t DiscountType) IsValid() bool {
	return t == DiscountPercent || t == DiscountFixed
}

// VoucherStatus represents the status of a voucher
type VoucherStatus string

const (
	VoucherStatusActive   VoucherStatus = "ACTIVE"
	VoucherStatusExpired  VoucherStatus = "EXPIRED"
	VoucherStatusDisabled VoucherStatus = "DISABLED"
)

// VoucherStatuses lists every voucher status
var VoucherStatuses = []VoucherStatus{VoucherStatusActive, VoucherStatusExpired, VoucherStatusDisabled}

// IsValid checks if the status is a valid VoucherStatus
func (s VoucherStatus) IsValid() bool {
	switch s {
	case VoucherStatusActive, VoucherStatusExpired, VoucherStatusDisabled:
		return true
	}
	return false
}

// String returns the string representation of VoucherStatus
func (s VoucherStatus) String() string {
	return string(s)
}

// Voucher is a discount code customers redeem at checkout
type Voucher struct {
	shared.TenantEntity
	Code         string
	Description  string
	DiscountType DiscountType
	Value        decimal.Decimal
	Status       VoucherStatus
	ValidFrom    time.Time
	ValidUntil   time.Time
	UsageCount   int
}

var hundred = decimal.NewFromInt(100)

// NewVoucher creates an active voucher
func NewVoucher(tenantID uuid.UUID, code, description string, discountType DiscountType, value decimal.Decimal, validFrom, validUntil time.Time) (*Voucher, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Voucher code cannot be empty")
	}
	if !discountType.IsValid() {
		return nil, shared.NewDomainError("INVALID_DISCOUNT_TYPE", fmt.Sprintf("Unknown discount type %q", discountType))
	}
	if !value.IsPositive() {
		return nil, shared.NewDomainError("INVALID_VALUE", "Discount value must be positive")
	}
	if discountType == DiscountPercent && value.GreaterThan(hundred) {
		return nil, shared.NewDomainError("INVALID_VALUE", "Percentage discount cannot exceed 100")
	}
	if !validUntil.After(validFrom) {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Voucher must end after it starts")
	}

	return &Voucher{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Code:         code,
		Description:  description,
		DiscountType: discountType,
		Value:        value,
		Status:       VoucherStatusActive,
		ValidFrom:    validFrom,
		ValidUntil:   validUntil,
	}, nil
}

// IsRedeemable reports whether the voucher can be used at now
func (v *Voucher) IsRedeemable(now time.Time) bool {
	return v.Status == VoucherStatusActive && !now.Before(v.ValidFrom) && !now.After(v.ValidUntil)
}

// Discount returns the amount taken off total, never more than total
func (v *Voucher) Discount(total decimal.Decimal) decimal.Decimal {
	var d decimal.Decimal
	if v.DiscountType == DiscountPercent {
		d = total.Mul(v.Value).Div(hundred).Round(2)
	} else {
		d = v.Value
	}
	return decimal.Min(d, total)
}

// Redeem records one use of the voucher
func (v *Voucher) Redeem(now time.Time) error {
	if !v.IsRedeemable(now) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Voucher %s cannot be redeemed", v.Code))
	}
	v.UsageCount++
	v.Touch()
	return nil
}

// Disable stops the voucher from being redeemed
func (v *Voucher) Disable() {
	v.Status = VoucherStatusDisabled
	v.Touch()
}

// ExpireIfDue marks an active voucher past its validity as expired
func (v *Voucher) ExpireIfDue(now time.Time) bool {
	if v.Status != VoucherStatusActive || !now.After(v.ValidUntil) {
		return false
	}
	v.Status = VoucherStatusExpired
	v.Touch()
	return true
}
