package trade

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backoffice/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Channel is how an order reaches the customer
type Channel string

const (
	ChannelDineIn   Channel = "DINE_IN"
	ChannelTakeaway Channel = "TAKEAWAY"
	ChannelDelivery Channel = "DELIVERY"
)

// IsValid checks if the channel is a valid Channel
func (c Channel) IsValid() bool {
	switch c {
	case ChannelDineIn, ChannelTakeaway, ChannelDelivery:
		return true
	}
	return false
}

// String returns the string representation of Channel
func (c Channel) String() string {
	return string(c)
}

// OrderStatus represents the status of a restaurant order
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "PENDING"
	OrderStatusPreparing      OrderStatus = "PREPARING"
	OrderStatusReady          OrderStatus = "READY"
	OrderStatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderStatusCompleted      OrderStatus = "COMPLETED"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
)

// OrderStatuses lists every order status in workflow order
var OrderStatuses = []OrderStatus{
	OrderStatusPending, OrderStatusPreparing, OrderStatusReady,
	OrderStatusOutForDelivery, OrderStatusCompleted, OrderStatusCancelled,
}

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady,
		OrderStatusOutForDelivery, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition is possible
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo checks if the status can transition to the target status
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return target == OrderStatusPreparing || target == OrderStatusCancelled
	case OrderStatusPreparing:
		return target == OrderStatusReady || target == OrderStatusCancelled
	case OrderStatusReady:
		return target == OrderStatusOutForDelivery || target == OrderStatusCompleted
	case OrderStatusOutForDelivery:
		return target == OrderStatusCompleted
	case OrderStatusCompleted, OrderStatusCancelled:
		return false // Terminal states
	}
	return false
}

// Order is a customer order taken at the point of sale
type Order struct {
	shared.TenantEntity
	OrderNumber  string
	CustomerName string
	Channel      Channel
	TableNumber  string // dine-in only
	Status       OrderStatus
	Total        decimal.Decimal
	PlacedAt     time.Time
	SellerName   string
	CourierName  string // delivery only
	CompletedAt  *time.Time
}

// NewOrder creates a new pending order
func NewOrder(tenantID uuid.UUID, orderNumber, customerName string, channel Channel, total decimal.Decimal, placedAt time.Time) (*Order, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if len(orderNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot exceed 50 characters")
	}
	if !channel.IsValid() {
		return nil, shared.NewDomainError("INVALID_CHANNEL", fmt.Sprintf("Unknown order channel %q", channel))
	}
	if total.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Order total cannot be negative")
	}
	if placedAt.IsZero() {
		placedAt = time.Now()
	}

	return &Order{
		TenantEntity: shared.NewTenantEntity(tenantID),
		OrderNumber:  orderNumber,
		CustomerName: customerName,
		Channel:      channel,
		Status:       OrderStatusPending,
		Total:        total,
		PlacedAt:     placedAt,
	}, nil
}

// AssignTable seats a dine-in order at a table
func (o *Order) AssignTable(table string) error {
	if o.Channel != ChannelDineIn {
		return shared.NewDomainError("INVALID_CHANNEL", "Only dine-in orders have a table")
	}
	o.TableNumber = table
	o.Touch()
	return nil
}

// AssignCourier hands a delivery order to a courier
func (o *Order) AssignCourier(courier string) error {
	if o.Channel != ChannelDelivery {
		return shared.NewDomainError("INVALID_CHANNEL", "Only delivery orders have a courier")
	}
	if courier == "" {
		return shared.NewDomainError("INVALID_COURIER", "Courier name cannot be empty")
	}
	o.CourierName = courier
	o.Touch()
	return nil
}

// TransitionTo moves the order to the target status
func (o *Order) TransitionTo(target OrderStatus) error {
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot move order from %s to %s", o.Status, target))
	}
	if target == OrderStatusOutForDelivery && o.Channel != ChannelDelivery {
		return shared.NewDomainError("INVALID_STATE", "Only delivery orders can go out for delivery")
	}

	o.Status = target
	o.Touch()
	if target == OrderStatusCompleted {
		now := o.UpdatedAt
		o.CompletedAt = &now
	}
	return nil
}
