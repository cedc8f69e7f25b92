package trade

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, channel Channel) *Order {
	order, err := NewOrder(uuid.New(), "ORD-20260301-001", "Layla", channel, decimal.NewFromFloat(42.5), time.Now())
	require.NoError(t, err)
	return order
}

func TestNewOrder(t *testing.T) {
	t.Run("creates pending order", func(t *testing.T) {
		order := newTestOrder(t, ChannelTakeaway)
		assert.Equal(t, OrderStatusPending, order.Status)
		assert.Equal(t, "ORD-20260301-001", order.OrderNumber)
		assert.True(t, order.Total.Equal(decimal.NewFromFloat(42.5)))
		assert.NotEqual(t, uuid.Nil, order.ID)
	})

	t.Run("defaults placed time", func(t *testing.T) {
		order, err := NewOrder(uuid.New(), "ORD-1", "", ChannelDineIn, decimal.Zero, time.Time{})
		require.NoError(t, err)
		assert.False(t, order.PlacedAt.IsZero())
	})

	t.Run("fails with empty order number", func(t *testing.T) {
		order, err := NewOrder(uuid.New(), "", "Layla", ChannelDineIn, decimal.Zero, time.Now())
		assert.Nil(t, order)
		assert.Contains(t, err.Error(), "Order number cannot be empty")
	})

	t.Run("fails with unknown channel", func(t *testing.T) {
		_, err := NewOrder(uuid.New(), "ORD-1", "Layla", Channel("DRIVE_THRU"), decimal.Zero, time.Now())
		assert.Error(t, err)
	})

	t.Run("fails with negative total", func(t *testing.T) {
		_, err := NewOrder(uuid.New(), "ORD-1", "Layla", ChannelDineIn, decimal.NewFromInt(-1), time.Now())
		assert.Contains(t, err.Error(), "cannot be negative")
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("delivery workflow", func(t *testing.T) {
		order := newTestOrder(t, ChannelDelivery)
		require.NoError(t, order.AssignCourier("Omar"))
		for _, s := range []OrderStatus{OrderStatusPreparing, OrderStatusReady, OrderStatusOutForDelivery, OrderStatusCompleted} {
			require.NoError(t, order.TransitionTo(s))
		}
		assert.Equal(t, OrderStatusCompleted, order.Status)
		assert.NotNil(t, order.CompletedAt)
		assert.True(t, order.Status.IsTerminal())
	})

	t.Run("dine-in orders cannot go out for delivery", func(t *testing.T) {
		order := newTestOrder(t, ChannelDineIn)
		require.NoError(t, order.TransitionTo(OrderStatusPreparing))
		require.NoError(t, order.TransitionTo(OrderStatusReady))
		assert.Error(t, order.TransitionTo(OrderStatusOutForDelivery))
		assert.NoError(t, order.TransitionTo(OrderStatusCompleted))
	})

	t.Run("terminal states are final", func(t *testing.T) {
		order := newTestOrder(t, ChannelTakeaway)
		require.NoError(t, order.TransitionTo(OrderStatusCancelled))
		err := order.TransitionTo(OrderStatusPreparing)
		assert.Contains(t, err.Error(), "Cannot move order from CANCELLED to PREPARING")
	})
}

func TestOrder_Assignments(t *testing.T) {
	dineIn := newTestOrder(t, ChannelDineIn)
	assert.NoError(t, dineIn.AssignTable("T4"))
	assert.Equal(t, "T4", dineIn.TableNumber)
	assert.Error(t, dineIn.AssignCourier("Omar"))

	delivery := newTestOrder(t, ChannelDelivery)
	assert.Error(t, delivery.AssignTable("T1"))
	assert.Error(t, delivery.AssignCourier(""))
}

func TestStatusValidity(t *testing.T) {
	for _, s := range OrderStatuses {
		assert.True(t, s.IsValid(), s)
	}
	for _, s := range InvoiceStatuses {
		assert.True(t, s.IsValid(), s)
	}
	for _, s := range ReturnStatuses {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, OrderStatus("LOST").IsValid())
	assert.False(t, InvoiceStatus("").IsValid())
	assert.False(t, ReturnStatus("DONE").IsValid())
}
