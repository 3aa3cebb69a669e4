package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	for _, s := range AllOrderStatuses() {
		got, ok := ParseOrderStatus(string(s))
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}

	_, ok := ParseOrderStatus("delivered")
	assert.False(t, ok)

	_, ok = ParseOrderStatus("")
	assert.False(t, ok)
}

func TestTransitionStatus_AllowedEdges(t *testing.T) {
	allowed := []struct {
		from OrderStatus
		to   OrderStatus
	}{
		{OrderStatusPending, OrderStatusConfirmed},
		{OrderStatusPending, OrderStatusCancelled},
		{OrderStatusConfirmed, OrderStatusShipping},
		{OrderStatusConfirmed, OrderStatusCancelled},
		{OrderStatusShipping, OrderStatusCompleted},
		{OrderStatusShipping, OrderStatusCancelled},
	}

	for _, tc := range allowed {
		next, err := TransitionStatus(tc.from, tc.to)
		assert.NoError(t, err, "%s -> %s", tc.from, tc.to)
		assert.Equal(t, tc.to, next)
	}
}

// 許可辺以外は全部拒否する（同一ステータスへの遷移も含む）
func TestTransitionStatus_RejectedEdges(t *testing.T) {
	allowed := map[[2]OrderStatus]bool{
		{OrderStatusPending, OrderStatusConfirmed}:   true,
		{OrderStatusPending, OrderStatusCancelled}:   true,
		{OrderStatusConfirmed, OrderStatusShipping}:  true,
		{OrderStatusConfirmed, OrderStatusCancelled}: true,
		{OrderStatusShipping, OrderStatusCompleted}:  true,
		{OrderStatusShipping, OrderStatusCancelled}:  true,
	}

	for _, from := range AllOrderStatuses() {
		for _, to := range AllOrderStatuses() {
			if allowed[[2]OrderStatus{from, to}] {
				continue
			}
			_, err := TransitionStatus(from, to)
			assert.Error(t, err, "%s -> %s should fail", from, to)
			assert.ErrorContains(t, err, "cannot go from")
		}
	}
}

// 終端状態からはどこへも動けない
func TestTransitionStatus_TerminalStates(t *testing.T) {
	for _, from := range []OrderStatus{OrderStatusCompleted, OrderStatusCancelled} {
		for _, to := range AllOrderStatuses() {
			_, err := TransitionStatus(from, to)
			assert.Error(t, err, "%s -> %s should fail", from, to)
		}
	}
}

func TestOrderItemsTotal(t *testing.T) {
	items := []OrderItem{
		{Price: decimal.RequireFromString("10.50"), Quantity: 3},
		{Price: decimal.RequireFromString("5.00"), Quantity: 2},
	}

	total := OrderItemsTotal(items)
	assert.True(t, total.Equal(decimal.RequireFromString("41.50")), "got %s", total)
}

func TestOrderItemsTotal_Empty(t *testing.T) {
	total := OrderItemsTotal(nil)
	assert.True(t, total.IsZero())
}
