package model

import (
	"fmt"
	"time"

	"lixishop/internal/apperr"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipping  OrderStatus = "shipping"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// 配送フローの順序を保つための遷移表。completed/cancelledは終端
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipping, OrderStatusCancelled},
	OrderStatusShipping:  {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted: {},
	OrderStatusCancelled: {},
}

// 集計の0埋めなどで使う固定順の全ステータス
func AllOrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusShipping,
		OrderStatusCompleted,
		OrderStatusCancelled,
	}
}

func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipping,
		OrderStatusCompleted, OrderStatusCancelled:
		return OrderStatus(s), true
	}
	return "", false
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	allowed, ok := statusTransitions[s]
	if !ok {
		return false
	}
	for _, a := range allowed {
		if a == next {
			return true
		}
	}
	return false
}

// TransitionStatus はステータス遷移を検証する純粋関数。
// 保存や読み込みはしない。終端ステータスは自分自身への遷移も拒否する
func TransitionStatus(current, requested OrderStatus) (OrderStatus, error) {
	if current.CanTransitionTo(requested) {
		return requested, nil
	}
	return "", apperr.Transition(fmt.Sprintf("cannot go from %s to %s", current, requested))
}

type Order struct {
	ID           string          `gorm:"primaryKey;type:uuid" json:"id"`
	CustomerName string          `gorm:"type:varchar(255);not null" json:"customer_name"`
	Email        string          `gorm:"type:varchar(255);not null" json:"email"`
	Phone        string          `gorm:"type:varchar(50);not null" json:"phone"`
	Address      string          `gorm:"type:text;not null" json:"address"`
	Note         string          `gorm:"type:text" json:"note"`
	Status       OrderStatus     `gorm:"type:varchar(20);not null;index" json:"status"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	// 楽観ロック用。ステータス更新のたびに+1
	Version   int64       `gorm:"not null;default:1" json:"version"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time   `gorm:"not null;autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
