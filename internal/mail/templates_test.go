package mail

import (
	"testing"

	"lixishop/internal/domain/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0,00 ₫"},
		{"50000", "50.000,00 ₫"},
		{"123456.5", "123.456,50 ₫"},
		{"1234567", "1.234.567,00 ₫"},
		{"-1500", "-1.500,00 ₫"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, formatAmount(decimal.RequireFromString(tc.in)))
	}
}

func TestBuildOrderConfirmationBody(t *testing.T) {
	order := model.Order{
		ID:           "123e4567-e89b-12d3-a456-426614174000",
		CustomerName: "Nguyễn Văn A",
		Phone:        "0901234567",
		Address:      "123 Lê Lợi",
		TotalAmount:  decimal.RequireFromString("100000"),
	}
	items := []model.OrderItem{
		{ProductName: "Lì xì rồng vàng", Price: decimal.RequireFromString("50000"), Quantity: 2},
	}

	body := BuildOrderConfirmationBody(order, items)

	//注文IDは先頭8文字だけ見せる
	assert.Contains(t, body, "#123e4567")
	assert.NotContains(t, body, "#123e4567-e89b")
	assert.Contains(t, body, "Nguyễn Văn A")
	assert.Contains(t, body, "Lì xì rồng vàng")
	assert.Contains(t, body, "100.000,00 ₫")
	assert.Contains(t, body, "0901234567")
}

func TestBuildOperatorAlertBody(t *testing.T) {
	order := model.Order{
		ID:           "abcdefgh-1234",
		CustomerName: "Trần Thị B",
		TotalAmount:  decimal.RequireFromString("75000"),
	}

	body := BuildOperatorAlertBody(order, nil)
	assert.Contains(t, body, "đơn hàng mới")
	assert.Contains(t, body, "Trần Thị B")
	assert.Contains(t, body, "75.000,00 ₫")
}
