package mail

import (
	"fmt"
	"strings"

	"lixishop/internal/domain/model"

	"github.com/shopspring/decimal"
)

// 金額表示（123456.00 → 123.456,00）
func formatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}

	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(c)
	}

	out := b.String() + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out + " ₫"
}

// BuildOrderConfirmationBody は顧客向け確認メールのHTML本文を組み立てる
func BuildOrderConfirmationBody(order model.Order, items []model.OrderItem) string {
	var itemsHTML strings.Builder
	for _, it := range items {
		itemsHTML.WriteString(fmt.Sprintf(
			`<tr>
				<td style="padding: 10px; border-bottom: 1px solid #eee;">%s</td>
				<td style="padding: 10px; border-bottom: 1px solid #eee; text-align: center;">%d</td>
				<td style="padding: 10px; border-bottom: 1px solid #eee; text-align: right;">%s</td>
			</tr>`,
			it.ProductName, it.Quantity, formatAmount(it.Price),
		))
	}

	shortID := order.ID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}

	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; border: 1px solid #ddd; border-radius: 10px; overflow: hidden;">
	<div style="background-color: #d92d20; padding: 20px; text-align: center;">
		<h1 style="color: white; margin: 0;">Lì Xì</h1>
	</div>
	<div style="padding: 20px;">
		<h2>Xác nhận đơn hàng #%s</h2>
		<p>Chào <strong>%s</strong>,</p>
		<p>Cảm ơn bạn đã đặt hàng. Đơn hàng của bạn đã được tiếp nhận và đang được xử lý.</p>
		<h3 style="border-bottom: 2px solid #eee; padding-bottom: 10px;">Chi tiết đơn hàng</h3>
		<table style="width: 100%%; border-collapse: collapse;">
			<thead>
				<tr style="background-color: #f9f9f9;">
					<th style="padding: 10px; text-align: left;">Sản phẩm</th>
					<th style="padding: 10px; text-align: center;">SL</th>
					<th style="padding: 10px; text-align: right;">Giá</th>
				</tr>
			</thead>
			<tbody>%s</tbody>
			<tfoot>
				<tr>
					<td colspan="2" style="padding: 10px; font-weight: bold; text-align: right;">Tổng cộng:</td>
					<td style="padding: 10px; font-weight: bold; text-align: right; color: #d92d20;">%s</td>
				</tr>
			</tfoot>
		</table>
		<h3 style="border-bottom: 2px solid #eee; padding-bottom: 10px; margin-top: 30px;">Thông tin giao hàng</h3>
		<p><strong>Người nhận:</strong> %s</p>
		<p><strong>Số điện thoại:</strong> %s</p>
		<p><strong>Địa chỉ:</strong> %s</p>
	</div>
</div>`,
		shortID,
		order.CustomerName,
		itemsHTML.String(),
		formatAmount(order.TotalAmount),
		order.CustomerName,
		order.Phone,
		order.Address,
	)
}

// BuildOperatorAlertBody は管理者向け新規注文通知のHTML本文を組み立てる
func BuildOperatorAlertBody(order model.Order, items []model.OrderItem) string {
	return fmt.Sprintf(`<div style="background-color: #f0f0f0; padding: 20px;">
	<h2>Có đơn hàng mới đang chờ xử lý</h2>
	<p>Khách hàng: <strong>%s</strong></p>
	<p>Tổng tiền: <strong>%s</strong></p>
	<hr/>
	%s
</div>`,
		order.CustomerName,
		formatAmount(order.TotalAmount),
		BuildOrderConfirmationBody(order, items),
	)
}
