package mail

import (
	"fmt"
	"net"
	"net/smtp"

	"lixishop/internal/domain/model"

	"go.uber.org/zap"
)

// SMTP経由の注文通知。すべてベストエフォートで、
// 失敗はログに残すだけ。呼び出し元には伝播しない
type Service struct {
	host       string
	port       string
	username   string
	password   string
	from       string
	adminEmail string
	log        *zap.Logger
}

func NewService(host, port, username, password, from, adminEmail string, log *zap.Logger) *Service {
	return &Service{
		host:       host,
		port:       port,
		username:   username,
		password:   password,
		from:       from,
		adminEmail: adminEmail,
		log:        log,
	}
}

// SMTP_HOST未設定なら通知は無効
func (s *Service) Enabled() bool {
	return s.host != ""
}

// NotifyOrderCreated は顧客向け確認と管理者向け通知を送る。
// 2通は独立していて、片方の失敗はもう片方に影響しない
func (s *Service) NotifyOrderCreated(order model.Order, items []model.OrderItem) {
	if !s.Enabled() {
		s.log.Debug("mail disabled, skipping order notification",
			zap.String("order_id", order.ID))
		return
	}

	shortID := order.ID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}

	if order.Email != "" {
		subject := fmt.Sprintf("[Lì Xì] Xác nhận đơn hàng #%s", shortID)
		body := BuildOrderConfirmationBody(order, items)
		if err := s.send(order.Email, subject, body); err != nil {
			s.log.Error("failed to send confirmation email to customer",
				zap.String("order_id", order.ID),
				zap.String("to", order.Email),
				zap.Error(err))
		} else {
			s.log.Info("confirmation email sent to customer",
				zap.String("order_id", order.ID))
		}
	}

	if s.adminEmail != "" {
		subject := fmt.Sprintf("[ADMIN] Đơn hàng mới #%s", shortID)
		body := BuildOperatorAlertBody(order, items)
		if err := s.send(s.adminEmail, subject, body); err != nil {
			s.log.Error("failed to send admin notification email",
				zap.String("order_id", order.ID),
				zap.Error(err))
		} else {
			s.log.Info("admin notification email sent",
				zap.String("order_id", order.ID))
		}
	}
}

func (s *Service) send(to, subject, body string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		s.from, to, subject, body)

	addr := net.JoinHostPort(s.host, s.port)

	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}
	return smtp.SendMail(addr, auth, s.from, []string{to}, []byte(msg))
}
