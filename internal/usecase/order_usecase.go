package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lixishop/internal/apperr"
	"lixishop/internal/domain/model"
	repo "lixishop/internal/repository"
	"lixishop/internal/validator"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type OrderUsecase struct {
	tx       repo.TransactionManager
	notifier OrderNotifier
	idGen    IDGenerator
	clock    Clock
	log      *zap.Logger
}

func NewOrderUsecase(
	tx repo.TransactionManager,
	notifier OrderNotifier,
	idGen IDGenerator,
	clock Clock,
	log *zap.Logger,
) *OrderUsecase {
	return &OrderUsecase{
		tx:       tx,
		notifier: notifier,
		idGen:    idGen,
		clock:    clock,
		log:      log,
	}
}

type CreateOrderItemInput struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int64           `json:"quantity"`
}

type CreateOrderInput struct {
	CustomerName string                 `json:"customer_name"`
	Email        string                 `json:"email"`
	Phone        string                 `json:"phone"`
	Address      string                 `json:"address"`
	Note         string                 `json:"note"`
	Items        []CreateOrderItemInput `json:"items"`
}

type CreateOrderOutput struct {
	OrderID     string          `json:"order_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Message     string          `json:"message"`
}

type OrderItemOutput struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int64           `json:"quantity"`
}

type OrderOutput struct {
	ID           string            `json:"id"`
	CustomerName string            `json:"customer_name"`
	Email        string            `json:"email"`
	Phone        string            `json:"phone"`
	Address      string            `json:"address"`
	Note         string            `json:"note"`
	Status       string            `json:"status"`
	TotalAmount  decimal.Decimal   `json:"total_amount"`
	Version      int64             `json:"version"`
	CreatedAt    time.Time         `json:"created_at"`
	Items        []OrderItemOutput `json:"items"`
}

// 注文作成の入力検証。Repositoryに触る前に必ず通す
func validateCreateOrder(in CreateOrderInput) error {
	if validator.IsBlank(in.CustomerName) {
		return apperr.Validation("customer_name is required")
	}
	if !validator.IsEmailLike(in.Email) {
		return apperr.Validation("invalid email")
	}
	if validator.IsBlank(in.Phone) {
		return apperr.Validation("phone is required")
	}
	if validator.IsBlank(in.Address) {
		return apperr.Validation("address is required")
	}
	if len(in.Items) == 0 {
		return apperr.Validation("items must not be empty")
	}
	for i, it := range in.Items {
		if validator.IsBlank(it.ProductID) {
			return apperr.Validation(fmt.Sprintf("items[%d]: product_id is required", i))
		}
		if validator.IsBlank(it.ProductName) {
			return apperr.Validation(fmt.Sprintf("items[%d]: product_name is required", i))
		}
		if it.Price.IsNegative() {
			return apperr.Validation(fmt.Sprintf("items[%d]: price must not be negative", i))
		}
		if it.Quantity < 1 {
			return apperr.Validation(fmt.Sprintf("items[%d]: quantity must be at least 1", i))
		}
	}
	return nil
}

// Create は注文と明細を1トランザクションで作成する。
// 商品名・単価はリクエストからスナップショットし、以後変更しない
func (u *OrderUsecase) Create(ctx context.Context, in CreateOrderInput) (CreateOrderOutput, error) {
	if err := validateCreateOrder(in); err != nil {
		return CreateOrderOutput{}, err
	}

	now := u.clock.Now()
	orderID := u.idGen.NewID()

	items := make([]model.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, model.OrderItem{
			ID:          u.idGen.NewID(),
			OrderID:     orderID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Price:       it.Price,
			Quantity:    it.Quantity,
			CreatedAt:   now,
		})
	}

	total := model.OrderItemsTotal(items)

	order := model.Order{
		ID:           orderID,
		CustomerName: in.CustomerName,
		Email:        in.Email,
		Phone:        in.Phone,
		Address:      in.Address,
		Note:         in.Note,
		Status:       model.OrderStatusPending,
		TotalAmount:  total,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	//注文＋明細はトランザクション。途中で失敗したら全部ロールバック
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Orders().Create(ctx, order); err != nil {
			return apperr.Persistence("failed to create order", err)
		}
		if err := r.OrderItems().CreateBulk(ctx, orderID, items); err != nil {
			return apperr.Persistence("failed to create order items", err)
		}
		return nil
	})
	if err != nil {
		u.log.Error("failed to create order",
			zap.String("customer_name", in.CustomerName), zap.Error(err))
		return CreateOrderOutput{}, err
	}

	u.log.Info("order created",
		zap.String("order_id", orderID),
		zap.String("total_amount", total.StringFixed(2)))

	// 通知はコミット後に非同期で投げる。失敗してもレスポンスには影響しない
	if u.notifier != nil {
		go u.notifier.NotifyOrderCreated(order, items)
	}

	return CreateOrderOutput{
		OrderID:     orderID,
		TotalAmount: total,
		Message:     "Order created successfully",
	}, nil
}

type ListOrdersInput struct {
	Search string
	Status string
}

func (u *OrderUsecase) List(ctx context.Context, in ListOrdersInput) ([]OrderOutput, error) {
	if in.Status != "" {
		if _, ok := model.ParseOrderStatus(in.Status); !ok {
			return []OrderOutput{}, apperr.Validation("invalid status")
		}
	}

	var outs []OrderOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().List(ctx, repo.OrderListFilter{
			Status: in.Status,
			Search: in.Search,
		})
		if err != nil {
			return apperr.Persistence("failed to list orders", err)
		}
		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			outs = append(outs, toOrderOutput(o))
		}
		return nil
	})
	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

func (u *OrderUsecase) Get(ctx context.Context, orderID string) (OrderOutput, error) {
	if validator.IsBlank(orderID) {
		return OrderOutput{}, apperr.Validation("invalid id")
	}

	var out OrderOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return apperr.NotFound("order not found")
		}
		if err != nil {
			return apperr.Persistence("failed to load order", err)
		}
		out = toOrderOutput(o)
		return nil
	})
	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// UpdateStatus はステータス遷移を検証してから楽観ロック付きで保存する。
// 読み取った版数と一致する行だけ更新するので、同時更新は片方が必ず失敗する
func (u *OrderUsecase) UpdateStatus(ctx context.Context, orderID string, requested string) (OrderOutput, error) {
	if validator.IsBlank(orderID) {
		return OrderOutput{}, apperr.Validation("invalid id")
	}
	requestedStatus, ok := model.ParseOrderStatus(requested)
	if !ok {
		return OrderOutput{}, apperr.Validation("invalid status")
	}

	var out OrderOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return apperr.NotFound("order not found")
		}
		if err != nil {
			return apperr.Persistence("failed to load order", err)
		}

		next, err := model.TransitionStatus(o.Status, requestedStatus)
		if err != nil {
			return err
		}

		err = r.Orders().UpdateStatusVersioned(ctx, orderID, next, o.Version)
		if errors.Is(err, repo.ErrVersionConflict) {
			return apperr.Conflict("order was updated concurrently, retry")
		}
		if errors.Is(err, repo.ErrNotFound) {
			return apperr.NotFound("order not found")
		}
		if err != nil {
			return apperr.Persistence("failed to update order status", err)
		}

		updated, err := r.Orders().FindByID(ctx, orderID)
		if err != nil {
			return apperr.Persistence("failed to reload order", err)
		}
		out = toOrderOutput(updated)
		return nil
	})
	if err != nil {
		return OrderOutput{}, err
	}

	u.log.Info("order status updated",
		zap.String("order_id", orderID), zap.String("status", string(requestedStatus)))
	return out, nil
}

func toOrderOutput(o model.Order) OrderOutput {
	items := make([]OrderItemOutput, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemOutput{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Price:       it.Price,
			Quantity:    it.Quantity,
		})
	}
	return OrderOutput{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		Email:        o.Email,
		Phone:        o.Phone,
		Address:      o.Address,
		Note:         o.Note,
		Status:       string(o.Status),
		TotalAmount:  o.TotalAmount,
		Version:      o.Version,
		CreatedAt:    o.CreatedAt,
		Items:        items,
	}
}
