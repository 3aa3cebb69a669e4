package usecase

import (
	"context"
	"errors"
	"time"

	"lixishop/internal/apperr"
	"lixishop/internal/domain/model"
	repo "lixishop/internal/repository"
	"lixishop/internal/validator"
)

type CommentUsecase struct {
	comments repo.CommentRepository
	products repo.ProductRepository
	idGen    IDGenerator
	clock    Clock
}

func NewCommentUsecase(
	comments repo.CommentRepository,
	products repo.ProductRepository,
	idGen IDGenerator,
	clock Clock,
) *CommentUsecase {
	return &CommentUsecase{comments: comments, products: products, idGen: idGen, clock: clock}
}

type CreateCommentInput struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Content   string `json:"content"`
}

// 管理画面向け。公開側と違ってemailも返す
type AdminCommentOutput struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Content   string    `json:"content"`
	IsHidden  bool      `json:"is_hidden"`
	CreatedAt time.Time `json:"created_at"`
}

type CommentListMeta struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

func (u *CommentUsecase) Create(ctx context.Context, in CreateCommentInput) (model.Comment, error) {
	if validator.IsBlank(in.ProductID) {
		return model.Comment{}, apperr.Validation("product_id is required")
	}
	if validator.IsBlank(in.Name) {
		return model.Comment{}, apperr.Validation("name is required")
	}
	if !validator.IsEmailLike(in.Email) {
		return model.Comment{}, apperr.Validation("invalid email")
	}
	if validator.IsBlank(in.Content) {
		return model.Comment{}, apperr.Validation("content is required")
	}

	// 紐づく商品が存在するかだけ確認する（注文コアはカタログを見ないが、コメントは見る）
	if _, err := u.products.FindByID(ctx, in.ProductID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Comment{}, apperr.NotFound("product not found")
		}
		return model.Comment{}, apperr.Persistence("failed to load product", err)
	}

	c := model.Comment{
		ID:        u.idGen.NewID(),
		ProductID: in.ProductID,
		Name:      in.Name,
		Email:     in.Email,
		Content:   in.Content,
		IsHidden:  false,
		CreatedAt: u.clock.Now(),
	}
	if err := u.comments.Create(ctx, c); err != nil {
		return model.Comment{}, apperr.Persistence("failed to create comment", err)
	}
	return c, nil
}

func normalizePaging(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = defaultLimit
	}
	return page, limit
}

func (u *CommentUsecase) ListByProduct(ctx context.Context, productID string, page, limit int) ([]model.Comment, CommentListMeta, error) {
	if validator.IsBlank(productID) {
		return nil, CommentListMeta{}, apperr.Validation("invalid product id")
	}
	page, limit = normalizePaging(page, limit, 10)

	items, total, err := u.comments.ListVisibleByProduct(ctx, productID, page, limit)
	if err != nil {
		return nil, CommentListMeta{}, apperr.Persistence("failed to list comments", err)
	}
	return items, CommentListMeta{Total: total, Page: page, Limit: limit}, nil
}

type AdminListCommentsInput struct {
	ProductID string
	Search    string
	Page      int
	Limit     int
}

func (u *CommentUsecase) AdminList(ctx context.Context, in AdminListCommentsInput) ([]AdminCommentOutput, CommentListMeta, error) {
	page, limit := normalizePaging(in.Page, in.Limit, 20)

	items, total, err := u.comments.ListAdmin(ctx, repo.CommentListFilter{
		ProductID: in.ProductID,
		Search:    in.Search,
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		return nil, CommentListMeta{}, apperr.Persistence("failed to list comments", err)
	}

	outs := make([]AdminCommentOutput, 0, len(items))
	for _, c := range items {
		outs = append(outs, AdminCommentOutput{
			ID:        c.ID,
			ProductID: c.ProductID,
			Name:      c.Name,
			Email:     c.Email,
			Content:   c.Content,
			IsHidden:  c.IsHidden,
			CreatedAt: c.CreatedAt,
		})
	}
	return outs, CommentListMeta{Total: total, Page: page, Limit: limit}, nil
}

// ToggleVisibility は表示/非表示を反転して反転後の状態を返す
func (u *CommentUsecase) ToggleVisibility(ctx context.Context, commentID string) (model.Comment, error) {
	c, err := u.comments.FindByID(ctx, commentID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Comment{}, apperr.NotFound("comment not found")
	}
	if err != nil {
		return model.Comment{}, apperr.Persistence("failed to load comment", err)
	}

	c.IsHidden = !c.IsHidden
	if err := u.comments.UpdateHidden(ctx, commentID, c.IsHidden); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Comment{}, apperr.NotFound("comment not found")
		}
		return model.Comment{}, apperr.Persistence("failed to update comment", err)
	}
	return c, nil
}

func (u *CommentUsecase) Delete(ctx context.Context, commentID string) error {
	if validator.IsBlank(commentID) {
		return apperr.Validation("invalid id")
	}
	err := u.comments.Delete(ctx, commentID)
	if errors.Is(err, repo.ErrNotFound) {
		return apperr.NotFound("comment not found")
	}
	if err != nil {
		return apperr.Persistence("failed to delete comment", err)
	}
	return nil
}
