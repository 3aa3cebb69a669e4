package usecase

import (
	"context"
	"errors"

	"lixishop/internal/apperr"
	"lixishop/internal/domain/model"
	repo "lixishop/internal/repository"
	"lixishop/internal/validator"

	"github.com/shopspring/decimal"
)

type ProductUsecase struct {
	products repo.ProductRepository
	idGen    IDGenerator
	clock    Clock
}

func NewProductUsecase(products repo.ProductRepository, idGen IDGenerator, clock Clock) *ProductUsecase {
	return &ProductUsecase{products: products, idGen: idGen, clock: clock}
}

type ListProductsInput struct {
	Search string
	// "all"なら全件、"false"なら非公開のみ、それ以外は公開のみ
	ActiveOnly string
}

func (u *ProductUsecase) List(ctx context.Context, in ListProductsInput) ([]model.Product, error) {
	f := repo.ProductListFilter{Search: in.Search}
	switch in.ActiveOnly {
	case "all":
		// 絞り込みなし
	case "false":
		v := false
		f.ActiveOnly = &v
	default:
		v := true
		f.ActiveOnly = &v
	}

	items, err := u.products.List(ctx, f)
	if err != nil {
		return nil, apperr.Persistence("failed to list products", err)
	}
	return items, nil
}

// GetBySlugOrID はslugでもuuidでも引けるようにする（uuidは36文字）
func (u *ProductUsecase) GetBySlugOrID(ctx context.Context, slugOrID string) (model.Product, error) {
	if validator.IsBlank(slugOrID) {
		return model.Product{}, apperr.Validation("invalid slug")
	}

	var p model.Product
	var err error
	if len(slugOrID) == 36 {
		p, err = u.products.FindByID(ctx, slugOrID)
	} else {
		p, err = u.products.FindBySlug(ctx, slugOrID)
	}
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, apperr.NotFound("product not found")
	}
	if err != nil {
		return model.Product{}, apperr.Persistence("failed to load product", err)
	}
	return p, nil
}

type ProductInput struct {
	Slug        string          `json:"slug"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Images      []string        `json:"images"`
	IsActive    *bool           `json:"is_active"`
	StockStatus string          `json:"stock_status"`
}

func validateProductInput(in ProductInput) error {
	if validator.IsBlank(in.Slug) {
		return apperr.Validation("slug is required")
	}
	if validator.IsBlank(in.Name) {
		return apperr.Validation("name is required")
	}
	if in.Price.IsNegative() {
		return apperr.Validation("price must not be negative")
	}
	if in.StockStatus != "" {
		if _, ok := model.ParseStockStatus(in.StockStatus); !ok {
			return apperr.Validation("invalid stock_status")
		}
	}
	return nil
}

func (u *ProductUsecase) Create(ctx context.Context, in ProductInput) (model.Product, error) {
	if err := validateProductInput(in); err != nil {
		return model.Product{}, err
	}

	// slugは一意
	if _, err := u.products.FindBySlug(ctx, in.Slug); err == nil {
		return model.Product{}, apperr.Conflict("slug already exists")
	} else if !errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, apperr.Persistence("failed to check slug", err)
	}

	now := u.clock.Now()
	p := model.Product{
		ID:          u.idGen.NewID(),
		Slug:        in.Slug,
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		Images:      in.Images,
		IsActive:    true,
		StockStatus: model.StockStatusInStock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if in.StockStatus != "" {
		p.StockStatus, _ = model.ParseStockStatus(in.StockStatus)
	}
	if p.Images == nil {
		p.Images = []string{}
	}

	if err := u.products.Create(ctx, p); err != nil {
		return model.Product{}, apperr.Persistence("failed to create product", err)
	}
	return p, nil
}

func (u *ProductUsecase) Update(ctx context.Context, productID string, in ProductInput) (model.Product, error) {
	if err := validateProductInput(in); err != nil {
		return model.Product{}, err
	}

	p, err := u.products.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, apperr.NotFound("product not found")
	}
	if err != nil {
		return model.Product{}, apperr.Persistence("failed to load product", err)
	}

	// slugを変えるときは重複を再チェック
	if in.Slug != p.Slug {
		if _, err := u.products.FindBySlug(ctx, in.Slug); err == nil {
			return model.Product{}, apperr.Conflict("slug already exists")
		} else if !errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, apperr.Persistence("failed to check slug", err)
		}
	}

	p.Slug = in.Slug
	p.Name = in.Name
	p.Price = in.Price
	p.Description = in.Description
	if in.Images != nil {
		p.Images = in.Images
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if in.StockStatus != "" {
		p.StockStatus, _ = model.ParseStockStatus(in.StockStatus)
	}
	p.UpdatedAt = u.clock.Now()

	if err := u.products.Update(ctx, p); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, apperr.NotFound("product not found")
		}
		return model.Product{}, apperr.Persistence("failed to update product", err)
	}
	return p, nil
}

func (u *ProductUsecase) Delete(ctx context.Context, productID string) error {
	if validator.IsBlank(productID) {
		return apperr.Validation("invalid id")
	}
	err := u.products.Delete(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return apperr.NotFound("product not found")
	}
	if err != nil {
		return apperr.Persistence("failed to delete product", err)
	}
	return nil
}
