package repository

import (
	"context"
	"errors"

	"lixishop/internal/domain/model"
	repo "lixishop/internal/repository"

	"gorm.io/gorm"
)

type CommentGormRepository struct {
	db *gorm.DB
}

func NewCommentGormRepository(db *gorm.DB) *CommentGormRepository {
	return &CommentGormRepository{db: db}
}

func (r *CommentGormRepository) Create(ctx context.Context, comment model.Comment) error {
	return r.db.WithContext(ctx).Create(&comment).Error
}

func (r *CommentGormRepository) FindByID(ctx context.Context, commentID string) (model.Comment, error) {
	var c model.Comment
	err := r.db.WithContext(ctx).Where("id = ?", commentID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Comment{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Comment{}, err
	}
	return c, nil
}

func (r *CommentGormRepository) ListVisibleByProduct(ctx context.Context, productID string, page, limit int) ([]model.Comment, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Comment{}).
		Where("product_id = ? AND is_hidden = ?", productID, false)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return []model.Comment{}, 0, err
	}

	var items []model.Comment
	offset := (page - 1) * limit
	err := q.Order("created_at desc").Limit(limit).Offset(offset).Find(&items).Error
	if err != nil {
		return []model.Comment{}, 0, err
	}
	return items, total, nil
}

func (r *CommentGormRepository) ListAdmin(ctx context.Context, f repo.CommentListFilter) ([]model.Comment, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Comment{})

	if f.ProductID != "" {
		q = q.Where("product_id = ?", f.ProductID)
	}
	if f.Search != "" {
		pat := "%" + f.Search + "%"
		q = q.Where("name ILIKE ? OR content ILIKE ?", pat, pat)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return []model.Comment{}, 0, err
	}

	var items []model.Comment
	offset := (f.Page - 1) * f.Limit
	err := q.Order("created_at desc").Limit(f.Limit).Offset(offset).Find(&items).Error
	if err != nil {
		return []model.Comment{}, 0, err
	}
	return items, total, nil
}

func (r *CommentGormRepository) UpdateHidden(ctx context.Context, commentID string, hidden bool) error {
	res := r.db.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ?", commentID).
		Update("is_hidden", hidden)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *CommentGormRepository) Delete(ctx context.Context, commentID string) error {
	res := r.db.WithContext(ctx).Where("id = ?", commentID).Delete(&model.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
