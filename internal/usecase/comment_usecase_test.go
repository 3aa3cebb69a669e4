package usecase_test

import (
	"context"
	"testing"
	"time"

	"lixishop/internal/apperr"
	"lixishop/internal/domain/model"
	repo "lixishop/internal/repository"
	"lixishop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type CommentRepoMock struct{ mock.Mock }

func (m *CommentRepoMock) Create(ctx context.Context, comment model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *CommentRepoMock) FindByID(ctx context.Context, commentID string) (model.Comment, error) {
	args := m.Called(ctx, commentID)
	c, _ := args.Get(0).(model.Comment)
	return c, args.Error(1)
}

func (m *CommentRepoMock) ListVisibleByProduct(ctx context.Context, productID string, page, limit int) ([]model.Comment, int64, error) {
	args := m.Called(ctx, productID, page, limit)
	items, _ := args.Get(0).([]model.Comment)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *CommentRepoMock) ListAdmin(ctx context.Context, f repo.CommentListFilter) ([]model.Comment, int64, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]model.Comment)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *CommentRepoMock) UpdateHidden(ctx context.Context, commentID string, hidden bool) error {
	args := m.Called(ctx, commentID, hidden)
	return args.Error(0)
}

func (m *CommentRepoMock) Delete(ctx context.Context, commentID string) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

func newCommentUsecase(cRepo *CommentRepoMock, pRepo *ProductRepoMock) *usecase.CommentUsecase {
	return usecase.NewCommentUsecase(cRepo, pRepo, &fixedIDGen{ids: []string{"cmt-1"}}, &fixedClock{t: time.Now()})
}

func validCommentInput() usecase.CreateCommentInput {
	return usecase.CreateCommentInput{
		ProductID: "p-1",
		Name:      "Trần Thị B",
		Email:     "b@example.com",
		Content:   "Bao lì xì đẹp lắm!",
	}
}

func TestCommentUsecase_Create_Success(t *testing.T) {
	cRepo := new(CommentRepoMock)
	pRepo := new(ProductRepoMock)
	uc := newCommentUsecase(cRepo, pRepo)

	pRepo.On("FindByID", mock.Anything, "p-1").Return(model.Product{ID: "p-1"}, nil)
	cRepo.On("Create", mock.Anything, mock.MatchedBy(func(c model.Comment) bool {
		return c.ID == "cmt-1" && !c.IsHidden && c.ProductID == "p-1"
	})).Return(nil)

	out, err := uc.Create(context.Background(), validCommentInput())
	assert.NoError(t, err)
	assert.Equal(t, "cmt-1", out.ID)
	assert.False(t, out.IsHidden)

	cRepo.AssertExpectations(t)
}

func TestCommentUsecase_Create_ProductNotFound(t *testing.T) {
	cRepo := new(CommentRepoMock)
	pRepo := new(ProductRepoMock)
	uc := newCommentUsecase(cRepo, pRepo)

	pRepo.On("FindByID", mock.Anything, "p-1").Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.Create(context.Background(), validCommentInput())
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	assert.ErrorContains(t, err, "product not found")

	cRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCommentUsecase_Create_Validation(t *testing.T) {
	uc := newCommentUsecase(new(CommentRepoMock), new(ProductRepoMock))

	in := validCommentInput()
	in.Email = "not-an-email"
	_, err := uc.Create(context.Background(), in)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	in = validCommentInput()
	in.Content = "  "
	_, err = uc.Create(context.Background(), in)
	assert.ErrorContains(t, err, "content is required")
}

func TestCommentUsecase_ListByProduct_NormalizesPaging(t *testing.T) {
	cRepo := new(CommentRepoMock)
	uc := newCommentUsecase(cRepo, new(ProductRepoMock))

	cRepo.On("ListVisibleByProduct", mock.Anything, "p-1", 1, 10).Return([]model.Comment{}, int64(0), nil)

	_, meta, err := uc.ListByProduct(context.Background(), "p-1", 0, 500)
	assert.NoError(t, err)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 10, meta.Limit)

	cRepo.AssertExpectations(t)
}

func TestCommentUsecase_AdminList_IncludesEmail(t *testing.T) {
	cRepo := new(CommentRepoMock)
	uc := newCommentUsecase(cRepo, new(ProductRepoMock))

	cRepo.On("ListAdmin", mock.Anything, repo.CommentListFilter{Page: 1, Limit: 20}).Return([]model.Comment{
		{ID: "c-1", Email: "b@example.com", IsHidden: true},
	}, int64(1), nil)

	out, meta, err := uc.AdminList(context.Background(), usecase.AdminListCommentsInput{})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), meta.Total)
	assert.Len(t, out, 1)
	assert.Equal(t, "b@example.com", out[0].Email)
	assert.True(t, out[0].IsHidden)
}

func TestCommentUsecase_ToggleVisibility(t *testing.T) {
	cRepo := new(CommentRepoMock)
	uc := newCommentUsecase(cRepo, new(ProductRepoMock))

	cRepo.On("FindByID", mock.Anything, "c-1").Return(model.Comment{ID: "c-1", IsHidden: false}, nil)
	cRepo.On("UpdateHidden", mock.Anything, "c-1", true).Return(nil)

	out, err := uc.ToggleVisibility(context.Background(), "c-1")
	assert.NoError(t, err)
	assert.True(t, out.IsHidden)

	cRepo.AssertExpectations(t)
}

func TestCommentUsecase_ToggleVisibility_NotFound(t *testing.T) {
	cRepo := new(CommentRepoMock)
	uc := newCommentUsecase(cRepo, new(ProductRepoMock))

	cRepo.On("FindByID", mock.Anything, "missing").Return(model.Comment{}, repo.ErrNotFound)

	_, err := uc.ToggleVisibility(context.Background(), "missing")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
