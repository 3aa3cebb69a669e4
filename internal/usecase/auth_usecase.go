package usecase

import (
	"context"
	"crypto/subtle"
	"time"

	"lixishop/internal/apperr"

	"golang.org/x/crypto/bcrypt"
)

// JWTを発行する約束
type AccessTokenIssuer interface {
	Issue(username string, now time.Time) (token string, expiresAt time.Time, err error)
}

// 管理者は1組だけ。ユーザーテーブルは持たず設定値と比較する
type AuthUsecase struct {
	adminUsername     string
	adminPasswordHash string // bcrypt
	issuer            AccessTokenIssuer
	clock             Clock
}

func NewAuthUsecase(adminUsername, adminPasswordHash string, issuer AccessTokenIssuer, clock Clock) *AuthUsecase {
	return &AuthUsecase{
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
		issuer:            issuer,
		clock:             clock,
	}
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginOutput struct {
	AccessToken string    `json:"access_token"`
	Username    string    `json:"username"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Login は設定値との突き合わせでタイミング差を作らないよう、
// ユーザー名は定数時間比較、パスワードはbcrypt比較にする
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	userOK := subtle.ConstantTimeCompare([]byte(in.Username), []byte(u.adminUsername)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(u.adminPasswordHash), []byte(in.Password))

	if !userOK || passErr != nil {
		return LoginOutput{}, apperr.Unauthorized("invalid credentials")
	}

	token, expiresAt, err := u.issuer.Issue(u.adminUsername, u.clock.Now())
	if err != nil {
		return LoginOutput{}, apperr.Persistence("failed to issue token", err)
	}

	return LoginOutput{
		AccessToken: token,
		Username:    u.adminUsername,
		ExpiresAt:   expiresAt,
	}, nil
}
