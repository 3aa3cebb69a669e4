package apperr

import "errors"

// エラー種別（handlerで一箇所だけHTTPステータスへ変換する）
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindTransition
	KindConflict
	KindUnauthorized
	KindPersistence
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Transition(message string) error {
	return &Error{Kind: KindTransition, Message: message}
}

func Conflict(message string) error {
	return &Error{Kind: KindConflict, Message: message}
}

func Unauthorized(message string) error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// 永続化の失敗。原因をラップして保持する
func Persistence(message string, cause error) error {
	return &Error{Kind: KindPersistence, Message: message, Err: cause}
}

func As(err error) (*Error, bool) {
	var ae *Error
	ok := errors.As(err, &ae)
	return ae, ok
}

// 種別判定のヘルパー
func IsKind(err error, kind Kind) bool {
	ae, ok := As(err)
	return ok && ae.Kind == kind
}
