package validator

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// 簡易メール形式をチェック
func IsEmailLike(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

// 必須テキストのチェック（空白のみは不可）
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
