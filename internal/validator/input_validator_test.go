package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailLike(t *testing.T) {
	assert.True(t, IsEmailLike("a@example.com"))
	assert.True(t, IsEmailLike("nguyen.van.a+test@shop.vn"))

	assert.False(t, IsEmailLike(""))
	assert.False(t, IsEmailLike("not-an-email"))
	assert.False(t, IsEmailLike("a@b"))
	assert.False(t, IsEmailLike("a b@example.com"))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("   "))
	assert.False(t, IsBlank("x"))
	assert.False(t, IsBlank(" x "))
}
