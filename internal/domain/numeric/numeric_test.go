package numeric

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFloatCoercion(t *testing.T) {
	assert.Equal(t, 12.5, Float(12.5))
	assert.Equal(t, 12.5, Float("12.5"))
	assert.Equal(t, 12.5, Float(" 12.5 "))
	assert.Equal(t, 7.0, Float(7))
	assert.Equal(t, 0.0, Float("abc"))
	assert.Equal(t, 0.0, Float(""))
	assert.Equal(t, 0.0, Float(nil))
	assert.Equal(t, -3.25, Float("-3.25"))
}

func TestIntCoercion(t *testing.T) {
	assert.Equal(t, 12, Int("12"))
	assert.Equal(t, 12, Int(12.9))
	assert.Equal(t, 0, Int(nil))
	assert.Equal(t, 0, Int("not a number"))
}

func TestTextCoercion(t *testing.T) {
	assert.Equal(t, "hello", Text(" hello "))
	assert.Equal(t, "", Text(nil))
	assert.Equal(t, "42", Text(42))
}

func TestMoneyCoercion(t *testing.T) {
	assert.True(t, Money("50.00").Equal(decimal.NewFromInt(50)))
	assert.True(t, Money(50).Equal(decimal.NewFromInt(50)))
	assert.True(t, Money(nil).IsZero())
	assert.True(t, Money("??").IsZero())
}

func TestRound(t *testing.T) {
	assert.Equal(t, 2.34, Round2(2.344))
	assert.Equal(t, 2.35, Round2(2.346))
	assert.Equal(t, -2.35, Round2(-2.346))
	assert.Equal(t, 0.001, Round3(0.0014))
	assert.Equal(t, 1.235, Round3(1.2348))
	assert.Equal(t, 100.0, Round2(100))
}
