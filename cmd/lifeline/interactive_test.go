package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, validateAmount("1500000"))
	assert.NoError(t, validateAmount("0"))
	assert.NoError(t, validateAmount("1234.56"))
	assert.Error(t, validateAmount("-5"))
	assert.Error(t, validateAmount("abc"))
	assert.Error(t, validateAmount(""))
}

func TestValidateRate(t *testing.T) {
	assert.NoError(t, validateRate("0.10"))
	assert.NoError(t, validateRate("0"))
	assert.NoError(t, validateRate("-0.5"))
	assert.NoError(t, validateRate("-1"))
	assert.Error(t, validateRate("-1.5"))
	assert.Error(t, validateRate("ten percent"))
}
