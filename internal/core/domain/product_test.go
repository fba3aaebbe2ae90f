package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatProductCode_ZeroPads(t *testing.T) {
	assert.Equal(t, "PROD-0001", FormatProductCode(1))
	assert.Equal(t, "PROD-0042", FormatProductCode(42))
	assert.Equal(t, "PROD-9999", FormatProductCode(9999))
}

func TestFormatProductCode_WidensBeyondFourDigits(t *testing.T) {
	assert.Equal(t, "PROD-10000", FormatProductCode(10000))
}

func TestNormalizeProductCode(t *testing.T) {
	assert.Equal(t, "PROD-0001", NormalizeProductCode(" prod-0001 "))
	assert.Equal(t, "PROD-0123", NormalizeProductCode("Prod-0123"))
	assert.Equal(t, "", NormalizeProductCode("   "))
}
