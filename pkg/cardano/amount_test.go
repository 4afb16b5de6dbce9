package cardano

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	for _, s := range []string{"0", "5000000", "45000000000000000", "340282366920938463463374607431768211455"} {
		d, err := ParseAmount(s)
		require.NoError(t, err, s)
		assert.False(t, d.IsNegative())
		assert.Equal(t, s, d.String())
	}

	for _, s := range []string{"", "-1", "1.5", "1e6", " 10", "abc", "+3"} {
		_, err := ParseAmount(s)
		assert.ErrorIs(t, err, ErrInvalidAmount, s)
	}
}

func TestParseSignedAmount(t *testing.T) {
	d, err := ParseSignedAmount("-2000000")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromInt(-2000000)))

	_, err = ParseSignedAmount("-")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestLovelaceToADA(t *testing.T) {
	ada, err := LovelaceToADA("5000000")
	require.NoError(t, err)
	assert.Equal(t, "5.00 ₳", FormatADA(ada))

	ada, err = LovelaceToADA("1")
	require.NoError(t, err)
	assert.Equal(t, "0.000001", ada.String())

	_, err = LovelaceToADA("-5")
	assert.Error(t, err)
}

func TestFormatADA(t *testing.T) {
	tests := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.NewFromInt(0), "0.00 ₳"},
		{decimal.NewFromInt(5), "5.00 ₳"},
		{decimal.RequireFromString("123.4"), "123.40 ₳"},
		{decimal.RequireFromString("1234.56"), "1,234.56 ₳"},
		{decimal.RequireFromString("1234567.891"), "1,234,567.89 ₳"},
		{decimal.RequireFromString("-1000"), "-1,000.00 ₳"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatADA(tt.in))
	}
}

func TestFormatLovelace(t *testing.T) {
	assert.Equal(t, "1,234.56 ₳", FormatLovelace("1234560000"))
	assert.Equal(t, "0 ₳", FormatLovelace("not-a-number"))
}
