package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromDecimal(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		wantCents int64
	}{
		{"integer", "200", 20000},
		{"two decimals", "1574.14", 157414},
		{"rounds half up", "10.005", 1001},
		{"zero", "0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewFromDecimal(decimal.RequireFromString(tt.amount), MXN)
			assert.Equal(t, tt.wantCents, m.Amount())
			assert.Equal(t, MXN, m.Currency())
		})
	}
}

func TestDecimalRoundTrip(t *testing.T) {
	d := decimal.RequireFromString("1574.14")
	m := NewFromDecimal(d, MXN)
	assert.True(t, d.Equal(m.Decimal()), "want %s, got %s", d, m.Decimal())
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "$1,574.14", New(157414, MXN).Display())
	assert.Equal(t, "$0.00", Zero(MXN).Display())
	var nilMoney *Money
	assert.Equal(t, "$0.00", nilMoney.Display())
}

func TestAdd(t *testing.T) {
	sum, err := New(100, MXN).Add(New(250, MXN))
	require.NoError(t, err)
	assert.Equal(t, int64(350), sum.Amount())

	_, err = New(100, MXN).Add(New(100, "USD"))
	assert.Error(t, err)
}

func TestCentsHelpers(t *testing.T) {
	assert.Equal(t, int64(20000), CentsFromDecimal(decimal.NewFromInt(200)))
	assert.Equal(t, "$200.00", DisplayCents(20000))
}
