package money_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/russellpeiris/mocked/internal/money"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want money.Cents
	}{
		{"$19.99", 1999},
		{"19.99", 1999},
		{"10", 1000},
		{"$10.00", 1000},
		{"5.50", 550},
		{"0", 0},
		{"$0.05", 5},
		{"0.5", 50},
		{".99", 99},
		{"5.505", 551},  // half-up on the third digit
		{"5.504", 550},  // truncates below half
		{"5.5049", 550}, // only the third digit decides
		{" $7.25 ", 725},
	}
	for _, tc := range cases {
		got, err := money.Parse(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		require.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseRejects(t *testing.T) {
	for _, in := range []string{"", "$", "-1", "$-5.00", "abc", "$1x.00", "1.2.3", "1,000.00"} {
		_, err := money.Parse(in)
		require.Error(t, err, "input %q", in)
	}
}

func TestParseOverflow(t *testing.T) {
	// largest whole part that still scales to cents without wrapping
	got, err := money.Parse("92233720368547757.99")
	require.NoError(t, err)
	require.Equal(t, money.Cents(9223372036854775799), got)

	// one unit more would wrap negative
	_, err = money.Parse("92233720368547758")
	require.Error(t, err)

	// beyond int64 entirely
	_, err = money.Parse("99999999999999999999")
	require.Error(t, err)
}

func TestStringAndJSON(t *testing.T) {
	require.Equal(t, "25.50", money.Cents(2550).String())
	require.Equal(t, "0.05", money.Cents(5).String())
	require.Equal(t, "0.00", money.Cents(0).String())

	b, err := json.Marshal(money.Cents(2550))
	require.NoError(t, err)
	require.Equal(t, `"25.50"`, string(b))
}

func TestMul(t *testing.T) {
	require.Equal(t, money.Cents(2000), money.Cents(1000).Mul(2))
}
