package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFee(t *testing.T) {
	tests := []struct {
		in   string
		want Fee
		err  error
	}{
		{in: "200", want: NewFee(200, 0)},
		{in: "200.00", want: NewFee(200, 0)},
		{in: "350.5", want: NewFee(350, 50)},
		{in: ".25", want: NewFee(0, 25)},
		{in: "7.", want: NewFee(7, 0)},
		{in: " 12.30 ", want: NewFee(12, 30)},
		{in: "-1.50", want: -NewFee(1, 50)},
		{in: "99999999.99", want: NewFee(99999999, 99)},
		{in: "1.500", want: NewFee(1, 50)},
		{in: "", err: ErrFeeInvalid},
		{in: ".", err: ErrFeeInvalid},
		{in: "-", err: ErrFeeInvalid},
		{in: "abc", err: ErrFeeInvalid},
		{in: "1e3", err: ErrFeeInvalid},
		{in: "1.234", err: ErrFeeTooManyDecimal},
		{in: "123456789.00", err: ErrFeeTooManyWhole},
		{in: "12345678901", err: ErrFeeTooManyDigits},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFee(tt.in)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDecimal(t *testing.T) {
	for _, in := range []string{"200", "199.995", "1000000000", "-5", "+7.", ".25", "1e3", "2.5E-2", " 12 "} {
		got, err := ParseDecimal(in)
		require.NoError(t, err, in)
		assert.NotEmpty(t, got.String())
	}

	for _, in := range []string{"", ".", "-", "abc", "1.2.3", "1e", "e3", "0x10", "NaN", "Inf", "1_000", "1e99999"} {
		_, err := ParseDecimal(in)
		assert.ErrorIs(t, err, ErrFeeInvalid, in)
	}
}

func TestFeeString(t *testing.T) {
	assert.Equal(t, "200.00", NewFee(200, 0).String())
	assert.Equal(t, "0.05", Fee(5).String())
	assert.Equal(t, "-1.50", (-NewFee(1, 50)).String())
}

func TestFeeJSON(t *testing.T) {
	data, err := json.Marshal(NewFee(150, 0))
	require.NoError(t, err)
	assert.JSONEq(t, `"150.00"`, string(data))

	var fromString, fromNumber Fee
	require.NoError(t, json.Unmarshal([]byte(`"250.00"`), &fromString))
	require.NoError(t, json.Unmarshal([]byte(`250`), &fromNumber))
	assert.Equal(t, fromString, fromNumber)

	var bad Fee
	require.Error(t, json.Unmarshal([]byte(`"cheap"`), &bad))
}

func TestFeeScan(t *testing.T) {
	var f Fee
	require.NoError(t, f.Scan(int64(200)))
	assert.Equal(t, NewFee(200, 0), f)

	require.NoError(t, f.Scan(199.99))
	assert.Equal(t, NewFee(199, 99), f)

	require.NoError(t, f.Scan([]byte("12.50")))
	assert.Equal(t, NewFee(12, 50), f)

	require.Error(t, f.Scan(true))
}

func TestDecimalTextAcceptsStringsAndNumbers(t *testing.T) {
	var payload struct {
		A DecimalText `json:"a"`
		B DecimalText `json:"b"`
		C DecimalText `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"350.00","b":120.5,"c":"free"}`), &payload))

	assert.Equal(t, DecimalText("350.00"), payload.A)
	assert.Equal(t, DecimalText("120.5"), payload.B)

	_, err := payload.C.Fee()
	require.ErrorIs(t, err, ErrFeeInvalid)
}

func TestLanguage(t *testing.T) {
	for _, l := range Languages() {
		assert.True(t, l.IsValid(), l)
	}
	assert.False(t, Language("unknown").IsValid())
	assert.False(t, Language("EN").IsValid())
}
