package domain

import (
	"database/sql/driver"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	feeMaxDigits     = 10
	feeDecimalPlaces = 2
)

// FeeError carries a client-facing message describing why a decimal was rejected.
type FeeError struct {
	Message string
}

func (e *FeeError) Error() string {
	return e.Message
}

var (
	ErrFeeInvalid        = &FeeError{Message: "A valid number is required."}
	ErrFeeTooManyDigits  = &FeeError{Message: fmt.Sprintf("Ensure that there are no more than %d digits in total.", feeMaxDigits)}
	ErrFeeTooManyDecimal = &FeeError{Message: fmt.Sprintf("Ensure that there are no more than %d decimal places.", feeDecimalPlaces)}
	ErrFeeTooManyWhole   = &FeeError{Message: fmt.Sprintf("Ensure that there are no more than %d digits before the decimal point.", feeMaxDigits-feeDecimalPlaces)}
)

// Fee is a decimal(10,2) amount stored as hundredths.
type Fee int64

func NewFee(units int64, cents int64) Fee {
	return Fee(units*100 + cents)
}

// ParseFee parses a plain decimal such as "200", "-1.5" or "350.00".
func ParseFee(s string) (Fee, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrFeeInvalid
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	intPart, fracPart, hasDot := strings.Cut(s, ".")
	if intPart == "" && (!hasDot || fracPart == "") {
		return 0, ErrFeeInvalid
	}
	if !isDigits(intPart) || !isDigits(fracPart) {
		return 0, ErrFeeInvalid
	}

	trimmedInt := strings.TrimLeft(intPart, "0")
	trimmedFrac := strings.TrimRight(fracPart, "0")
	if len(trimmedInt)+len(trimmedFrac) > feeMaxDigits {
		return 0, ErrFeeTooManyDigits
	}
	if len(trimmedFrac) > feeDecimalPlaces {
		return 0, ErrFeeTooManyDecimal
	}
	if len(trimmedInt) > feeMaxDigits-feeDecimalPlaces {
		return 0, ErrFeeTooManyWhole
	}

	var units int64
	if trimmedInt != "" {
		v, err := strconv.ParseInt(trimmedInt, 10, 64)
		if err != nil {
			return 0, ErrFeeInvalid
		}
		units = v
	}

	cents := int64(0)
	for i := 0; i < feeDecimalPlaces; i++ {
		cents *= 10
		if i < len(trimmedFrac) {
			cents += int64(trimmedFrac[i] - '0')
		}
	}

	fee := NewFee(units, cents)
	if negative {
		fee = -fee
	}

	return fee, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (f Fee) String() string {
	sign := ""
	v := int64(f)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func (f Fee) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(f.String())), nil
}

func (f *Fee) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
	}

	parsed, err := ParseFee(raw)
	if err != nil {
		return err
	}

	*f = parsed
	return nil
}

// Value stores the fee as its decimal text so numeric columns keep exact cents.
func (f Fee) Value() (driver.Value, error) {
	return f.String(), nil
}

func (f *Fee) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*f = 0
		return nil
	case int64:
		*f = Fee(v * 100)
		return nil
	case float64:
		parsed, err := ParseFee(strconv.FormatFloat(v, 'f', feeDecimalPlaces, 64))
		if err != nil {
			return err
		}
		*f = parsed
		return nil
	case []byte:
		return f.scanText(string(v))
	case string:
		return f.scanText(v)
	default:
		return fmt.Errorf("cannot scan %T into Fee", src)
	}
}

func (f *Fee) scanText(s string) error {
	parsed, err := ParseFee(s)
	if err != nil {
		return fmt.Errorf("scan fee %q: %w", s, err)
	}
	*f = parsed
	return nil
}

// DecimalText holds a raw decimal as sent by a client, accepting JSON strings and numbers.
// It never fails to decode so that malformed values surface as field-level validation errors.
type DecimalText string

func (d *DecimalText) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*d = ""
		return nil
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
	}
	*d = DecimalText(raw)
	return nil
}

func (d DecimalText) Fee() (Fee, error) {
	return ParseFee(string(d))
}

var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d{1,4})?$`)

// Decimal is a finite decimal literal of any precision, kept as text so the
// store compares it as NUMERIC without rounding.
type Decimal string

// ParseDecimal accepts plain or exponent notation such as "199.995" or "1e3".
func ParseDecimal(s string) (Decimal, error) {
	s = strings.TrimSpace(s)
	if !decimalLiteral.MatchString(s) {
		return "", ErrFeeInvalid
	}
	return Decimal(s), nil
}

func (d Decimal) String() string {
	return string(d)
}
