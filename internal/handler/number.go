package handler

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// Clients send price and stock either as JSON numbers or as numeric
// strings ({"price": "10"} and {"price": 10} are both accepted). Number and
// Integer absorb both forms at bind time; a non-numeric value fails the
// bind with a 400 instead of reaching the service layer.

// Number is a float64 that unmarshals from a JSON number or numeric string.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		s = strings.TrimSpace(str)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.New("must be a numeric value")
	}
	*n = Number(v)
	return nil
}

// Float64 returns the underlying value.
func (n Number) Float64() float64 { return float64(n) }

// Integer is an int that unmarshals from a JSON number or numeric string.
// Fractional input is truncated toward zero.
type Integer int

func (i *Integer) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		s = strings.TrimSpace(str)
	}

	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		*i = Integer(v)
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.New("must be an integer value")
	}
	*i = Integer(int(v))
	return nil
}

// Int returns the underlying value.
func (i Integer) Int() int { return int(i) }
