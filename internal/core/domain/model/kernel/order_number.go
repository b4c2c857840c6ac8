package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"catering/internal/pkg/errs"
)

// ErrOrderNumberIsNotConstructed is returned when validating a zero-value OrderNumber.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError("order number must be created via NewOrderNumber")

// OrderNumber is the identity of an order. Numbers are assigned from a
// counter that starts at 1 and never resets, and are rendered as three-digit
// zero-padded strings ("003"). Numbers above 999 keep all their digits.
//
// Example:
//
//	first, _ := kernel.NewOrderNumber(1)
//	fmt.Println(first)        // 001
//	fmt.Println(first.Next()) // 002
type OrderNumber struct {
	seq int
}

// NewOrderNumber creates an order number from its sequence value.
// The sequence must be at least 1.
func NewOrderNumber(seq int) (OrderNumber, error) {
	if seq < 1 {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"order number",
			fmt.Errorf("%d is not greater than 0", seq),
		)
	}
	return OrderNumber{seq: seq}, nil
}

// ParseOrderNumber accepts both the padded ("007") and the plain ("7") form.
func ParseOrderNumber(s string) (OrderNumber, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return OrderNumber{}, errs.NewValueIsRequiredError("order number")
	}

	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
				"order number",
				fmt.Errorf("%q contains non-digit characters", trimmed),
			)
		}
	}

	seq, err := strconv.Atoi(trimmed)
	if err != nil {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("order number", err)
	}

	return NewOrderNumber(seq)
}

// Seq returns the numeric value of the order number.
func (n OrderNumber) Seq() int {
	return n.seq
}

// Next returns the number that follows n. Next on the zero value yields 001.
func (n OrderNumber) Next() OrderNumber {
	return OrderNumber{seq: n.seq + 1}
}

func (n OrderNumber) String() string {
	return fmt.Sprintf("%03d", n.seq)
}

func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.seq == other.seq
}

func (n OrderNumber) Validate() error {
	if n.seq < 1 {
		return ErrOrderNumberIsNotConstructed
	}
	return nil
}
