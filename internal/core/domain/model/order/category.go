package order

import (
	"fmt"
	"strings"

	"catering/internal/pkg/errs"
)

// PriorityBillThreshold is the final bill above which SuggestCategory proposes Priority.
const PriorityBillThreshold = 1000.0

// Category is chosen by the head chef when preparation starts.
// Orders that have not been prepared yet carry NoCategory.
type Category int

const (
	NoCategory Category = iota
	Normal
	Priority
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		NoCategory: "",
		Normal:     "NORMAL",
		Priority:   "PRIORITY",
	}
}

// ParseCategory converts "NORMAL" or "PRIORITY" (any case) into a Category.
// The empty string parses to NoCategory so unprepared orders can be restored.
func ParseCategory(s string) (Category, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for category, str := range getCategoryStrings() {
		if str == name {
			return category, nil
		}
	}
	return NoCategory, errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%q is not a known category", s))
}

func (c Category) String() string {
	return getCategoryStrings()[c]
}

// ValidateForPreparation rejects NoCategory and unknown values.
func (c Category) ValidateForPreparation() error {
	if c != Normal && c != Priority {
		return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%d is not NORMAL or PRIORITY", c))
	}
	return nil
}

// SuggestCategory proposes Priority for large bills. The chef may still pick
// either category.
func SuggestCategory(finalBill float64) Category {
	if finalBill > PriorityBillThreshold {
		return Priority
	}
	return Normal
}
