package contract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/rdmanage/internal/domain"
)

// fieldErrors collects per-field problems found in a request body.
type fieldErrors []error

func (fe *fieldErrors) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		*fe = append(*fe, errRequired(field))
	}
}

func (fe *fieldErrors) notBlank(field string, value *string) {
	if value != nil && strings.TrimSpace(*value) == "" {
		*fe = append(*fe, fmt.Errorf("%s must not be blank", field))
	}
}

func (fe *fieldErrors) nonNegative(field string, value *int) {
	if value != nil && *value < 0 {
		*fe = append(*fe, fmt.Errorf("%s must be >= 0", field))
	}
}

// err joins the collected problems under domain.ErrValidation, or returns
// nil when there are none.
func (fe fieldErrors) err() error {
	if len(fe) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", domain.ErrValidation, errors.Join(fe...))
}

func errRequired(field string) error {
	return fmt.Errorf("%s is required", field)
}
