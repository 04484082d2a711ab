package services

import (
	"fmt"
	"strings"

	"github.com/vncsmyrnk/kairos/internal/core/domain"
)

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", domain.ErrValidation, field)
	}
	return nil
}

func requireSlots(field string, slots []string) error {
	if len(slots) == 0 {
		return fmt.Errorf("%w: at least one %s entry is required", domain.ErrValidation, field)
	}
	return nil
}

// internalError tags an unexpected storage or generator failure so callers
// can match domain.ErrInternal while the cause stays available for logging.
func internalError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrInternal, op, err)
}
