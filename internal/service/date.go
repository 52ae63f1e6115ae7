package service

import (
	"fmt"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

func validateDate(s string) error {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return nil
}

// validateRange checks both bounds; ok is false when start is after end.
func validateRange(start, end string) (ok bool, err error) {
	if err := validateDate(start); err != nil {
		return false, err
	}
	if err := validateDate(end); err != nil {
		return false, err
	}
	return start <= end, nil
}
