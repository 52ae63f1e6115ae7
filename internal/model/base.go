package model

// ValidationStatus review state of an attendance record
type ValidationStatus string

const (
	StatusPending  ValidationStatus = "PENDING"
	StatusValid    ValidationStatus = "VALID"
	StatusRejected ValidationStatus = "REJECTED"
)

// IsValid reports whether s is one of the known statuses.
func (s ValidationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusValid, StatusRejected:
		return true
	}
	return false
}
