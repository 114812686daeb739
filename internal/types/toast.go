package types

import "time"

// Toast represents a corner notification message
type Toast struct {
	Level   ToastLevel
	Message string
	Expires time.Time
}

// ToastLevel indicates the severity of a toast
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastWarning
	ToastError
)

// NewToast creates a toast that expires ttl from now
func NewToast(level ToastLevel, message string, ttl time.Duration) Toast {
	return Toast{
		Level:   level,
		Message: message,
		Expires: time.Now().Add(ttl),
	}
}
