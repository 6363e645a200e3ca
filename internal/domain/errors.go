package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientData   = errors.New("insufficient data")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrUserNotFound       = errors.New("user not found")
)

// InsufficientDataError indica que el historial no alcanza el minimo del reporte.
type InsufficientDataError struct {
	Report    ReportKind
	Required  int
	Available int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s report: insufficient data (have %d, need %d)", e.Report, e.Available, e.Required)
}

func (e *InsufficientDataError) Is(target error) bool {
	return target == ErrInsufficientData
}

// NewInsufficientData construye el error estructurado para un reporte.
func NewInsufficientData(report ReportKind, required, available int) error {
	return &InsufficientDataError{Report: report, Required: required, Available: available}
}
