package scaler

import "fmt"

// GeometryError reports a shape mismatch between data and coordinate
// arrays, detected before any pixel is written.
type GeometryError struct {
	Msg string
}

func (e *GeometryError) Error() string { return "scaler: geometry: " + e.Msg }

func geometryErrorf(format string, args ...any) error {
	return &GeometryError{Msg: fmt.Sprintf(format, args...)}
}

// ConfigError reports an unknown or out-of-domain configuration value,
// such as an unknown alpha function or a percentile outside (0, 100].
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return "scaler: config: " + e.Msg }

func configErrorf(format string, args ...any) error {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// DomainError reports a degenerate input that has no meaningful result,
// such as an all-NaN field or a non-invertible transform.
type DomainError struct {
	Msg string
}

func (e *DomainError) Error() string { return "scaler: domain: " + e.Msg }

func domainErrorf(format string, args ...any) error {
	return &DomainError{Msg: fmt.Sprintf(format, args...)}
}
