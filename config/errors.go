package config

import "errors"

var (
	// ErrMissingEnv indicates a ${VAR} reference to an unset variable.
	ErrMissingEnv = errors.New("config: missing required environment variables")

	// ErrUnknownField indicates a key that does not map to any setting.
	ErrUnknownField = errors.New("config: unknown field")

	// ErrUnknownCheckType indicates a check whose type is not tcp, http, memory or s3.
	ErrUnknownCheckType = errors.New("config: unknown check type")

	// ErrMissingField indicates a check without a field its type requires.
	ErrMissingField = errors.New("config: missing required field")

	// ErrInvalidTimeout indicates a timeout that is not a positive duration.
	ErrInvalidTimeout = errors.New("config: invalid timeout")

	// ErrInvalidThreshold indicates a memory threshold outside (0, 1].
	ErrInvalidThreshold = errors.New("config: invalid threshold")

	// ErrInvalidStatus indicates an expected HTTP status outside 100-599.
	ErrInvalidStatus = errors.New("config: invalid expected status")
)
