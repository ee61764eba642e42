package app

import (
	"errors"
	"fmt"

	"access-log-analyzer/internal/shared/svcerrors"
	"access-log-analyzer/internal/sources"
)

const (
	codeSourceNotFound     = "SRC_1000"
	codeSourceNotAFile     = "SRC_1001"
	codeSourceNotReadable  = "SRC_1002"
	codeSourcePathRequired = "SRC_1003"

	codeInternalRenderFailed       = "APP_9000"
	codeInternalMetricsWriteFailed = "APP_9001"
)

// errSourceOpenFailed maps a sources error to the ServiceError reported to the user.
func errSourceOpenFailed(path string, cause error) *svcerrors.ServiceError {
	switch {
	case errors.Is(cause, sources.ErrInvalidPath):
		return svcerrors.NewInvalidArgumentError(codeSourcePathRequired, "a file path is required", cause)
	case errors.Is(cause, sources.ErrFileNotFound):
		return svcerrors.NewNotFoundError(codeSourceNotFound, fmt.Sprintf("error opening file '%s'", path), cause)
	case errors.Is(cause, sources.ErrNotRegularFile):
		return svcerrors.NewInvalidArgumentError(codeSourceNotAFile, fmt.Sprintf("error opening file '%s'", path), cause)
	default:
		return svcerrors.NewInvalidArgumentError(codeSourceNotReadable, fmt.Sprintf("error opening file '%s'", path), cause)
	}
}

// errInternalRenderFailed returns an error when the report cannot be written.
func errInternalRenderFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRenderFailed, fmt.Errorf("renderFailed: %w", cause))
}

// errInternalMetricsWriteFailed returns an error when the metrics textfile cannot be written.
func errInternalMetricsWriteFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalMetricsWriteFailed, fmt.Errorf("metricsWriteFailed: %w", cause))
}
