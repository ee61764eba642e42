package analyzers

import (
	"fmt"

	"access-log-analyzer/internal/shared/svcerrors"
)

const (
	codeInputRequired = "ANL_1000"

	codeInternalReadFailed = "ANL_9000"
)

// errInputRequired returns an error when Analyze is called without a reader.
func errInputRequired() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInputRequired, "input is required", nil)
}

// errInternalReadFailed returns an error when the input cannot be read any further.
func errInternalReadFailed(line int64, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReadFailed, fmt.Errorf("readFailed after line %d: %w", line, cause))
}
