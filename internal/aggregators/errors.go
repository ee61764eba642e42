package aggregators

import (
	"errors"
	"fmt"

	"access-log-analyzer/internal/shared/svcerrors"
)

const (
	codeInternalAggregatorSealed     = "AGG_9000"
	codeInternalAggregatorSealFailed = "AGG_9001"
)

// ErrAggregatorSealed is returned by Record or Seal once the aggregator has been sealed.
var ErrAggregatorSealed = errors.New("aggregator already sealed")

// errInternalAggregatorSealed returns an error when a record arrives after the report was sealed.
func errInternalAggregatorSealed(day string) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalAggregatorSealed, fmt.Errorf("recordAfterSeal day=%q: %w", day, ErrAggregatorSealed))
}

// errInternalAggregatorSealFailed returns an error when the aggregator is sealed a second time.
func errInternalAggregatorSealFailed() *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalAggregatorSealFailed, fmt.Errorf("sealTwice: %w", ErrAggregatorSealed))
}
