package download

import (
	"context"

	"github.com/rxtech-lab/argo-data/pkg/errors"
	"github.com/rxtech-lab/argo-data/pkg/marketdata"
)

// RequirePairs fails with a configuration error when pairs is empty.
func RequirePairs(pairs []string) error {
	if len(pairs) == 0 {
		return errors.New(errors.ErrCodeInvalidConfiguration, "no pairs configured, set pairs in the config file or pass --pairs")
	}

	return nil
}

// ValidateRequest checks every pair and then every timeframe against src and
// stops at the first failure, which is returned unchanged. No data is fetched.
func ValidateRequest(ctx context.Context, src DataSource, pairs []string, timeframes []marketdata.Timeframe) error {
	if err := RequirePairs(pairs); err != nil {
		return err
	}

	for _, pair := range pairs {
		if err := src.ValidatePair(ctx, pair); err != nil {
			return err
		}
	}

	for _, timeframe := range timeframes {
		if err := src.ValidateTimeframe(timeframe); err != nil {
			return err
		}
	}

	return nil
}
