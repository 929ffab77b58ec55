package tracker

import "context"

// UseCase defines the business logic interface for the tracker domain.
type UseCase interface {
	// Summarize fetches events for the requested range, classifies them,
	// and returns the per-week, per-category time breakdown.
	Summarize(ctx context.Context, input SummarizeInput) (SummarizeOutput, error)

	// ListColors returns the provider's event color palette, used to
	// build the color-tag configuration.
	ListColors(ctx context.Context) (ListColorsOutput, error)
}
