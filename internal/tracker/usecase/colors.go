package usecase

import (
	"context"
	"sort"

	"calendar-time-tracker/internal/tracker"
)

// ListColors returns the provider palette, sorted by color ID for
// stable presentation.
func (uc *implUseCase) ListColors(ctx context.Context) (tracker.ListColorsOutput, error) {
	colors, err := uc.repo.Colors(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListColors: %v", err)
		return tracker.ListColorsOutput{}, err
	}

	sort.Slice(colors, func(i, j int) bool {
		// Numeric IDs ("1".."11") sort naturally by length then value.
		if len(colors[i].ID) != len(colors[j].ID) {
			return len(colors[i].ID) < len(colors[j].ID)
		}
		return colors[i].ID < colors[j].ID
	})

	return tracker.ListColorsOutput{Colors: colors}, nil
}
