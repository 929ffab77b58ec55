package usecase

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"calendar-time-tracker/internal/tracker"
	"calendar-time-tracker/internal/tracker/repository"
	"calendar-time-tracker/pkg/log"
)

// locationCacheSize bounds the resolved-timezone cache. Calendars rarely
// use more than a handful of zones.
const locationCacheSize = 32

// implUseCase is the private implementation of tracker.UseCase.
type implUseCase struct {
	repo      repository.EventSource
	l         log.Logger
	locations *lru.Cache[string, *time.Location]
	now       func() time.Time // reference time for range presets
}

// New creates a new tracker UseCase implementation.
func New(repo repository.EventSource, l log.Logger) *implUseCase {
	locations, _ := lru.New[string, *time.Location](locationCacheSize)
	return &implUseCase{
		repo:      repo,
		l:         l,
		locations: locations,
		now:       time.Now,
	}
}

var _ tracker.UseCase = (*implUseCase)(nil)

// resolveLocation loads an IANA timezone, caching resolved locations.
func (uc *implUseCase) resolveLocation(name string) (*time.Location, error) {
	if loc, ok := uc.locations.Get(name); ok {
		return loc, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}
	uc.locations.Add(name, loc)
	return loc, nil
}
