package selector

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"orchestrator/internal/entities"
)

// UsageWindow окно, за которое считается нагрузка курьера на направлении.
const UsageWindow = 7 * 24 * time.Hour

type Option func(*Selector)

func WithClock(now func() time.Time) Option {
	return func(s *Selector) {
		s.now = now
	}
}

type Selector struct {
	repository CandidateRepository
	now        func() time.Time
}

func New(repository CandidateRepository, opts ...Option) *Selector {
	s := &Selector{
		repository: repository,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Find выбирает наименее загруженного курьера за UsageWindow, при равенстве - по имени.
// Любая ошибка поиска превращается в ErrNoCourierAvailable.
func (s *Selector) Find(ctx context.Context, shipmentTypeID int64, origin, destination string) (*entities.Courier, error) {
	origin = strings.TrimSpace(origin)
	destination = strings.TrimSpace(destination)
	if shipmentTypeID <= 0 || origin == "" || destination == "" {
		return nil, ErrNoCourierAvailable
	}

	since := s.now().UTC().Add(-UsageWindow)
	candidates, err := s.repository.FindCandidates(ctx, shipmentTypeID, origin, destination, since)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoCourierAvailable, err)
	}

	switch len(candidates) {
	case 0:
		return nil, ErrNoCourierAvailable
	case 1:
		selected := candidates[0].Courier
		return &selected, nil
	}

	// репозиторий уже сортирует, но порядок здесь часть контракта
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].UsageCount != candidates[j].UsageCount {
			return candidates[i].UsageCount < candidates[j].UsageCount
		}
		return strings.ToLower(candidates[i].Courier.Name) < strings.ToLower(candidates[j].Courier.Name)
	})

	selected := candidates[0].Courier
	return &selected, nil
}
