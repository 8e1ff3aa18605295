package category

import (
	"context"
)

type Service interface {
	Counts(ctx context.Context) ([]Count, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Counts returns one entry per category, in display order, including empty ones.
func (s *service) Counts(ctx context.Context) ([]Count, error) {
	counts := make([]Count, 0, len(all))
	for _, c := range all {
		n, err := s.repo.CountProducts(ctx, c)
		if err != nil {
			return nil, err
		}
		counts = append(counts, Count{Name: c, Count: n})
	}
	return counts, nil
}
