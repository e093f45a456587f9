// Package cardservice manages business logic layer of cards.
package cardservice

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/okutan/card-vault/internal/domain"
)

// Repo provides data access layer interface needed by card service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package cardservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateCardParams) (domain.Card, error)
	Get(ctx context.Context, id string) (domain.Card, error)
	List(ctx context.Context, owner string) ([]domain.Card, error)
	Update(ctx context.Context, id, owner string, arg domain.UpdateCardParams) (domain.Card, error)
	Delete(ctx context.Context, id, owner string) error
}

// Service facilitates card service layer logic.
type Service struct {
	repo Repo
}

// New returns card service struct to manage card business logic.
func New(cr Repo) *Service {
	return &Service{repo: cr}
}

func checkLimits(total, available decimal.Decimal) error {
	if total.IsNegative() || available.IsNegative() {
		return domain.ErrNegativeLimit
	}

	if available.GreaterThan(total) {
		return domain.ErrAvailableLimitTooHigh
	}

	return nil
}

// Create creates and returns a card for the given owner.
func (s *Service) Create(ctx context.Context, arg domain.CreateCardParams) (domain.Card, error) {
	if err := checkLimits(arg.TotalLimit, arg.AvailableLimit); err != nil {
		return domain.Card{}, err
	}

	return s.repo.Create(ctx, arg)
}

// Get returns the card with the given id if it belongs to the given owner.
func (s *Service) Get(ctx context.Context, id, owner string) (domain.Card, error) {
	l := zerolog.Ctx(ctx)

	card, err := s.repo.Get(ctx, id)
	if err != nil {
		return card, err
	}

	if card.Owner != owner {
		l.Warn().Str("card_id", id).Str("user", owner).Msg("card owner mismatch")
		return domain.Card{}, domain.ErrCardOwnerMismatch
	}

	return card, nil
}

// List returns all cards owned by the given user.
func (s *Service) List(ctx context.Context, owner string) ([]domain.Card, error) {
	return s.repo.List(ctx, owner)
}

// Update overwrites the card with the given id on behalf of the given owner.
// The current record is fetched first and the edit is rejected before any
// write when it belongs to another user.
func (s *Service) Update(ctx context.Context, id, owner string, arg domain.UpdateCardParams) (domain.Card, error) {
	if err := checkLimits(arg.TotalLimit, arg.AvailableLimit); err != nil {
		return domain.Card{}, err
	}

	if _, err := s.Get(ctx, id, owner); err != nil {
		return domain.Card{}, err
	}

	return s.repo.Update(ctx, id, owner, arg)
}

// Delete removes the card with the given id on behalf of the given owner.
func (s *Service) Delete(ctx context.Context, id, owner string) error {
	return s.repo.Delete(ctx, id, owner)
}

// Summarize returns aggregate limit totals over all cards of the given owner.
func (s *Service) Summarize(ctx context.Context, owner string) (domain.CardSummary, error) {
	cards, err := s.repo.List(ctx, owner)
	if err != nil {
		return domain.CardSummary{}, err
	}

	summary := domain.CardSummary{
		TotalLimit:     decimal.Zero,
		AvailableLimit: decimal.Zero,
	}

	for _, c := range cards {
		summary.TotalLimit = summary.TotalLimit.Add(c.TotalLimit)
		summary.AvailableLimit = summary.AvailableLimit.Add(c.AvailableLimit)
	}

	summary.TotalDebt = summary.TotalLimit.Sub(summary.AvailableLimit)

	return summary, nil
}
