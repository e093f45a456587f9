// Package helpers provides random entities for tests.
package helpers

import (
	"time"

	"github.com/google/uuid"

	"github.com/okutan/card-vault/internal/domain"
	"github.com/okutan/card-vault/pkg/randompkg"
)

// RandomCard returns a random card owned by the given user.
func RandomCard(owner string) domain.Card {
	total := randompkg.MoneyAmountBetween(10_000, 100_000)

	return domain.Card{
		ID:             uuid.NewString(),
		Owner:          owner,
		BankName:       randompkg.BankName(),
		CardName:       randompkg.String(8),
		CardNumber:     randompkg.CardNumber(),
		HolderName:     randompkg.Owner(),
		TotalLimit:     total,
		AvailableLimit: randompkg.MoneyAmountBetween(0, 10_000),
		StatementDate:  randompkg.DateInYear(),
		DueDate:        randompkg.DateInYear(),
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}
}

// RandomCreateCardParams returns random card creation input for the given owner.
func RandomCreateCardParams(owner string) domain.CreateCardParams {
	c := RandomCard(owner)

	return domain.CreateCardParams{
		Owner:          c.Owner,
		BankName:       c.BankName,
		CardName:       c.CardName,
		CardNumber:     c.CardNumber,
		HolderName:     c.HolderName,
		TotalLimit:     c.TotalLimit,
		AvailableLimit: c.AvailableLimit,
		StatementDate:  c.StatementDate,
		DueDate:        c.DueDate,
	}
}
