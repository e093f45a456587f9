// Package domain provides definitions of all entities.
package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrCardNotFound indicates that the card is not found.
	ErrCardNotFound = errors.New("card not found")
	// ErrCardOwnerMismatch indicates that the card belongs to another user.
	ErrCardOwnerMismatch = errors.New("card belongs to another user")
	// ErrOwnerNotFound indicates that the owner for the card is not found.
	ErrOwnerNotFound = errors.New("owner not found")
	// ErrAvailableLimitTooHigh indicates that the available limit exceeds the total limit.
	ErrAvailableLimitTooHigh = errors.New("available limit exceeds total limit")
	// ErrNegativeLimit indicates a negative card limit.
	ErrNegativeLimit = errors.New("limit must not be negative")
)

// Card holds a single credit card owned by one user.
//
// ID is assigned by the storage layer on insert and immutable afterwards.
// StatementDate and DueDate are calendar dates; the DD.MM.YYYY wire format
// is applied at the delivery edge only.
type Card struct {
	ID             string          `json:"id"`
	Owner          string          `json:"owner"`
	BankName       string          `json:"bank_name"`
	CardName       string          `json:"card_name"`
	CardNumber     string          `json:"card_number"`
	HolderName     string          `json:"holder_name"`
	TotalLimit     decimal.Decimal `json:"total_limit"`
	AvailableLimit decimal.Decimal `json:"available_limit"`
	StatementDate  time.Time       `json:"statement_date"`
	DueDate        time.Time       `json:"due_date"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CreateCardParams is the input data to create a card.
type CreateCardParams struct {
	Owner          string
	BankName       string
	CardName       string
	CardNumber     string
	HolderName     string
	TotalLimit     decimal.Decimal
	AvailableLimit decimal.Decimal
	StatementDate  time.Time
	DueDate        time.Time
}

// UpdateCardParams is the input data to update a card. All fields overwrite
// the stored record; the id and owner never change.
type UpdateCardParams struct {
	BankName       string
	CardName       string
	CardNumber     string
	HolderName     string
	TotalLimit     decimal.Decimal
	AvailableLimit decimal.Decimal
	StatementDate  time.Time
	DueDate        time.Time
}

// CardSummary holds aggregate totals over all cards of one user.
type CardSummary struct {
	TotalLimit     decimal.Decimal `json:"total_limit"`
	AvailableLimit decimal.Decimal `json:"available_limit"`
	TotalDebt      decimal.Decimal `json:"total_debt"`
}
