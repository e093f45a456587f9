// Package cardrepo manages repository layer of cards.
//
// Ownership is enforced at the storage boundary: every query that reads or
// mutates cards on behalf of a user constrains on the owner column.
package cardrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/okutan/card-vault/internal/domain"
	"github.com/okutan/card-vault/pkg/dbpkg"
	"github.com/okutan/card-vault/pkg/errorspkg"
)

// RepoPGS facilitates card repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns card RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const cardColumns = `
	id, owner, bank_name, card_name, card_number, holder_name,
	total_limit, available_limit, statement_date, due_date,
	created_at, updated_at`

func scanCard(row *sql.Row) (domain.Card, error) {
	var c domain.Card

	err := row.Scan(
		&c.ID,
		&c.Owner,
		&c.BankName,
		&c.CardName,
		&c.CardNumber,
		&c.HolderName,
		&c.TotalLimit,
		&c.AvailableLimit,
		&c.StatementDate,
		&c.DueDate,
		&c.CreatedAt,
		&c.UpdatedAt,
	)

	return c, err
}

// invalidTextRepresentation is raised when the given id is not a valid uuid.
// Such ids cannot name any stored card, so they read as not found.
const invalidTextRepresentation = "22P02"

func isBadID(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == invalidTextRepresentation
}

func mapConstraint(err error) (error, bool) {
	pqErr, ok := err.(*pq.Error)
	if !ok {
		return nil, false
	}

	switch pqErr.Constraint {
	case "cards_owner_fkey":
		return domain.ErrOwnerNotFound, true
	case "cards_available_within_total":
		return domain.ErrAvailableLimitTooHigh, true
	case "cards_total_limit_check", "cards_available_limit_check":
		return domain.ErrNegativeLimit, true
	}

	return nil, false
}

const createQuery = `
INSERT INTO cards (
	owner, bank_name, card_name, card_number, holder_name,
	total_limit, available_limit, statement_date, due_date
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9
) RETURNING` + cardColumns

// Create creates the card and then returns it. The id and both timestamps
// are assigned by the database.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateCardParams) (domain.Card, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.Owner,
		arg.BankName,
		arg.CardName,
		arg.CardNumber,
		arg.HolderName,
		arg.TotalLimit,
		arg.AvailableLimit,
		arg.StatementDate,
		arg.DueDate,
	)

	c, err := scanCard(row)
	if err != nil {
		l.Error().Err(err).Send()

		if mapped, ok := mapConstraint(err); ok {
			return c, mapped
		}

		return c, errorspkg.ErrInternal
	}

	return c, nil
}

const getQuery = `
SELECT` + cardColumns + `
FROM cards
WHERE id = $1
`

// Get returns the card with the given id regardless of its owner.
// Callers that act on behalf of a user must check the owner themselves.
func (r *RepoPGS) Get(ctx context.Context, id string) (domain.Card, error) {
	l := zerolog.Ctx(ctx)

	c, err := scanCard(r.db.QueryRowContext(ctx, getQuery, id))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows || isBadID(err) {
			return c, domain.ErrCardNotFound
		}

		return c, errorspkg.ErrInternal
	}

	return c, nil
}

const listQuery = `
SELECT` + cardColumns + `
FROM cards
WHERE owner = $1
ORDER BY created_at, id
`

// List returns all cards of the given owner ordered by creation time.
func (r *RepoPGS) List(ctx context.Context, owner string) ([]domain.Card, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, owner)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Card{}

	for rows.Next() {
		var c domain.Card

		err := rows.Scan(
			&c.ID,
			&c.Owner,
			&c.BankName,
			&c.CardName,
			&c.CardNumber,
			&c.HolderName,
			&c.TotalLimit,
			&c.AvailableLimit,
			&c.StatementDate,
			&c.DueDate,
			&c.CreatedAt,
			&c.UpdatedAt,
		)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, c)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const updateQuery = `
UPDATE cards
SET
	bank_name = $3,
	card_name = $4,
	card_number = $5,
	holder_name = $6,
	total_limit = $7,
	available_limit = $8,
	statement_date = $9,
	due_date = $10,
	updated_at = now()
WHERE id = $1 AND owner = $2
RETURNING` + cardColumns

// Update overwrites the card with the given id and owner and returns it.
func (r *RepoPGS) Update(ctx context.Context, id, owner string, arg domain.UpdateCardParams) (domain.Card, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateQuery,
		id,
		owner,
		arg.BankName,
		arg.CardName,
		arg.CardNumber,
		arg.HolderName,
		arg.TotalLimit,
		arg.AvailableLimit,
		arg.StatementDate,
		arg.DueDate,
	)

	c, err := scanCard(row)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows || isBadID(err) {
			return c, domain.ErrCardNotFound
		}

		if mapped, ok := mapConstraint(err); ok {
			return c, mapped
		}

		return c, errorspkg.ErrInternal
	}

	return c, nil
}

const deleteQuery = `
DELETE FROM cards
WHERE id = $1 AND owner = $2
RETURNING id
`

// Delete removes the card with the given id and owner. Deleting a card that
// does not exist returns domain.ErrCardNotFound.
func (r *RepoPGS) Delete(ctx context.Context, id, owner string) error {
	l := zerolog.Ctx(ctx)

	var deleted string

	err := r.db.QueryRowContext(ctx, deleteQuery, id, owner).Scan(&deleted)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows || isBadID(err) {
			return domain.ErrCardNotFound
		}

		return errorspkg.ErrInternal
	}

	return nil
}
