package queries

import (
	"errors"

	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/core/domain/model/livreur"
	"epicerie/internal/pkg/guard"
)

var (
	ErrListUnassignedLivreursQueryIsNotConstructed = errors.New(
		"ListUnassignedLivreursQuery must be created via NewListUnassignedLivreursQuery constructor",
	)
	ErrListAssignedLivreursQueryIsNotConstructed = errors.New(
		"ListAssignedLivreursQuery must be created via NewListAssignedLivreursQuery constructor",
	)
)

// ListUnassignedLivreursQuery retrieves every livreur outside any pool.
// This is a parameterless query; reading the list never mutates it, so
// repeating it yields the same pools.
type ListUnassignedLivreursQuery struct {
	guard guard.ConstructorGuard
}

// NewListUnassignedLivreursQuery creates a query for the unassigned list.
func NewListUnassignedLivreursQuery() ListUnassignedLivreursQuery {
	return ListUnassignedLivreursQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListUnassignedLivreursQuery) Validate() error {
	return q.guard.Validate(ErrListUnassignedLivreursQueryIsNotConstructed)
}

// ListAssignedLivreursQuery retrieves the pool of one épicerie.
type ListAssignedLivreursQuery struct { //nolint:recvcheck //using for validation
	epicerieID kernel.ID

	guard guard.ConstructorGuard
}

// NewListAssignedLivreursQuery creates a query for an épicerie's pool.
func NewListAssignedLivreursQuery(epicerieID kernel.ID) (ListAssignedLivreursQuery, error) {
	query := ListAssignedLivreursQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setEpicerieID(epicerieID); err != nil {
		return ListAssignedLivreursQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListAssignedLivreursQuery) Validate() error {
	return q.guard.Validate(ErrListAssignedLivreursQueryIsNotConstructed)
}

// EpicerieID returns the épicerie id from the query.
func (q ListAssignedLivreursQuery) EpicerieID() kernel.ID {
	return q.epicerieID
}

func (q *ListAssignedLivreursQuery) setEpicerieID(epicerieID kernel.ID) error {
	if err := epicerieID.Validate(); err != nil {
		return err
	}

	q.epicerieID = epicerieID
	return nil
}

// ListLivreursQueryResponse carries a driver list together with its
// freshness.
type ListLivreursQueryResponse struct {
	Livreurs  []*livreur.Livreur
	FromCache bool
}
