package epicerie

import (
	"errors"

	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/core/domain/model/livreur"
	"epicerie/internal/pkg/errs"
	"epicerie/internal/pkg/guard"
)

// Domain errors for épicerie operations.
var (
	// ErrNameIsRequired is returned when attempting to create an épicerie without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEpicerieIsNotConstructed is returned when using an improperly initialized Epicerie.
	ErrEpicerieIsNotConstructed = errors.New("Epicerie must be created via RestoreEpicerie constructor")
	// ErrLivreurAlreadyInPool is returned when adding a livreur that is already in the pool.
	ErrLivreurAlreadyInPool = errors.New("livreur is already in the pool")
	// ErrLivreurNotInPool is returned when removing a livreur that is not in the pool.
	ErrLivreurNotInPool = errors.New("livreur is not in the pool")
)

// Epicerie represents a grocer together with its pool of assigned livreurs.
//
// The pool is a projection of server state: every livreur is either unassigned
// or in exactly one épicerie's pool, and the marketplace server enforces that
// partition. The aggregate mutates its local pool only after the server has
// confirmed the corresponding change.
type Epicerie struct {
	// id uniquely identifies the épicerie
	id kernel.ID
	// name is the storefront name
	name string
	// pool holds the livreurs currently assigned to this épicerie
	pool []*livreur.Livreur
	// guard ensures the épicerie was properly constructed
	guard guard.ConstructorGuard
}

// RestoreEpicerie reconstructs an Epicerie with its assigned pool, from a
// server response or from the snapshot cache.
//
// Parameters:
//   - id: Unique identifier of the épicerie
//   - name: Storefront name (must be non-empty)
//   - pool: Livreurs currently assigned to this épicerie (may be empty)
//
// Returns:
//   - *Epicerie: Restored aggregate
//   - error: Validation error if any parameter is invalid
func RestoreEpicerie(id kernel.ID, name string, pool []*livreur.Livreur) (*Epicerie, error) {
	e := &Epicerie{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setName(name),
		e.setPool(pool),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestorePoolProjection reconstructs an Epicerie carrying only its id and
// assigned pool, for flows that need membership checks but have no storefront
// details at hand. Name() is empty on such projections.
func RestorePoolProjection(id kernel.ID, pool []*livreur.Livreur) (*Epicerie, error) {
	e := &Epicerie{
		name:  "",
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setPool(pool),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// Validate checks if the Epicerie was properly constructed.
// The zero value is invalid and fails this validation.
func (e *Epicerie) Validate() error {
	if e == nil {
		return ErrEpicerieIsNotConstructed
	}
	return e.guard.Validate(ErrEpicerieIsNotConstructed)
}

// ID returns the unique identifier of the épicerie.
func (e *Epicerie) ID() kernel.ID {
	return e.id
}

// Name returns the storefront name. Empty on pool projections.
func (e *Epicerie) Name() string {
	return e.name
}

// Pool returns the livreurs currently assigned to this épicerie.
// The returned slice is a copy to prevent external modification.
func (e *Epicerie) Pool() []*livreur.Livreur {
	out := make([]*livreur.Livreur, len(e.pool))
	copy(out, e.pool)
	return out
}

// PoolContains reports whether a livreur with the given identity is assigned
// to this épicerie.
func (e *Epicerie) PoolContains(identity livreur.Identity) bool {
	return e.findInPool(identity) >= 0
}

// AddToPool records a server-confirmed pool assignment in the local
// projection. The livreur must carry an addressable identity; placeholders
// minted for malformed list entries can never be assigned.
func (e *Epicerie) AddToPool(l *livreur.Livreur) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if !l.Identity().Persistable() {
		return errs.NewValueIsInvalidErrorWithCause("livreur",
			errors.New("a synthesized identity cannot join a pool"))
	}
	if e.PoolContains(l.Identity()) {
		return ErrLivreurAlreadyInPool
	}

	e.pool = append(e.pool, l)
	return nil
}

// RemoveFromPool records a server-confirmed unassignment in the local
// projection.
func (e *Epicerie) RemoveFromPool(identity livreur.Identity) error {
	idx := e.findInPool(identity)
	if idx < 0 {
		return ErrLivreurNotInPool
	}

	e.pool = append(e.pool[:idx], e.pool[idx+1:]...)
	return nil
}

func (e *Epicerie) findInPool(identity livreur.Identity) int {
	for i, member := range e.pool {
		if member.Identity().IsEqual(identity) {
			return i
		}
	}
	return -1
}

func (e *Epicerie) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	e.id = id
	return nil
}

func (e *Epicerie) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	e.name = name
	return nil
}

func (e *Epicerie) setPool(pool []*livreur.Livreur) error {
	for _, member := range pool {
		if err := member.Validate(); err != nil {
			return err
		}
	}

	e.pool = make([]*livreur.Livreur, len(pool))
	copy(e.pool, pool)
	return nil
}
