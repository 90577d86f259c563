package livreur

import (
	"errors"

	"epicerie/internal/pkg/errs"
	"epicerie/internal/pkg/guard"
)

// Domain errors for livreur operations.
var (
	// ErrNameIsRequired is returned when attempting to create a livreur without a display name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrLivreurIsNotConstructed is returned when using an improperly initialized Livreur.
	ErrLivreurIsNotConstructed = errors.New("Livreur must be created via NewLivreur constructor")
)

// Position is an optional last-known location reported by the livreur's device.
type Position struct {
	// Latitude in decimal degrees.
	Latitude float64
	// Longitude in decimal degrees.
	Longitude float64
}

// Validate checks that the coordinates are inside the valid WGS84 ranges.
func (p Position) Validate() error {
	if p.Latitude < -90 || p.Latitude > 90 {
		return errs.NewValueIsOutOfRangeError("latitude", p.Latitude, -90, 90)
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return errs.NewValueIsOutOfRangeError("longitude", p.Longitude, -180, 180)
	}
	return nil
}

// Livreur represents a delivery driver as projected from marketplace responses.
//
// The entity is deliberately thin: pool membership and order assignment are
// owned by the marketplace server, so a Livreur here carries only what the
// mobile clients need to render and address a driver.
//
// Business rules:
//   - Identity must be one of the three constructor-produced variants
//   - Display name must be non-empty (lists would otherwise show blank rows)
//   - Position is optional; many drivers never report one
type Livreur struct {
	// identity is the tagged identity variant for this driver
	identity Identity
	// name is the display name shown in driver lists
	name string
	// phone is the contact number, may be empty
	phone string
	// available reports whether the driver accepts new deliveries
	available bool
	// position is the optional last-known device location
	position *Position
	// guard ensures the livreur was properly constructed
	guard guard.ConstructorGuard
}

// NewLivreur creates a Livreur from a marketplace response entry.
//
// Parameters:
//   - identity: Identity variant produced by the response normalization
//   - name: Display name (must be non-empty)
//   - phone: Contact number (may be empty)
//   - available: Whether the driver currently accepts deliveries
//   - position: Optional last-known coordinates (nil when not reported)
//
// Returns:
//   - *Livreur: A fully initialized livreur
//   - error: Validation error if any parameter is invalid (aggregated for multiple issues)
func NewLivreur(identity Identity, name string, phone string, available bool, position *Position) (*Livreur, error) {
	l := &Livreur{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setIdentity(identity),
		l.setName(name),
		l.setPosition(position),
	); err != nil {
		return nil, err
	}
	l.phone = phone

	return l, nil
}

// RestoreLivreur reconstructs a Livreur from the snapshot cache.
// Only persistable identities ever reach the cache, so restoration rejects
// synthesized placeholders.
func RestoreLivreur(identity Identity, name string, phone string, available bool, position *Position) (*Livreur, error) {
	if identity.Kind() == IdentitySynthesized {
		return nil, errs.NewValueIsInvalidErrorWithCause("identity",
			errors.New("synthesized identities are never persisted"))
	}
	return NewLivreur(identity, name, phone, available, position)
}

// IsEqual compares two livreurs by identity.
func (l *Livreur) IsEqual(other *Livreur) bool {
	if other == nil {
		return false
	}
	return l.identity.IsEqual(other.identity)
}

// Validate checks if the Livreur was properly constructed.
// The zero value is invalid and fails this validation.
func (l *Livreur) Validate() error {
	if l == nil {
		return ErrLivreurIsNotConstructed
	}
	return l.guard.Validate(ErrLivreurIsNotConstructed)
}

// Identity returns the identity variant of the livreur.
func (l *Livreur) Identity() Identity {
	return l.identity
}

// Name returns the display name of the livreur.
func (l *Livreur) Name() string {
	return l.name
}

// Phone returns the contact number, which may be empty.
func (l *Livreur) Phone() string {
	return l.phone
}

// IsAvailable reports whether the livreur accepts new deliveries.
func (l *Livreur) IsAvailable() bool {
	return l.available
}

// Position returns the optional last-known coordinates, or nil.
func (l *Livreur) Position() *Position {
	return l.position
}

func (l *Livreur) setIdentity(identity Identity) error {
	if err := identity.Validate(); err != nil {
		return err
	}

	l.identity = identity
	return nil
}

func (l *Livreur) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	l.name = name
	return nil
}

func (l *Livreur) setPosition(position *Position) error {
	if position == nil {
		return nil
	}
	if err := position.Validate(); err != nil {
		return err
	}

	p := *position
	l.position = &p
	return nil
}
