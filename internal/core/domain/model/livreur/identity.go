package livreur

import (
	"errors"
	"fmt"

	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/pkg/errs"
	"epicerie/internal/pkg/guard"

	"github.com/google/uuid"
)

// ErrIdentityIsNotConstructed is returned when an Identity was not created
// through one of its constructor functions.
var ErrIdentityIsNotConstructed = errors.New(
	"Identity must be created via ConfirmedIdentity, FallbackIdentity or SynthesizedIdentity")

// ErrIdentityIsNotAddressable is returned when an operation needs a numeric
// identifier but the identity is a locally synthesized placeholder.
var ErrIdentityIsNotAddressable = errors.New("a synthesized identity cannot address server requests")

// IdentityKind tags the origin of a livreur identity.
type IdentityKind int

const (
	// IdentityUnknown represents an invalid or undefined identity.
	IdentityUnknown IdentityKind = iota

	// IdentityConfirmed is a server-assigned livreur id. Safe to persist.
	IdentityConfirmed

	// IdentityFallback is derived from the livreur's user id because the
	// response omitted the livreur id. Usable for requests, but flagged so
	// readers know it is second-hand.
	IdentityFallback

	// IdentitySynthesized is a locally generated placeholder minted when a
	// response carried neither id nor user id. Acceptable only for ephemeral
	// list rendering; never persisted as authoritative identity and never
	// sent back to the server.
	IdentitySynthesized
)

// String returns the human-readable name of the identity kind.
func (k IdentityKind) String() string {
	switch k {
	case IdentityConfirmed:
		return "confirmed"
	case IdentityFallback:
		return "fallback"
	case IdentitySynthesized:
		return "synthesized"
	default:
		return "unknown"
	}
}

// Identity is a tagged variant for livreur identities. Marketplace responses
// sometimes omit the livreur id and carry only a user id, or nothing at all;
// instead of coalescing those fields silently, the variant keeps the origin
// explicit so call sites can decide what each identity may be used for.
type Identity struct {
	kind    IdentityKind
	id      kernel.ID
	localID uuid.UUID
	guard   guard.ConstructorGuard
}

// ConfirmedIdentity creates an identity from a server-assigned livreur id.
func ConfirmedIdentity(id kernel.ID) (Identity, error) {
	if err := id.Validate(); err != nil {
		return Identity{}, err
	}
	return Identity{kind: IdentityConfirmed, id: id, guard: guard.NewConstructorGuard()}, nil
}

// FallbackIdentity creates an identity backfilled from the livreur's user id.
func FallbackIdentity(userID kernel.ID) (Identity, error) {
	if err := userID.Validate(); err != nil {
		return Identity{}, err
	}
	return Identity{kind: IdentityFallback, id: userID, guard: guard.NewConstructorGuard()}, nil
}

// SynthesizedIdentity mints a locally-unique placeholder for a livreur whose
// response entry carried neither an id nor a user id. The entry stays visible
// in lists instead of being dropped, but the placeholder is render-only.
func SynthesizedIdentity() Identity {
	return Identity{kind: IdentitySynthesized, localID: uuid.New(), guard: guard.NewConstructorGuard()}
}

// Kind returns the origin tag of the identity.
func (i Identity) Kind() IdentityKind {
	return i.kind
}

// NumericID returns the numeric identifier for confirmed and fallback
// identities. Synthesized identities have none.
func (i Identity) NumericID() (kernel.ID, error) {
	switch i.kind {
	case IdentityConfirmed, IdentityFallback:
		return i.id, nil
	case IdentitySynthesized:
		return kernel.ID{}, ErrIdentityIsNotAddressable
	default:
		return kernel.ID{}, ErrIdentityIsNotConstructed
	}
}

// Persistable reports whether the identity may be written to the snapshot
// cache. Synthesized placeholders are render-only.
func (i Identity) Persistable() bool {
	return i.kind == IdentityConfirmed || i.kind == IdentityFallback
}

// IsEqual compares two identities. Confirmed and fallback identities compare
// by numeric id regardless of kind (a fallback for user 5 refers to the same
// livreur as a later confirmed id 5); synthesized identities compare by their
// local placeholder.
func (i Identity) IsEqual(other Identity) bool {
	if i.kind == IdentitySynthesized || other.kind == IdentitySynthesized {
		return i.kind == other.kind && i.localID == other.localID
	}
	return i.id.IsEqual(other.id)
}

// String returns a display representation: the numeric id for confirmed and
// fallback identities, or a "local-" prefixed placeholder.
func (i Identity) String() string {
	if i.kind == IdentitySynthesized {
		return fmt.Sprintf("local-%s", i.localID.String())
	}
	return i.id.String()
}

// Validate checks that the identity was created through a constructor and is
// internally consistent.
func (i Identity) Validate() error {
	if err := i.guard.Validate(ErrIdentityIsNotConstructed); err != nil {
		return err
	}

	switch i.kind {
	case IdentityConfirmed, IdentityFallback:
		return i.id.Validate()
	case IdentitySynthesized:
		if i.localID == uuid.Nil {
			return errs.NewValueIsRequiredError("localID")
		}
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("identity",
			fmt.Errorf("%d is not a valid identity kind", i.kind))
	}
}
