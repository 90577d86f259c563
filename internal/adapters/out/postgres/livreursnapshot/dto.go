// Package livreursnapshot persists the cached pool projection of an épicerie.
// The pool is replaced wholesale from confirmed list responses; entries with
// synthesized identities are render-only and never reach the table.
package livreursnapshot

import (
	"time"

	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/core/domain/model/livreur"
)

const (
	identityKindConfirmed = "confirmed"
	identityKindFallback  = "fallback"
)

// LivreurPoolDTO represents one cached pool member. The composite key keeps
// a livreur unique within an épicerie's pool.
type LivreurPoolDTO struct {
	EpicerieID   int64 `gorm:"primaryKey"`
	LivreurID    int64 `gorm:"primaryKey"`
	IdentityKind string
	Name         string
	Phone        string
	Available    bool
	Latitude     *float64
	Longitude    *float64
	UpdatedAt    time.Time
}

// TableName specifies the database table name for pool snapshots.
func (LivreurPoolDTO) TableName() string {
	return "livreur_pool_snapshots"
}

// fromDomain converts a pool member to its database representation.
// Returns false for entries that must not be persisted.
func fromDomain(epicerieID kernel.ID, member *livreur.Livreur) (LivreurPoolDTO, bool) {
	identity := member.Identity()
	if !identity.Persistable() {
		return LivreurPoolDTO{}, false
	}

	livreurID, err := identity.NumericID()
	if err != nil {
		return LivreurPoolDTO{}, false
	}

	kind := identityKindConfirmed
	if identity.Kind() == livreur.IdentityFallback {
		kind = identityKindFallback
	}

	var latitude, longitude *float64
	if position := member.Position(); position != nil {
		lat, lng := position.Latitude, position.Longitude
		latitude, longitude = &lat, &lng
	}

	return LivreurPoolDTO{
		EpicerieID:   epicerieID.Value(),
		LivreurID:    livreurID.Value(),
		IdentityKind: kind,
		Name:         member.Name(),
		Phone:        member.Phone(),
		Available:    member.IsAvailable(),
		Latitude:     latitude,
		Longitude:    longitude,
		UpdatedAt:    time.Now(),
	}, true
}

// toDomain converts a database row back to a pool member.
func toDomain(dto LivreurPoolDTO) (*livreur.Livreur, error) {
	livreurID, err := kernel.NewID(dto.LivreurID)
	if err != nil {
		return nil, err
	}

	var identity livreur.Identity
	if dto.IdentityKind == identityKindFallback {
		identity, err = livreur.FallbackIdentity(livreurID)
	} else {
		identity, err = livreur.ConfirmedIdentity(livreurID)
	}
	if err != nil {
		return nil, err
	}

	var position *livreur.Position
	if dto.Latitude != nil && dto.Longitude != nil {
		position = &livreur.Position{Latitude: *dto.Latitude, Longitude: *dto.Longitude}
	}

	return livreur.RestoreLivreur(identity, dto.Name, dto.Phone, dto.Available, position)
}
