// Package livreur provides domain entities for delivery drivers in the
// épicerie marketplace.
//
// The package includes:
//   - Identity: A tagged variant distinguishing server-confirmed identities
//     from userId fallbacks and locally synthesized placeholders
//   - Livreur: The driver entity with contact details and availability
//
// Key business rules:
//   - A livreur is either unassigned or in exactly one épicerie's pool;
//     pool membership is owned by the marketplace server and this package
//     only models the projection of it
//   - Marketplace responses may omit the driver id; the identity variant makes
//     the fallback explicit instead of silently coalescing fields, so call
//     sites can tell "safe to persist" from "render-only"
package livreur
