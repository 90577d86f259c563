// Package services provides domain services that orchestrate business
// operations across multiple aggregates in the épicerie marketplace. It
// implements workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - LivreurAssigner: A domain service validating order-to-livreur assignment
//     against the owning épicerie's pool
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
