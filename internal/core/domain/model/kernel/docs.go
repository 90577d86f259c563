// Package kernel provides core domain primitives for the épicerie gateway.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - ID: A value object for the numeric, server-assigned identifiers used by the
//     marketplace API for orders, clients, épiceries and livreurs
//   - Role: A value object for the three actor roles (client, épicier, livreur)
//     that gate order lifecycle transitions
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
