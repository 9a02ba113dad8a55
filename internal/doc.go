// Package internal holds the Gatherly server internals.
//
// The internal tree is organized by responsibility:
// - api: HTTP handlers, middleware, problem responses, and routing
// - domain: business logic and domain models (events, sessions, ids)
// - storage: database access and repositories (pgx + Postgres)
// - auth, config, metrics, telemetry, validation: shared infrastructure
//
// Code in internal/ is not meant for external import.
package internal
