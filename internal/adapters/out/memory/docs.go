// Package memory keeps the authoritative runtime state of the service.
//
// State holds every entity collection. Changes go through a UnitOfWork,
// which serializes writers on a single lock and applies its staged changes
// atomically on Commit. Readers take consistent deep copies via
// State.Snapshot without waiting for an open unit of work.
//
// Durable persistence is a separate concern: a ports.EntityStore loads a
// snapshot into State.Restore at startup and saves State.Snapshot on request.
package memory
