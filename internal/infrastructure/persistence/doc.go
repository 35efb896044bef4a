// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer on top of SQLite or PostgreSQL, converting
// between storage models and domain entities, and exposes them as a
// transactional store.
package persistence
