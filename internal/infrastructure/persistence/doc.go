// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer for users, partners, the plan catalog,
// subscriptions, billing records and support tickets. Repositories
// translate driver errors into apperr sentinels so the HTTP edge can map
// them to status codes.
package persistence
