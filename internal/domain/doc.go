// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todo, domain/tag,
// domain/user, domain/notice). This root package holds sentinel errors, the
// field-level ValidationError, and the closed error taxonomy (Kind, Error)
// that every layer normalizes failures into.
package domain
