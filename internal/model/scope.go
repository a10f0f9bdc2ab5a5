package model

// Scope carries the authenticated caller identity through every operation.
// The user id is opaque and trusted verbatim: authentication happens upstream.
type Scope struct {
	UserID   string
	Username string
}
