// Package session holds per-client interaction state for the suggestion and
// instruction flows.
//
// Each flow is a Slot that moves Idle -> Loading -> Success or Failed. Every
// request bumps the slot's generation; when a result arrives it is committed
// only if its generation is still current, so a superseded request can never
// overwrite the outcome of a newer one. Superseded requests are also canceled.
//
// Sessions live in memory only and expire after a period of inactivity.
package session
