// Package repositories holds the persistence ports of the egg store.
//
// Each port has two variants selected once at startup: a Mongo-backed
// repository and a null repository whose operations report ErrUnavailable.
// Controllers receive the interface and decide what degraded behaviour
// looks like (demo catalogue, placeholder order id); repositories never
// fall back on their own.
package repositories

import "errors"

// ErrUnavailable means no document store is behind the repository, either
// because none was configured or because it was unreachable at startup.
var ErrUnavailable = errors.New("repositories: store unavailable")

// ErrNotFound means the referenced document does not exist. Malformed
// ObjectID strings are reported as ErrNotFound too, never as an internal
// error.
var ErrNotFound = errors.New("repositories: not found")
