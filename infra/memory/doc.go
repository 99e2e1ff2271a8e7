// Package memory provides the default order status store: a plain Go map
// guarded by a read/write mutex. It keeps nothing beyond the lifetime of
// the process.
package memory
