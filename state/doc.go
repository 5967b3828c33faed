// Package state persists parameter sets: an opaque binary blob for host
// session state and human-editable JSON presets keyed by parameter name.
package state
