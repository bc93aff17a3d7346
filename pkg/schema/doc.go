// Package schema holds the declarative definitions that describe every data
// shape exported by go-uispec: component props, integration payloads, and the
// field specifications the validator walks. Definitions are plain data and are
// immutable once the owning Registry has been resolved.
package schema
