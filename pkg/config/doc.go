/*
Package config implements the layered configuration system that drives
the texforge rendering engine.

Configuration lives in three tiers: built-in system defaults (optionally
extended by a loaded system file), a document layer set wholesale from a
document's own configuration, and runtime registrations which are always
document-scoped. Every mutation rebuilds one resolved configuration from
a fresh copy of the system layer, merging command definitions
field-by-field and parameters key-by-key, then substituting
$variables.<name>$ references inside every LaTeX template. Commands and
parameters are never deleted, only superseded by a higher tier.

The resolved configuration can be exported as indented JSON, written
atomically to disk, or persisted as a named snapshot in a SQLite
database via Store.
*/
package config
