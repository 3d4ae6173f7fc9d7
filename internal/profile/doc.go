// Package profile loads the user-level defaults file (~/.cratekit.toml) that
// seeds crate metadata: author name, email, GitHub handle, preferred license,
// and organization. A missing or malformed profile is never an error — it
// degrades to "no profile" so scaffolding always proceeds.
package profile
