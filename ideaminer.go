// Package ideaminer mines browser bookmark exports for weekend-buildable
// side-project ideas. It flattens a bookmark folder tree into records,
// assigns each a category by weighted keyword matching, extracts concept
// keywords, and ranks everything by a deterministic buildability score.
//
// This package contains domain types and pure analysis functions following
// Ben Johnson's Standard Package Layout. Implementations with external
// dependencies live in subdirectories named after their primary dependency
// or input format (e.g., sqlite/, chrome/, netscape/, xbel/).
package ideaminer
