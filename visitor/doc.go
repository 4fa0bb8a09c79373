// Package visitor offers callback based iteration over struct fields.
// Field positions come from fieldwalk discovery, so no tags or field lists are needed.
package visitor
