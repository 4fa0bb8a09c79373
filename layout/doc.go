// Package layout computes sequential field placement under natural alignment rules
// and describes resolved aggregate layouts as JSON records.
package layout
