// Package diagnostic provides structured errors and warnings produced while
// validating schema files.
//
// Key capabilities:
//   - Error and warning collection with stable codes
//   - Per-option attribution
//   - Suggested fixes for misspelled names
package diagnostic
