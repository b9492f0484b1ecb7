package common

// UnknownStr is the String() value for out-of-range enum values.
const UnknownStr = "unknown"
