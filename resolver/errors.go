package resolver

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"map-resolver/internal/match"
)

// Sentinel errors for programmatic error checking via errors.Is().
var (
	// ErrInvalidMap is wrapped by every failure reported by Resolve.
	ErrInvalidMap = errors.New("invalid map")

	// ErrDefinitionNotFound is returned by DefinitionSet.Get for unknown names.
	ErrDefinitionNotFound = errors.New("definition not found")
)

//go:generate go tool stringer -type=FailureKind -output=failurekind_string.go

// FailureKind identifies which validation step produced an InvalidMap.
type FailureKind int

const (
	_ FailureKind = iota

	UnknownKeys
	UnknownDescriptions
	MissingKeys
	TypeMismatch
)

// maxSuggestions caps the "did you mean" candidates attached per unknown key.
const maxSuggestions = 3

// InvalidMap is the single error kind produced while resolving a map.
// Wraps ErrInvalidMap for errors.Is() compatibility.
type InvalidMap struct {
	Kind FailureKind
	// Keys lists the offending keys in the order they appear in Message.
	Keys []string
	// Expected and Actual are set for TypeMismatch only.
	Expected string
	Actual   string
	// Suggestions maps an unknown key to the closest known keys. Set for
	// UnknownKeys only; never part of Message.
	Suggestions map[string][]string
	Message     string
}

func (e *InvalidMap) Error() string {
	if e == nil {
		return ""
	}

	if e.Message == "" {
		return ErrInvalidMap.Error()
	}

	return e.Message
}

func (e *InvalidMap) Unwrap() error { return ErrInvalidMap }

func quoteList(keys []string) string {
	return strings.Join(keys, `", "`)
}

func unknownKeysError(unknown, allowed []string) *InvalidMap {
	var suggestions map[string][]string

	for _, key := range unknown {
		if s := match.Suggest(key, allowed, maxSuggestions); len(s) > 0 {
			if suggestions == nil {
				suggestions = make(map[string][]string)
			}

			suggestions[key] = s
		}
	}

	return &InvalidMap{
		Kind:        UnknownKeys,
		Keys:        unknown,
		Suggestions: suggestions,
		Message: fmt.Sprintf(`Key(s) "%s" are not known, known keys: "%s"`,
			quoteList(unknown), quoteList(allowed)),
	}
}

func unknownDescriptionsError(unknown, allowed []string) *InvalidMap {
	return &InvalidMap{
		Kind: UnknownDescriptions,
		Keys: unknown,
		Message: fmt.Sprintf(`Description(s) for key(s) "%s" are not known, known keys: "%s"`,
			quoteList(unknown), quoteList(allowed)),
	}
}

func missingKeysError(missing []string) *InvalidMap {
	return &InvalidMap{
		Kind:    MissingKeys,
		Keys:    missing,
		Message: fmt.Sprintf(`Key(s) "%s" are required`, quoteList(missing)),
	}
}

func typeMismatchError(key, expected, actual string) *InvalidMap {
	return &InvalidMap{
		Kind:     TypeMismatch,
		Keys:     []string{key},
		Expected: expected,
		Actual:   actual,
		Message:  fmt.Sprintf(`Type for "%s" expected to be "%s", got "%s"`, key, expected, actual),
	}
}

// Errors collects the failures recorded by a lenient Resolver, in the order
// they occurred. It is safe for concurrent use.
type Errors struct {
	mu   sync.Mutex
	list []*InvalidMap
}

func (e *Errors) add(err *InvalidMap) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.list = append(e.list, err)
}

// All returns a copy of the collected failures.
func (e *Errors) All() []*InvalidMap {
	e.mu.Lock()
	defer e.mu.Unlock()

	return slices.Clone(e.list)
}

// Len returns the number of collected failures.
func (e *Errors) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.list)
}

// HasErrors returns true if any failure was collected.
func (e *Errors) HasErrors() bool {
	return e.Len() > 0
}

// Err returns the collected failures joined into one error, or nil.
func (e *Errors) Err() error {
	all := e.All()
	if len(all) == 0 {
		return nil
	}

	errs := make([]error, 0, len(all))
	for _, err := range all {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Reset discards all collected failures.
func (e *Errors) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.list = nil
}
