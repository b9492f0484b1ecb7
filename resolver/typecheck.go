package resolver

import (
	"reflect"

	"map-resolver/primitive"
)

// matchType reports whether value satisfies the declared type name and the
// name of the type actually encountered.
//
// Structured values (structs and non-nil pointers) are matched by their Go
// type: a registered type they are assignable to or implement, or a name
// equal to the type string of the value or of its pointee. All other values
// are matched by their primitive tag ("int", "string", "map", "nil", ...).
func (r *Resolver) matchType(expected string, value any) (string, bool) {
	kind := primitive.Of(value)
	if !kind.IsStructured() {
		return kind.Tag(), kind.Tag() == expected
	}

	rtype := reflect.TypeOf(value)
	actual := rtype.String()

	if target, ok := r.named[expected]; ok {
		return actual, satisfies(rtype, target)
	}

	if actual == expected {
		return actual, true
	}

	return actual, rtype.Kind() == reflect.Pointer && rtype.Elem().String() == expected
}

// satisfies is the instance-of relationship between a value's type and a
// registered type.
func satisfies(rtype, target reflect.Type) bool {
	if target.Kind() == reflect.Interface {
		return rtype.Implements(target)
	}

	if rtype.AssignableTo(target) {
		return true
	}

	return rtype.Kind() == reflect.Pointer && rtype.Elem().AssignableTo(target)
}
