// Package validation guards create payloads against keys an entity does not accept.
package validation

import (
	"encoding/json"
	"sort"

	apperrors "github.com/yukikurage/marketplace-api/internal/errors"
)

// FieldSet is the set of field names a client may send for an entity.
type FieldSet map[string]struct{}

// NewFieldSet builds a FieldSet from names.
func NewFieldSet(names ...string) FieldSet {
	set := make(FieldSet, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// Has reports whether name is in the set.
func (s FieldSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Fields accepted on create. The id is always assigned by the store.
var (
	UserCreateFields  = NewFieldSet("age", "email", "first_name", "last_name", "phone", "role")
	OrderCreateFields = NewFieldSet("name", "description", "start_date", "end_date", "address", "price", "customer_id", "executor_id")
	OfferCreateFields = NewFieldSet("order_id", "executor_id")
)

// CheckFields accepts payload when every key is in allowed. Otherwise it
// returns an *errors.UnknownFieldError listing the offending keys in order.
func CheckFields(payload map[string]json.RawMessage, allowed FieldSet) error {
	var unknown []string
	for key := range payload {
		if !allowed.Has(key) {
			unknown = append(unknown, key)
		}
	}

	if len(unknown) == 0 {
		return nil
	}

	sort.Strings(unknown)
	return &apperrors.UnknownFieldError{Fields: unknown}
}
