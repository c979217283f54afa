// Package fixtures reads the static JSON seed files.
package fixtures

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	apperrors "github.com/yukikurage/marketplace-api/internal/errors"
)

// File names expected inside a fixtures directory
const (
	UsersFile  = "users.json"
	OrdersFile = "orders.json"
	OffersFile = "offers.json"
)

// Record is one fixture element: field name to raw JSON value.
type Record map[string]any

// Set holds the three fixture arrays in seeding order.
type Set struct {
	Users  []Record
	Orders []Record
	Offers []Record
}

// Load reads a UTF-8 JSON array of objects from path.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", apperrors.ErrIO, path, err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", apperrors.ErrParse, path, err)
	}

	for i, r := range records {
		if r == nil {
			return nil, fmt.Errorf("%w: %s: element %d is not an object", apperrors.ErrParse, path, i)
		}
	}

	return records, nil
}

// LoadSet loads users.json, orders.json and offers.json from dir.
func LoadSet(dir string) (*Set, error) {
	users, err := Load(filepath.Join(dir, UsersFile))
	if err != nil {
		return nil, err
	}

	orders, err := Load(filepath.Join(dir, OrdersFile))
	if err != nil {
		return nil, err
	}

	offers, err := Load(filepath.Join(dir, OffersFile))
	if err != nil {
		return nil, err
	}

	return &Set{
		Users:  users,
		Orders: orders,
		Offers: offers,
	}, nil
}
