package fixtures

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/yukikurage/marketplace-api/internal/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, UsersFile, `[
		{"id": 1, "first_name": "Иван", "age": 31, "phone": null},
		{"id": 2, "first_name": "Ann", "extra": true}
	]`)

	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Иван", records[0]["first_name"])
	assert.Equal(t, float64(31), records[0]["age"])
	assert.Contains(t, records[0], "phone")
	assert.Nil(t, records[0]["phone"])
	assert.Equal(t, true, records[1]["extra"])
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrIO))
}

func TestLoad_Malformed(t *testing.T) {
	dir := t.TempDir()

	cases := map[string]string{
		"broken.json":    `[{"id": 1,}`,
		"object.json":    `{"id": 1}`,
		"scalars.json":   `[1, 2, 3]`,
		"null_elem.json": `[{"id": 1}, null]`,
	}
	for name, content := range cases {
		_, err := Load(writeFile(t, dir, name, content))
		assert.True(t, errors.Is(err, apperrors.ErrParse), "expected parse error for %s, got %v", name, err)
	}
}

func TestLoadSet(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, UsersFile, `[{"id": 1}, {"id": 2}]`)
	writeFile(t, dir, OrdersFile, `[{"id": 1, "customer_id": 1}]`)
	writeFile(t, dir, OffersFile, `[]`)

	set, err := LoadSet(dir)
	require.NoError(t, err)
	assert.Len(t, set.Users, 2)
	assert.Len(t, set.Orders, 1)
	assert.Empty(t, set.Offers)
}

func TestLoadSet_MissingOffers(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, UsersFile, `[]`)
	writeFile(t, dir, OrdersFile, `[]`)

	_, err := LoadSet(dir)
	assert.True(t, errors.Is(err, apperrors.ErrIO))
}

func TestLoad_RepositoryFixtures(t *testing.T) {
	set, err := LoadSet(filepath.Join("..", "..", "fixtures"))
	require.NoError(t, err)
	assert.NotEmpty(t, set.Users)
	assert.NotEmpty(t, set.Orders)
	assert.NotEmpty(t, set.Offers)
}
