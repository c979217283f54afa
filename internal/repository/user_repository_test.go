package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/yukikurage/marketplace-api/internal/errors"
	"github.com/yukikurage/marketplace-api/internal/models"
	"github.com/yukikurage/marketplace-api/internal/testutil"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository(db)

	user := &models.User{
		FirstName: "Ann",
		LastName:  "Lee",
		Age:       30,
		Email:     "a@x.io",
		Role:      "customer",
		Phone:     testutil.Ptr("123"),
	}
	require.NoError(t, repo.Create(user))
	require.NotZero(t, user.ID)

	found, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, found)
}

func TestUserRepository_CreateKeepsExplicitID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(&models.User{ID: 42, FirstName: "Seeded"}))

	next := &models.User{FirstName: "Next"}
	require.NoError(t, repo.Create(next))
	assert.Equal(t, uint64(43), next.ID)
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	repo := NewUserRepository(testutil.NewTestDB(t))

	user, err := repo.FindByID(999)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestUserRepository_DuplicatePhone(t *testing.T) {
	repo := NewUserRepository(testutil.NewTestDB(t))

	require.NoError(t, repo.Create(&models.User{FirstName: "A", Phone: testutil.Ptr("555")}))
	err := repo.Create(&models.User{FirstName: "B", Phone: testutil.Ptr("555")})
	assert.True(t, errors.Is(err, apperrors.ErrConstraintViolation))

	// NULL phones do not collide
	require.NoError(t, repo.Create(&models.User{FirstName: "C"}))
	require.NoError(t, repo.Create(&models.User{FirstName: "D"}))
}

func TestUserRepository_List(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository(db)

	users, err := repo.List()
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)

	testutil.CreateUser(t, db, "first")
	testutil.CreateUser(t, db, "second")

	users, err = repo.List()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "first", users[0].FirstName)
	assert.Equal(t, "second", users[1].FirstName)
}

func TestUserRepository_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository(db)
	user := testutil.CreateUser(t, db, "before")

	updated, err := repo.Update(user.ID, func(u *models.User) error {
		u.FirstName = "after"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.FirstName)
	assert.Equal(t, user.Email, updated.Email)

	reloaded, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", reloaded.FirstName)
}

func TestUserRepository_Update_CallbackErrorRollsBack(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository(db)
	user := testutil.CreateUser(t, db, "stable")

	boom := errors.New("boom")
	_, err := repo.Update(user.ID, func(u *models.User) error {
		u.FirstName = "changed"
		return boom
	})
	assert.ErrorIs(t, err, boom)

	reloaded, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "stable", reloaded.FirstName)
}

func TestUserRepository_Update_NotFound(t *testing.T) {
	repo := NewUserRepository(testutil.NewTestDB(t))

	_, err := repo.Update(7, func(u *models.User) error { return nil })
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestUserRepository_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository(db)
	user := testutil.CreateUser(t, db, "gone")

	deleted, err := repo.Delete(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, deleted)

	_, err = repo.FindByID(user.ID)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	_, err = repo.Delete(user.ID)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestUserRepository_Delete_ClearsReferences(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := NewUserRepository(db)
	orders := NewOrderRepository(db)
	offers := NewOfferRepository(db)

	customer := testutil.CreateUser(t, db, "customer")
	executor := testutil.CreateUser(t, db, "executor")
	order := testutil.CreateOrder(t, db, "job", customer.ID)
	offer := testutil.CreateOffer(t, db, order.ID, executor.ID)

	_, err := orders.Update(order.ID, func(o *models.Order) error {
		o.ExecutorID = testutil.Ptr(executor.ID)
		return nil
	})
	require.NoError(t, err)

	_, err = users.Delete(executor.ID)
	require.NoError(t, err)

	reloaded, err := orders.FindByID(order.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.ExecutorID)
	require.NotNil(t, reloaded.CustomerID)
	assert.Equal(t, customer.ID, *reloaded.CustomerID)

	_, err = offers.FindByID(offer.ID)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
