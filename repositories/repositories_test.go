// File: /repositories/repositories_test.go
package repositories

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"motolinks-api/models"
)

// newTestDB opens an isolated in-memory database per test. The shared cache
// keeps the database alive across the pool's connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Motorcycle{}, &models.Bookmark{}))
	return db
}

func seedUser(t *testing.T, repo UserRepository, username, email string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: email, Password: "hash"}
	require.NoError(t, repo.Create(user))
	return user
}

func testMotorcycle(niv, url string, userID uint) *models.Motorcycle {
	return &models.Motorcycle{
		NIV:      niv,
		Brand:    "Honda",
		Model:    "CBR600RR",
		Year:     2021,
		Category: "Sport",
		URL:      url,
		ShortURL: strings.ToLower(niv[:3]),
		UserID:   userID,
	}
}

func TestUserRepositoryDuplicates(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	seedUser(t, repo, "rider", "rider@example.com")

	err := repo.Create(&models.User{Username: "other", Email: "rider@example.com", Password: "hash"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	err = repo.Create(&models.User{Username: "rider", Email: "other@example.com", Password: "hash"})
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestUserRepositoryLookups(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	created := seedUser(t, repo, "rider", "rider@example.com")

	byEmail, err := repo.FindByEmail("rider@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "rider", byID.Username)

	missing, err := repo.FindByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMotorcycleRepositoryCreateAndFind(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewMotorcycleRepository(db)
	owner := seedUser(t, users, "rider", "rider@example.com")

	m := testMotorcycle("JH2PC40001M200001", "https://example.com/cbr", owner.ID)
	require.NoError(t, repo.Create(m))

	// Lookup ignores case.
	found, err := repo.FindByNIV("jh2pc40001m200001")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "JH2PC40001M200001", found.NIV)

	missing, err := repo.FindByNIV("ZZZZZZZZZZZZZZZZZ")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMotorcycleRepositoryUniqueness(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewMotorcycleRepository(db)
	owner := seedUser(t, users, "rider", "rider@example.com")

	require.NoError(t, repo.Create(testMotorcycle("JH2PC40001M200001", "https://example.com/cbr", owner.ID)))

	taken, err := repo.URLTaken("https://example.com/cbr", "")
	require.NoError(t, err)
	assert.True(t, taken)

	// Excluding the owning record frees the URL for its own update.
	taken, err = repo.URLTaken("https://example.com/cbr", "JH2PC40001M200001")
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = repo.NIVTaken("jh2pc40001m200001")
	require.NoError(t, err)
	assert.True(t, taken)

	dup := testMotorcycle("JH2PC40001M200001", "https://example.com/other", owner.ID)
	dup.ShortURL = "zz9"
	assert.ErrorIs(t, repo.Create(dup), ErrDuplicateKey)
}

func TestMotorcycleRepositoryListFilters(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewMotorcycleRepository(db)
	owner := seedUser(t, users, "rider", "rider@example.com")

	a := testMotorcycle("JH2PC40001M200001", "https://example.com/a", owner.ID)
	a.ShortURL = "aa1"
	b := testMotorcycle("WB1040300J1234567", "https://example.com/b", owner.ID)
	b.Brand = "BMW"
	b.Model = "R1250GS"
	b.Year = 2019
	b.Category = "Touring"
	b.ShortURL = "bb2"
	require.NoError(t, repo.Create(a))
	require.NoError(t, repo.Create(b))

	items, meta, err := repo.List(MotorcycleFilter{Brand: "honda"}, 1, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Honda", items[0].Brand)
	assert.Equal(t, int64(1), meta.TotalCount)

	items, _, err = repo.List(MotorcycleFilter{Year: "2019"}, 1, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "BMW", items[0].Brand)

	items, _, err = repo.List(MotorcycleFilter{Brand: "Honda", Year: "2019"}, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMotorcycleRepositoryPagination(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewMotorcycleRepository(db)
	owner := seedUser(t, users, "rider", "rider@example.com")

	for i := 0; i < 12; i++ {
		m := testMotorcycle(fmt.Sprintf("JH2PC40001M2%05d", i), fmt.Sprintf("https://example.com/m/%d", i), owner.ID)
		m.ShortURL = fmt.Sprintf("c%02d", i)
		require.NoError(t, repo.Create(m))
	}

	items, meta, err := repo.List(MotorcycleFilter{}, 2, 5)
	require.NoError(t, err)
	assert.Len(t, items, 5)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 3, meta.Pages)
	assert.Equal(t, int64(12), meta.TotalCount)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
	require.NotNil(t, meta.PrevPage)
	assert.Equal(t, 1, *meta.PrevPage)
	require.NotNil(t, meta.NextPage)
	assert.Equal(t, 3, *meta.NextPage)

	_, meta, err = repo.List(MotorcycleFilter{}, 3, 5)
	require.NoError(t, err)
	assert.False(t, meta.HasNext)
	assert.Nil(t, meta.NextPage)
}

func TestMotorcycleRepositoryUpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewMotorcycleRepository(db)
	owner := seedUser(t, users, "rider", "rider@example.com")

	m := testMotorcycle("JH2PC40001M200001", "https://example.com/cbr", owner.ID)
	require.NoError(t, repo.Create(m))

	err := repo.Update(m, map[string]interface{}{"brand": "Yamaha", "year": 2023})
	require.NoError(t, err)

	updated, err := repo.FindByNIV(m.NIV)
	require.NoError(t, err)
	assert.Equal(t, "Yamaha", updated.Brand)
	assert.Equal(t, 2023, updated.Year)

	require.NoError(t, repo.Delete("JH2PC40001M200001"))
	assert.ErrorIs(t, repo.Delete("JH2PC40001M200001"), ErrNotFound)
}

func TestMotorcycleRepositoryResolve(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewMotorcycleRepository(db)
	owner := seedUser(t, users, "rider", "rider@example.com")

	m := testMotorcycle("JH2PC40001M200001", "https://example.com/cbr", owner.ID)
	m.ShortURL = "abc"
	require.NoError(t, repo.Create(m))
	before, err := repo.FindByNIV(m.NIV)
	require.NoError(t, err)

	resolved, err := repo.Resolve("ABC")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/cbr", resolved.URL)
	assert.Equal(t, 1, resolved.Visits)

	after, err := repo.FindByNIV(m.NIV)
	require.NoError(t, err)
	assert.Equal(t, 1, after.Visits)
	// Counting a visit is not a content change.
	assert.Equal(t, before.UpdatedAt, after.UpdatedAt)

	_, err = repo.Resolve("zzz")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBookmarkRepositoryOwnerScoping(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewBookmarkRepository(db)
	alice := seedUser(t, users, "alice", "alice@example.com")
	bob := seedUser(t, users, "bobby", "bob@example.com")

	b := &models.Bookmark{Body: "race footage", URL: "https://example.com/vid", ShortURL: "vv1", UserID: alice.ID}
	require.NoError(t, repo.Create(b))

	found, err := repo.FindByID(b.ID, alice.ID)
	require.NoError(t, err)
	require.NotNil(t, found)

	hidden, err := repo.FindByID(b.ID, bob.ID)
	require.NoError(t, err)
	assert.Nil(t, hidden)

	assert.ErrorIs(t, repo.Delete(b.ID, bob.ID), ErrNotFound)
	require.NoError(t, repo.Delete(b.ID, alice.ID))
}

func TestBookmarkRepositoryListAndResolve(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewBookmarkRepository(db)
	owner := seedUser(t, users, "alice", "alice@example.com")

	for i := 0; i < 7; i++ {
		b := &models.Bookmark{
			URL:      fmt.Sprintf("https://example.com/b/%d", i),
			ShortURL: fmt.Sprintf("b%02d", i),
			UserID:   owner.ID,
		}
		require.NoError(t, repo.Create(b))
	}

	items, meta, err := repo.ListByOwner(owner.ID, 1, 5)
	require.NoError(t, err)
	assert.Len(t, items, 5)
	assert.Equal(t, int64(7), meta.TotalCount)
	assert.Equal(t, 2, meta.Pages)
	assert.True(t, meta.HasNext)

	all, err := repo.ByOwner(owner.ID)
	require.NoError(t, err)
	assert.Len(t, all, 7)

	resolved, err := repo.Resolve("b03")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/b/3", resolved.URL)
	assert.Equal(t, 1, resolved.Visits)
}
