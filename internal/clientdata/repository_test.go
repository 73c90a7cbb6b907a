package clientdata

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradelens/tradelens/internal/database"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := database.New(database.Config{
		Path:    "file:" + t.Name() + "?mode=memory&cache=shared",
		Profile: database.ProfileCache,
		Name:    "client_data_test",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewRepository(db.Conn())
	require.NoError(t, repo.InitSchema())
	return repo
}

type testQuote struct {
	LastPrice float64 `json:"last_price"`
}

func TestRepository_StoreAndGetIfFresh(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.Store("quotes", "AAPL", testQuote{LastPrice: 187.5}, time.Hour)
	require.NoError(t, err)

	data, err := repo.GetIfFresh("quotes", "AAPL")
	require.NoError(t, err)
	require.NotNil(t, data)

	var q testQuote
	require.NoError(t, json.Unmarshal(data, &q))
	assert.Equal(t, 187.5, q.LastPrice)
}

func TestRepository_GetIfFresh_MissingKey(t *testing.T) {
	repo := newTestRepo(t)

	data, err := repo.GetIfFresh("quotes", "MISSING")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestRepository_GetIfFresh_Expired(t *testing.T) {
	repo := newTestRepo(t)

	// Negative TTL makes the entry expired immediately.
	err := repo.Store("quotes", "AAPL", testQuote{LastPrice: 187.5}, -time.Minute)
	require.NoError(t, err)

	data, err := repo.GetIfFresh("quotes", "AAPL")
	require.NoError(t, err)
	assert.Nil(t, data, "expired entry should not be returned as fresh")
}

func TestRepository_Get_ReturnsStale(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.Store("quotes", "AAPL", testQuote{LastPrice: 187.5}, -time.Minute)
	require.NoError(t, err)

	data, err := repo.Get("quotes", "AAPL")
	require.NoError(t, err)
	require.NotNil(t, data, "stale entry should still be readable via Get")

	var q testQuote
	require.NoError(t, json.Unmarshal(data, &q))
	assert.Equal(t, 187.5, q.LastPrice)
}

func TestRepository_Store_Upserts(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Store("quotes", "AAPL", testQuote{LastPrice: 100}, time.Hour))
	require.NoError(t, repo.Store("quotes", "AAPL", testQuote{LastPrice: 200}, time.Hour))

	data, err := repo.GetIfFresh("quotes", "AAPL")
	require.NoError(t, err)
	require.NotNil(t, data)

	var q testQuote
	require.NoError(t, json.Unmarshal(data, &q))
	assert.Equal(t, 200.0, q.LastPrice)
}

func TestRepository_InvalidTable(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.Store("users; DROP TABLE quotes", "AAPL", testQuote{}, time.Hour)
	assert.Error(t, err)

	_, err = repo.GetIfFresh("nope", "AAPL")
	assert.Error(t, err)

	_, err = repo.Get("nope", "AAPL")
	assert.Error(t, err)

	_, err = repo.DeleteExpired("nope")
	assert.Error(t, err)
}

func TestRepository_DeleteAllExpired(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Store("quotes", "OLD", testQuote{LastPrice: 1}, -time.Minute))
	require.NoError(t, repo.Store("quotes", "FRESH", testQuote{LastPrice: 2}, time.Hour))
	require.NoError(t, repo.Store("security_metadata", "OLD", map[string]string{"sector": "Tech"}, -time.Minute))

	results, err := repo.DeleteAllExpired()
	require.NoError(t, err)
	assert.Equal(t, int64(1), results["quotes"])
	assert.Equal(t, int64(1), results["security_metadata"])

	// Fresh data survives cleanup.
	data, err := repo.Get("quotes", "FRESH")
	require.NoError(t, err)
	assert.NotNil(t, data)

	data, err = repo.Get("quotes", "OLD")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestCleanupJob_Run(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Store("quotes", "OLD", testQuote{LastPrice: 1}, -time.Minute))

	job := NewCleanupJob(repo, testLogger())
	assert.Equal(t, "client_data_cleanup", job.Name())
	require.NoError(t, job.Run())

	data, err := repo.Get("quotes", "OLD")
	require.NoError(t, err)
	assert.Nil(t, data)
}
