package worker

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lecternapp/lectern/pkg/config"
	"github.com/lecternapp/lectern/pkg/jobs"
	"github.com/lecternapp/lectern/pkg/migrations"
	"github.com/lecternapp/lectern/pkg/models"
	"github.com/lecternapp/lectern/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func setupTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = migrations.BringUpToDate(context.Background(), db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func setupContentServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/en/index.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"books":[
			{"id":"gen","name":"Genesis","file":"Genesis.json","testament":"old","chapters":50},
			{"id":"exo","name":"Exodus","file":"Exodus.json","testament":"old","chapters":40}
		]}`))
	})
	mux.HandleFunc("/en/", func(w http.ResponseWriter, r *http.Request) {
		file := r.URL.Path[len("/en/"):]
		name := file[:len(file)-len(".json")]
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"book":%q,"chapters":[{"chapter":1,"verses":[{"verse":1,"text":"%s 1:1"}]}]}`, name, name)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestProcessDownloadJob(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	srv := setupContentServer(t)
	ctx := context.Background()

	cfg := &config.Config{
		ContentBaseURL:  srv.URL,
		WorkerProcesses: 1,
	}
	w := New(cfg, db)

	jobService := jobs.NewService(db)
	job := &models.Job{
		Type:       models.JobTypeDownload,
		DataParsed: &models.JobDownloadData{LanguageCode: "en"},
	}
	err := jobService.CreateJob(ctx, job)
	require.NoError(t, err)

	job, err = jobService.RetrieveJob(ctx, jobs.RetrieveJobOptions{ID: &job.ID})
	require.NoError(t, err)

	err = w.ProcessDownloadJob(ctx, job)
	require.NoError(t, err)

	// Progress was persisted through to the end.
	got, err := jobService.RetrieveJob(ctx, jobs.RetrieveJobOptions{ID: &job.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, got.ProgressCurrent)
	assert.Equal(t, 2, got.ProgressTotal)
	require.NotNil(t, got.ProgressBook)
	assert.Equal(t, "Exodus", *got.ProgressBook)

	// Both books landed in the cache.
	books, err := store.NewService(db).ListBooks(ctx, store.ListBooksOptions{})
	require.NoError(t, err)
	assert.Len(t, books, 2)
}

func TestProcessDownloadJob_BadPayload(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	srv := setupContentServer(t)

	w := New(&config.Config{ContentBaseURL: srv.URL, WorkerProcesses: 1}, db)

	err := w.ProcessDownloadJob(context.Background(), &models.Job{Type: models.JobTypeDownload})
	require.Error(t, err)
}

func TestRunJob_RecordsFailure(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	srv := setupContentServer(t)
	ctx := context.Background()

	w := New(&config.Config{ContentBaseURL: srv.URL, WorkerProcesses: 1}, db)

	jobService := jobs.NewService(db)
	job := &models.Job{
		Type:       models.JobTypeDownload,
		DataParsed: &models.JobDownloadData{LanguageCode: "xx"}, // unknown language
	}
	err := jobService.CreateJob(ctx, job)
	require.NoError(t, err)

	job, err = jobService.RetrieveJob(ctx, jobs.RetrieveJobOptions{ID: &job.ID})
	require.NoError(t, err)

	w.runJob(job)

	got, err := jobService.RetrieveJob(ctx, jobs.RetrieveJobOptions{ID: &job.ID})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusFailed, got.Status)
	require.NotNil(t, got.Error)
	assert.Contains(t, *got.Error, "not found")
}

func TestStartAndShutdown(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	srv := setupContentServer(t)

	w := New(&config.Config{ContentBaseURL: srv.URL, WorkerProcesses: 2}, db)
	w.Start()
	w.Shutdown()
}
