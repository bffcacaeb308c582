package jobs

import (
	"context"
	"database/sql"
	"testing"

	"github.com/lecternapp/lectern/pkg/migrations"
	"github.com/lecternapp/lectern/pkg/models"
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

func TestCreateJob_Defaults(t *testing.T) {
	t.Parallel()
	svc := NewService(setupTestDB(t))
	ctx := context.Background()

	job := &models.Job{
		Type:       models.JobTypeDownload,
		DataParsed: &models.JobDownloadData{LanguageCode: "es"},
	}
	err := svc.CreateJob(ctx, job)
	require.NoError(t, err)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, models.JobStatusPending, job.Status)

	got, err := svc.RetrieveJob(ctx, RetrieveJobOptions{ID: &job.ID})
	require.NoError(t, err)

	data, ok := got.DataParsed.(*models.JobDownloadData)
	require.True(t, ok)
	assert.Equal(t, "es", data.LanguageCode)
}

func TestListJobs_FiltersByStatus(t *testing.T) {
	t.Parallel()
	svc := NewService(setupTestDB(t))
	ctx := context.Background()

	for _, status := range []string{models.JobStatusPending, models.JobStatusCompleted, models.JobStatusFailed} {
		err := svc.CreateJob(ctx, &models.Job{
			Type:       models.JobTypeDownload,
			Status:     status,
			DataParsed: &models.JobDownloadData{LanguageCode: "en"},
		})
		require.NoError(t, err)
	}

	jobs, total, err := svc.ListJobsWithTotal(ctx, ListJobsOptions{
		Statuses: []string{models.JobStatusPending, models.JobStatusFailed},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, jobs, 2)
}

func TestHasActiveJobByType(t *testing.T) {
	t.Parallel()
	svc := NewService(setupTestDB(t))
	ctx := context.Background()

	hasActive, err := svc.HasActiveJobByType(ctx, models.JobTypeDownload)
	require.NoError(t, err)
	assert.False(t, hasActive)

	err = svc.CreateJob(ctx, &models.Job{
		Type:       models.JobTypeDownload,
		DataParsed: &models.JobDownloadData{LanguageCode: "en"},
	})
	require.NoError(t, err)

	hasActive, err = svc.HasActiveJobByType(ctx, models.JobTypeDownload)
	require.NoError(t, err)
	assert.True(t, hasActive)
}

func TestUpdateJob_Progress(t *testing.T) {
	t.Parallel()
	svc := NewService(setupTestDB(t))
	ctx := context.Background()

	job := &models.Job{
		Type:       models.JobTypeDownload,
		DataParsed: &models.JobDownloadData{LanguageCode: "en"},
	}
	err := svc.CreateJob(ctx, job)
	require.NoError(t, err)

	bookName := "Genesis"
	job.Status = models.JobStatusInProgress
	job.ProgressCurrent = 1
	job.ProgressTotal = 66
	job.ProgressBook = &bookName
	err = svc.UpdateJob(ctx, job, UpdateJobOptions{
		Columns: []string{"status", "progress_current", "progress_total", "progress_book"},
	})
	require.NoError(t, err)

	got, err := svc.RetrieveJob(ctx, RetrieveJobOptions{ID: &job.ID})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusInProgress, got.Status)
	assert.Equal(t, 1, got.ProgressCurrent)
	assert.Equal(t, 66, got.ProgressTotal)
	require.NotNil(t, got.ProgressBook)
	assert.Equal(t, "Genesis", *got.ProgressBook)
}

func TestCancelPendingJobs(t *testing.T) {
	t.Parallel()
	svc := NewService(setupTestDB(t))
	ctx := context.Background()

	inProgress := &models.Job{
		Type:       models.JobTypeDownload,
		Status:     models.JobStatusInProgress,
		DataParsed: &models.JobDownloadData{LanguageCode: "en"},
	}
	err := svc.CreateJob(ctx, inProgress)
	require.NoError(t, err)

	for _, lang := range []string{"es", "fr"} {
		err := svc.CreateJob(ctx, &models.Job{
			Type:       models.JobTypeDownload,
			DataParsed: &models.JobDownloadData{LanguageCode: lang},
		})
		require.NoError(t, err)
	}

	cancelled, err := svc.CancelPendingJobs(ctx, models.JobTypeDownload)
	require.NoError(t, err)
	assert.Equal(t, 2, cancelled)

	// The in-progress job is untouched.
	jobs, err := svc.ListJobs(ctx, ListJobsOptions{})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, models.JobStatusInProgress, jobs[0].Status)
}
