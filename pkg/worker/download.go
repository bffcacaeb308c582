package worker

import (
	"context"

	"github.com/lecternapp/lectern/pkg/jobs"
	"github.com/lecternapp/lectern/pkg/library"
	"github.com/lecternapp/lectern/pkg/models"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
)

// ProcessDownloadJob walks every book of the job's language and caches it.
// Progress is persisted after each book so a reconnecting client can pick
// the bar back up mid-download.
func (w *Worker) ProcessDownloadJob(ctx context.Context, job *models.Job) error {
	log := logger.FromContext(ctx)

	data, ok := job.DataParsed.(*models.JobDownloadData)
	if !ok {
		return errors.New("download job has no language payload")
	}

	log.Info("starting language download", logger.Data{"language_code": data.LanguageCode})

	err := w.libraryService.DownloadLanguage(ctx, data.LanguageCode, func(p library.DownloadProgress) {
		job.ProgressCurrent = p.Current
		job.ProgressTotal = p.Total
		job.ProgressBook = &p.BookName

		err := w.jobService.UpdateJob(ctx, job, jobs.UpdateJobOptions{
			Columns: []string{"progress_current", "progress_total", "progress_book"},
		})
		if err != nil {
			log.Err(err).Warn("persist progress error")
		}
	})
	if err != nil {
		return errors.WithStack(err)
	}

	log.Info("language download complete", logger.Data{
		"language_code": data.LanguageCode,
		"books":         job.ProgressTotal,
	})

	return nil
}
