package worker

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/lecternapp/lectern/pkg/config"
	"github.com/lecternapp/lectern/pkg/content"
	"github.com/lecternapp/lectern/pkg/jobs"
	"github.com/lecternapp/lectern/pkg/library"
	"github.com/lecternapp/lectern/pkg/models"
	"github.com/lecternapp/lectern/pkg/store"
	"github.com/robinjoseph08/golib/logger"
	"github.com/robinjoseph08/golib/pointerutil"
	"github.com/uptrace/bun"
)

var processID = randStringBytes(8)

type Worker struct {
	config *config.Config
	log    logger.Logger

	processFuncs map[string]func(ctx context.Context, job *models.Job) error

	jobService     *jobs.Service
	libraryService *library.Service

	// jobCtx is cancelled on Shutdown so a long bulk download stops between
	// books instead of stranding the shutdown.
	jobCtx    context.Context
	cancelJob context.CancelFunc

	queue          chan *models.Job
	shutdown       chan struct{}
	doneFetching   chan struct{}
	doneProcessing chan struct{}
}

func New(cfg *config.Config, db *bun.DB) *Worker {
	jobService := jobs.NewService(db)
	storeService := store.NewService(db)
	contentClient := content.NewClient(cfg.ContentBaseURL)
	libraryService := library.NewService(storeService, contentClient, cfg.DownloadDelay)

	jobCtx, cancelJob := context.WithCancel(context.Background())

	w := &Worker{
		config: cfg,
		log:    logger.New(),

		jobService:     jobService,
		libraryService: libraryService,

		jobCtx:    jobCtx,
		cancelJob: cancelJob,

		queue:          make(chan *models.Job, cfg.WorkerProcesses),
		shutdown:       make(chan struct{}),
		doneFetching:   make(chan struct{}),
		doneProcessing: make(chan struct{}, cfg.WorkerProcesses),
	}

	w.processFuncs = map[string]func(ctx context.Context, job *models.Job) error{
		models.JobTypeDownload: w.ProcessDownloadJob,
	}

	return w
}

func (w *Worker) Start() {
	go w.fetchJobs()
	for i := 0; i < w.config.WorkerProcesses; i++ {
		go w.processJobs()
	}
}

func (w *Worker) fetchJobs() {
	duration := 5 * time.Second
	timer := time.NewTimer(duration)

	for {
		select {
		case <-w.shutdown:
			// We're shutting down, so stop adding more jobs to the queue.
			w.doneFetching <- struct{}{}
			return
		case <-timer.C:
			j, err := w.jobService.ListJobs(context.Background(), jobs.ListJobsOptions{
				Limit:              pointerutil.Int(1),
				Statuses:           []string{models.JobStatusPending, models.JobStatusInProgress},
				ProcessIDToExclude: &processID,
			})
			if err != nil {
				w.log.Err(err).Error("list jobs error")
				timer.Reset(duration)
				continue
			}
			for _, job := range j {
				w.queue <- job
			}
			timer.Reset(duration)
		}
	}
}

func (w *Worker) processJobs() {
	for {
		select {
		case <-w.shutdown:
			w.doneProcessing <- struct{}{}
			return
		case job := <-w.queue:
			w.runJob(job)
		}
	}
}

func (w *Worker) runJob(job *models.Job) {
	// Prep the context to be passed down to the process function.
	id, err := uuid.NewRandom()
	if err != nil {
		w.log.Err(err).Error("new uuid error")
		return
	}
	log := w.log.ID(id.String()).Root(logger.Data{"job_id": job.ID, "type": job.Type, "process_id": processID})
	ctx := log.WithContext(w.jobCtx)

	// Update job to be in progress and claimed by this process.
	job.Status = models.JobStatusInProgress
	job.ProcessID = &processID

	err = w.jobService.UpdateJob(ctx, job, jobs.UpdateJobOptions{
		Columns: []string{"status", "process_id"},
	})
	if err != nil {
		log.Err(err).Error("update job error")
		return
	}

	// Find and invoke the appropriate process function.
	fn, ok := w.processFuncs[job.Type]
	if !ok {
		log.Error("can't find process function for type")
		return
	}
	err = fn(ctx, job)
	if err != nil {
		log.Err(err).Error("process error")

		// Record the failure so the UI can show it.
		job.Status = models.JobStatusFailed
		job.Error = pointerutil.String(err.Error())
		err = w.jobService.UpdateJob(context.Background(), job, jobs.UpdateJobOptions{
			Columns: []string{"status", "error"},
		})
		if err != nil {
			log.Err(err).Error("update job error")
		}
		return
	}

	// Update job to be completed so that it's not picked up anymore.
	job.Status = models.JobStatusCompleted

	err = w.jobService.UpdateJob(ctx, job, jobs.UpdateJobOptions{
		Columns: []string{"status"},
	})
	if err != nil {
		log.Err(err).Error("update job error")
	}
}

func (w *Worker) Shutdown() {
	w.cancelJob()
	close(w.shutdown)

	<-w.doneFetching
	for i := 0; i < w.config.WorkerProcesses; i++ {
		<-w.doneProcessing
	}
}

const letterBytes = "abcdef0123456789"

func randStringBytes(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letterBytes[rand.Intn(len(letterBytes))]
	}
	return string(b)
}
