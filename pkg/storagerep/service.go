package storagerep

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/lecternapp/lectern/pkg/jobs"
	"github.com/lecternapp/lectern/pkg/models"
	"github.com/lecternapp/lectern/pkg/store"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
)

// Estimate reports how much space the offline data occupies and how much the
// deployment allows. Quota comes from config when set, otherwise from the
// filesystem; on hosts where neither is knowable the estimate is simply not
// supported.
type Estimate struct {
	UsedBytes  int64 `json:"used_bytes"`
	QuotaBytes int64 `json:"quota_bytes"`
}

// errQuotaUnsupported marks hosts where no filesystem size can be read and
// no override is configured.
var errQuotaUnsupported = errors.New("filesystem quota is not supported on this platform")

type Service struct {
	dataDirectory string
	quotaOverride int64
	store         *store.Service
	jobService    *jobs.Service
}

func NewService(dataDirectory string, quotaOverride int64, storeService *store.Service, jobService *jobs.Service) *Service {
	return &Service{
		dataDirectory: dataDirectory,
		quotaOverride: quotaOverride,
		store:         storeService,
		jobService:    jobService,
	}
}

// EstimateUsage returns the current usage estimate, or ok=false when the
// host can't report a quota. Callers should treat a missing estimate as "no
// limit known", not as an error.
func (svc *Service) EstimateUsage() (*Estimate, bool, error) {
	used, err := svc.usedBytes()
	if err != nil {
		return nil, false, err
	}

	quota := svc.quotaOverride
	if quota <= 0 {
		quota, err = filesystemSize(svc.dataDirectory)
		if err != nil {
			if errors.Is(err, errQuotaUnsupported) {
				return nil, false, nil
			}
			return nil, false, err
		}
	}

	return &Estimate{UsedBytes: used, QuotaBytes: quota}, true, nil
}

func (svc *Service) usedBytes() (int64, error) {
	var used int64

	err := filepath.WalkDir(svc.dataDirectory, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				// Deleted between the directory listing and stat.
				return nil
			}
			return err
		}
		used += info.Size()
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return 0, errors.WithStack(err)
	}

	return used, nil
}

// Clear wipes the offline store and cancels queued download jobs. It always
// runs every sub-operation, logging individual failures, and returns the
// first error only after all of them finish.
func (svc *Service) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)
	var firstErr error

	if err := svc.store.Clear(ctx); err != nil {
		log.Err(err).Error("failed to clear store collections")
		firstErr = err
	}

	cancelled, err := svc.jobService.CancelPendingJobs(ctx, models.JobTypeDownload)
	if err != nil {
		log.Err(err).Error("failed to cancel pending download jobs")
		if firstErr == nil {
			firstErr = err
		}
	} else if cancelled > 0 {
		log.Info("cancelled pending download jobs", logger.Data{"count": cancelled})
	}

	return firstErr
}
