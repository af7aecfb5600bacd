//go:generate moq -out internal/mocks/fetcher_moq.go -pkg mocks . Fetcher
//go:generate moq -out internal/mocks/monitor_moq.go -pkg mocks . Monitor

package downloadPool

import (
	"context"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"

	"webFileDownloader/domain/adapters/FIFOqueue"
	"webFileDownloader/domain/models"
)

type (
	Logger interface {
		Printf(format string, args ...interface{})
	}

	// Fetcher downloads a single job and completes its status once the contents are stored.
	Fetcher interface {
		Fetch(ctx context.Context, job models.Job) (string, error)
	}

	// Monitor watches the statuses of a batch until all are completed or ctx is done.
	Monitor interface {
		Watch(ctx context.Context, statuses []*models.JobStatus, updates <-chan struct{}) (bool, error)
	}
)

// DownloadCompletedHook is called from the fetching goroutine when a job was stored at location.
// It must not block.
type DownloadCompletedHook func(ctx context.Context, job models.Job, location string)

func NoOpCompletedHook(ctx context.Context, job models.Job, location string) {}

// DownloadPool downloads batches of links concurrently while a monitor reports their progress.
type DownloadPool struct {
	logger Logger

	size uint64 // Max concurrent downloads, 0 is unlimited.

	fetcher Fetcher
	monitor Monitor

	completionHook DownloadCompletedHook
}

// New creates a new DownloadPool.
func New(logger Logger, size uint64, fetcher Fetcher, monitor Monitor, completionHook DownloadCompletedHook) *DownloadPool {
	if completionHook == nil {
		completionHook = NoOpCompletedHook
	}
	return &DownloadPool{
		logger: logger,

		size: size,

		fetcher: fetcher,
		monitor: monitor,

		completionHook: completionHook,
	}
}

// DownloadAll downloads every link into destinationDir.
//
// The batch is all or nothing: the first failure observed among the finished downloads is returned as a
// *models.BatchError once every started download has finished, and the monitor is cancelled. Files
// stored before the failure are left in place. On success DownloadAll waits for the monitor to observe
// every job completed. If ctx is cancelled after every download was stored but before the monitor saw
// the last one, the batch still succeeds: the monitor stops without reporting 100% and the full result is
// returned with a nil error.
// The monitor never runs past the return of DownloadAll.
func (dp *DownloadPool) DownloadAll(ctx context.Context, links []string, destinationDir string) (models.BatchResult, error) {
	result := models.BatchResult{Total: len(links)}
	if len(links) == 0 {
		dp.logger.Printf("No links to download")
		return result, nil
	}

	updates := make(chan struct{}, 1)
	jobs := make([]models.Job, len(links))
	statuses := make([]*models.JobStatus, len(links))
	for i, link := range links {
		jobs[i] = models.NewJob(link, destinationDir, updates)
		statuses[i] = jobs[i].Status
	}

	monitorCtx, cancelMonitor := context.WithCancel(ctx)
	defer cancelMonitor()

	monitorDone := make(chan error, 1)
	go func() {
		_, err := dp.monitor.Watch(monitorCtx, statuses, updates)
		monitorDone <- err
	}()

	var (
		completed = FIFOqueue.New()
		firstErr  *models.BatchError
		failOnce  sync.Once
	)

	// Not errgroup.WithContext: a failure must not cancel sibling downloads.
	var group errgroup.Group
	if limit := dp.limit(); limit > 0 {
		group.SetLimit(limit)
	}
	for _, job := range jobs {
		job := job
		group.Go(func() error {
			location, err := dp.fetcher.Fetch(ctx, job)
			if err != nil {
				dp.logger.Printf("Job %s: downloading %s failed: %s", job.ID, job.Link, err)
				failOnce.Do(func() {
					firstErr = &models.BatchError{Link: job.Link, Err: err}
				})
				return err
			}

			_ = completed.Push(job)
			dp.completionHook(ctx, job, location)
			return nil
		})
	}

	err := group.Wait()
	result.Completed = drain(completed)

	if err != nil {
		cancelMonitor()
		<-monitorDone
		return result, firstErr
	}

	if err := <-monitorDone; err != nil {
		dp.logger.Printf("All %d downloads stored, progress monitor stopped early: %s", len(result.Completed), err)
	}
	return result, nil
}

// limit is the errgroup limit for the pool size, clamped to the int range. 0 is unlimited.
func (dp *DownloadPool) limit() int {
	if dp.size > math.MaxInt {
		return math.MaxInt
	}
	return int(dp.size)
}

func drain(queue *FIFOqueue.FIFOQueue) []models.Job {
	jobs := make([]models.Job, 0, queue.Len())
	for {
		v, err := queue.Pop()
		if err != nil || v == nil {
			return jobs
		}

		job, ok := v.(models.Job)
		if !ok {
			continue
		}
		jobs = append(jobs, job)
	}
}
