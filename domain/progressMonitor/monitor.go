//go:generate moq -out internal/mocks/observer_moq.go -pkg mocks . Observer

package progressMonitor

import (
	"context"

	"webFileDownloader/domain/models"
)

// Observer is told about progress changes of a batch.
type Observer interface {
	Progress(snapshot models.ProgressSnapshot)
}

// ObserverFunc adapts a function to an Observer.
type ObserverFunc func(snapshot models.ProgressSnapshot)

func (f ObserverFunc) Progress(snapshot models.ProgressSnapshot) {
	f(snapshot)
}

// Monitor reports the completion percentage of a batch until every job is completed.
type Monitor struct {
	observer Observer
}

func New(observer Observer) *Monitor {
	return &Monitor{observer: observer}
}

// Watch counts the completed statuses every time updates fires and reports the progress when its rendering
// changed since the last report. Reading a status never blocks its writer.
//
// Watch returns true once every status is completed, or false with the context error when ctx is done
// first. An empty batch completes immediately.
func (m *Monitor) Watch(ctx context.Context, statuses []*models.JobStatus, updates <-chan struct{}) (bool, error) {
	var reported string
	for {
		snapshot := models.Snapshot(statuses)
		if line := snapshot.String(); line != reported {
			m.observer.Progress(snapshot)
			reported = line
		}

		if snapshot.Done() {
			return true, nil
		}

		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-updates:
		}
	}
}
