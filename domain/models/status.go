package models

import (
	"fmt"
	"sync/atomic"
)

type DownloadStatus int32

const (
	InProgress DownloadStatus = iota
	Completed
)

func (s DownloadStatus) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("DownloadStatus(%d)", int32(s))
	}
}

// JobStatus is a single writer, many reader completion flag.
// The only transition is InProgress -> Completed.
type JobStatus struct {
	status  atomic.Int32
	updates chan<- struct{}
}

func NewJobStatus(updates chan<- struct{}) *JobStatus {
	return &JobStatus{updates: updates}
}

func (s *JobStatus) Status() DownloadStatus {
	return DownloadStatus(s.status.Load())
}

// Complete marks the job as completed and wakes the reader.
// The wake up never blocks: a pending signal already covers this update.
// Returns false if the job was already completed.
func (s *JobStatus) Complete() bool {
	if !s.status.CompareAndSwap(int32(InProgress), int32(Completed)) {
		return false
	}

	if s.updates != nil {
		select {
		case s.updates <- struct{}{}:
		default:
		}
	}
	return true
}

// ProgressSnapshot is the completion state of a batch at one point in time.
type ProgressSnapshot struct {
	Completed int
	Total     int
}

// Snapshot counts the completed statuses.
func Snapshot(statuses []*JobStatus) ProgressSnapshot {
	snapshot := ProgressSnapshot{Total: len(statuses)}
	for _, status := range statuses {
		if status.Status() == Completed {
			snapshot.Completed++
		}
	}
	return snapshot
}

// Percent of completed jobs. An empty batch is fully complete.
func (p ProgressSnapshot) Percent() float64 {
	if p.Total == 0 {
		return 100
	}
	return float64(p.Completed) / float64(p.Total) * 100
}

func (p ProgressSnapshot) Done() bool {
	return p.Completed >= p.Total
}

// String floors the percentage to two decimals so 100% is only printed once every job is done.
func (p ProgressSnapshot) String() string {
	hundredths := 10000
	if p.Total > 0 {
		hundredths = p.Completed * 10000 / p.Total
	}
	return fmt.Sprintf("Download %d.%02d%%", hundredths/100, hundredths%100)
}
