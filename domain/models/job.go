package models

import (
	"github.com/google/uuid"
)

// Job represents a link to download into a destination.
type Job struct {
	ID             uuid.UUID
	Link           string
	DestinationDir string
	Status         *JobStatus // written by the job's fetch task only
}

// NewJob creates an in progress job. updates is notified when the job completes and may be nil.
func NewJob(link, destinationDir string, updates chan<- struct{}) Job {
	return Job{
		ID:             uuid.New(),
		Link:           link,
		DestinationDir: destinationDir,
		Status:         NewJobStatus(updates),
	}
}

// BatchResult is the outcome of one batch of downloads.
type BatchResult struct {
	Total     int
	Completed []Job // in completion order
}
