package progressPrinter

import (
	"strings"

	"webFileDownloader/domain/models"
)

const (
	colorRed   = "\x1b[91m"
	colorGreen = "\x1b[92m"
	colorReset = "\x1b[0m"
)

type Logger interface {
	Printf(format string, args ...interface{})
}

// Printer writes batch progress and results to a logger.
type Printer struct {
	logger Logger
}

func New(logger Logger) *Printer {
	return &Printer{logger: logger}
}

func (p *Printer) Progress(snapshot models.ProgressSnapshot) {
	p.logger.Printf("%s", snapshot)
}

func (p *Printer) Links(links []string) {
	p.logger.Printf("Found %d links:\n%s", len(links), strings.Join(links, "\n"))
	p.logger.Printf("----------------------------------------------------")
}

func (p *Printer) Saved(job models.Job, location string) {
	p.logger.Printf("Job %s: saved %s to %s", job.ID, job.Link, location)
}

func (p *Printer) Summary(result models.BatchResult, err error) {
	if err != nil {
		p.logger.Printf("%sError downloading files.%s %d of %d completed: %s", colorRed, colorReset, len(result.Completed), result.Total, err)
		return
	}
	p.logger.Printf("%sDownload completed!%s %d files", colorGreen, colorReset, len(result.Completed))
}
