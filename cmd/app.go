package main

import (
	"context"
	"io"
	"net/url"

	"webFileDownloader/domain/adapters/progressPrinter"
	"webFileDownloader/domain/downloadPool"
	"webFileDownloader/domain/fileFetcher"
	"webFileDownloader/domain/linkCollector"
	"webFileDownloader/domain/models"
	"webFileDownloader/domain/progressMonitor"
)

type (
	Logger interface {
		Printf(format string, args ...interface{})
	}

	FetcherExtractor interface {
		Fetch(ctx context.Context, target *url.URL) (io.ReadCloser, error)
		Extract(contents io.Reader) ([]string, error)
	}

	Store interface {
		Save(ctx context.Context, dir, name string, body io.Reader) (string, error)
	}
)

// AppConfig holds the dependencies of the App.
type AppConfig struct {
	Logger           Logger
	FetcherExtractor FetcherExtractor
	Store            Store
	LinkFilters      []linkCollector.LinkFilter
	DownloadPoolConfig
}

type DownloadPoolConfig struct {
	PoolSize uint64
}

// App collects the links of a page and downloads them.
type App struct {
	printer       *progressPrinter.Printer
	linkCollector *linkCollector.Collector
	downloadPool  *downloadPool.DownloadPool
}

func NewApp(cfg AppConfig) *App {
	printer := progressPrinter.New(cfg.Logger)

	completionHook := func(_ context.Context, job models.Job, location string) {
		printer.Saved(job, location)
	}

	return &App{
		printer:       printer,
		linkCollector: linkCollector.New(cfg.Logger, cfg.FetcherExtractor, cfg.LinkFilters...),
		downloadPool: downloadPool.New(
			cfg.Logger,
			cfg.PoolSize,
			fileFetcher.New(cfg.FetcherExtractor, cfg.Store),
			progressMonitor.New(printer),
			completionHook,
		),
	}
}

// Run downloads every file of pageURL ending with extension into destinationDir.
func (a *App) Run(ctx context.Context, pageURL, extension, destinationDir string) error {
	links, err := a.linkCollector.CollectLinks(ctx, pageURL, extension)
	if err != nil {
		return err
	}
	a.printer.Links(links)

	result, err := a.downloadPool.DownloadAll(ctx, links, destinationDir)
	a.printer.Summary(result, err)
	return err
}
