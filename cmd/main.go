package main

import (
	"context"
	"log"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"webFileDownloader/domain/adapters/fileStore"
	"webFileDownloader/domain/adapters/s3Store"
	"webFileDownloader/domain/adapters/sameDomainFilter"
	"webFileDownloader/domain/adapters/urlFetcherExtractor"
	"webFileDownloader/domain/linkCollector"
)

func main() {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := listenForCancellationAndAddToContext()
	defer cancel()

	app := cli.App{
		Name:  appName,
		Usage: "download every file a web page links to",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "YAML config file", Value: ConfigFile()},
			&cli.StringFlag{Name: "url", Aliases: []string{"u"}, Usage: "page to collect links from"},
			&cli.StringFlag{Name: "ext", Aliases: []string{"e"}, Usage: "literal suffix of the links to download, e.g. pdf"},
			&cli.StringFlag{Name: "dest", Aliases: []string{"d"}, Usage: "existing directory (or S3 key prefix) to download into"},
			&cli.Uint64Flag{Name: "pool-size", Usage: "max concurrent downloads, 0 for unlimited"},
			&cli.DurationFlag{Name: "timeout", Usage: "HTTP request timeout, 0 for none"},
			&cli.BoolFlag{Name: "same-host", Usage: "only download links hosted on the page's site"},
			&cli.StringFlag{Name: "storage", Usage: "where to store downloads: file or s3"},
			&cli.StringFlag{Name: "s3-bucket", Usage: "bucket for s3 storage"},
			&cli.StringFlag{Name: "s3-region", Usage: "region of the s3 bucket"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := LoadConfig(c.String("config"))
			if err != nil {
				return err
			}
			applyFlags(c, &cfg)

			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(c.Context, logger, cfg)
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		logger.Printf("%s: %s", appName, err)
		cancel()
		os.Exit(1)
	}
}

func applyFlags(c *cli.Context, cfg *Config) {
	if c.IsSet("url") {
		cfg.PageURL = c.String("url")
	}
	if c.IsSet("ext") {
		cfg.Extension = c.String("ext")
	}
	if c.IsSet("dest") {
		cfg.DestinationDir = c.String("dest")
	}
	if c.IsSet("pool-size") {
		cfg.PoolSize = c.Uint64("pool-size")
	}
	if c.IsSet("timeout") {
		cfg.HTTPTimeout = c.Duration("timeout")
	}
	if c.IsSet("same-host") {
		cfg.SameHostOnly = c.Bool("same-host")
	}
	if c.IsSet("storage") {
		cfg.Storage = c.String("storage")
	}
	if c.IsSet("s3-bucket") {
		cfg.S3Bucket = c.String("s3-bucket")
	}
	if c.IsSet("s3-region") {
		cfg.S3Region = c.String("s3-region")
	}
}

func run(ctx context.Context, logger Logger, cfg Config) error {
	store, err := newStore(cfg)
	if err != nil {
		return err
	}

	var filters []linkCollector.LinkFilter
	if cfg.SameHostOnly {
		page, err := url.Parse(cfg.PageURL)
		if err != nil {
			return errors.Wrap(err, "parsing page url")
		}
		filters = append(filters, sameDomainFilter.New(page))
	}

	app := NewApp(AppConfig{
		Logger:           logger,
		FetcherExtractor: urlFetcherExtractor.NewHTTPFetcherExtractor(cfg.HTTPTimeout),
		Store:            store,
		LinkFilters:      filters,
		DownloadPoolConfig: DownloadPoolConfig{
			PoolSize: cfg.PoolSize,
		},
	})

	return app.Run(ctx, cfg.PageURL, cfg.Extension, cfg.DestinationDir)
}

func newStore(cfg Config) (Store, error) {
	if cfg.Storage == storageS3 {
		awsConfig := aws.NewConfig()
		if cfg.S3Region != "" {
			awsConfig = awsConfig.WithRegion(cfg.S3Region)
		}

		sess, err := session.NewSession(awsConfig)
		if err != nil {
			return nil, errors.Wrap(err, "creating aws session")
		}
		return s3Store.NewFromSession(sess, cfg.S3Bucket), nil
	}

	info, err := os.Stat(cfg.DestinationDir)
	if err != nil {
		return nil, errors.Wrap(err, "checking destination directory")
	}
	if !info.IsDir() {
		return nil, errors.Errorf("destination %s is not a directory", cfg.DestinationDir)
	}
	return fileStore.New(), nil
}

func listenForCancellationAndAddToContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
