package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/umputun/newsbot/pkg/config"
	"github.com/umputun/newsbot/pkg/content"
	"github.com/umputun/newsbot/pkg/feed"
	"github.com/umputun/newsbot/pkg/metrics"
	"github.com/umputun/newsbot/pkg/notify"
	"github.com/umputun/newsbot/pkg/repository"
	"github.com/umputun/newsbot/pkg/scheduler"
	"github.com/umputun/newsbot/pkg/service"
	"github.com/umputun/newsbot/pkg/telegram"
	"github.com/umputun/newsbot/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"newsbot.yml" description:"configuration file"`
	Token  string `long:"token" env:"TELEGRAM_TOKEN" description:"telegram bot token, overrides config"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	SetupLog(opts.Debug, opts.Token)

	log.Printf("[INFO] starting newsbot version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()
	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires storage, fetching, delivery and the scheduler, then serves http until ctx is done
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config, func(c *config.Config) {
		if opts.Token != "" {
			c.Telegram.Token = opts.Token
		}
		if opts.Listen != "" {
			c.Server.Listen = opts.Listen
		}
	})
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Token == "" {
		SetupLog(opts.Debug, cfg.Telegram.Token) // token came from the config file
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()
	dataService := service.NewDataService(repos)

	sender, err := telegram.NewSender(telegram.Params{
		Token:   cfg.Telegram.Token,
		APIURL:  cfg.Telegram.APIURL,
		Timeout: cfg.Telegram.Timeout,
	})
	if err != nil {
		return fmt.Errorf("failed to make telegram sender: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(reg)

	distributor := notify.NewDistributor(notify.Params{
		Store:                 dataService,
		Sender:                sender,
		Metrics:               collector,
		MaxItems:              cfg.Scheduler.MaxItemsPerUpdate,
		MaxMessageLength:      cfg.Message.MaxLength,
		Interval:              cfg.Scheduler.DeliveryInterval,
		DeactivateUnreachable: cfg.Scheduler.DeactivateUnreachable,
	})

	fetcher := feed.NewFetcher(feed.Params{
		Timeout:      cfg.Fetch.Timeout,
		UserAgent:    cfg.Fetch.UserAgent,
		AllowPrivate: cfg.Fetch.AllowPrivate,
		MaxPageItems: cfg.Fetch.MaxPageItems,
		Extractor:    content.NewExtractor(),
	})

	sched := scheduler.NewScheduler(scheduler.Params{
		Store:         dataService,
		Fetcher:       fetcher,
		Distributor:   distributor,
		Metrics:       collector,
		Interval:      cfg.Scheduler.Interval,
		MaxRetries:    cfg.Scheduler.MaxRetries,
		RetryDelay:    cfg.Scheduler.RetryDelay,
		BatchSize:     cfg.Scheduler.BatchSize,
		BatchDelay:    cfg.Scheduler.BatchDelay,
		ErrorCooldown: cfg.Scheduler.ErrorCooldown,
	})
	if err := sched.Start(ctx); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer func() {
		if err := sched.Stop(); err != nil {
			log.Printf("[WARN] scheduler stopped with error: %v", err)
		}
	}()

	srv := server.New(cfg, dataService, sched, metrics.Handler(reg), revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// SetupLog configures lgr and the std logger, secrets are masked in the output
func SetupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	var secrets []string
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
