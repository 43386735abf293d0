package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go-wiktionary-wsd/lib/config"
	"go-wiktionary-wsd/lib/dataset"
	"go-wiktionary-wsd/lib/dump"
	"go-wiktionary-wsd/lib/sense"
	"go-wiktionary-wsd/lib/store"

	"github.com/macdub/go-colorlog"
)

var (
	logger *colorlog.ColorLog = colorlog.New(colorlog.Linfo)

	errVerify = errors.New("saved dataset does not match")
)

func main() {
	configFile := flag.String("config", "", "YAML config file; WSD_* environment variables override it")
	wikiFile := flag.String("wiki-file", "", "Wiktionary dump to parse (.xml or .xml.bz2)")
	saveDir := flag.String("save-dir", "", "Directory for senses.txt, examples.txt and quotations.txt")
	lang := flag.String("lang", sense.DefaultLanguage, "Language section to parse")
	db := flag.String("database", "", "Also store the dataset in this sqlite database")
	purge := flag.Bool("purge", false, "Purge the sqlite database first")
	mongoURI := flag.String("mongo", "", "Also store the dataset in this mongo deployment")
	logFile := flag.String("log_file", "", "Log to this file")
	verbose := flag.Bool("verbose", false, "Use verbose logging")
	progress := flag.Bool("progress", false, "Show a progress bar while reading the dump")
	verify := flag.Bool("verify", false, "Read the saved files back and check them")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// flags given on the command line win over the config
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "wiki-file":
			cfg.WikiFile = *wikiFile
		case "save-dir":
			cfg.SaveDir = *saveDir
		case "lang":
			cfg.Language = *lang
		case "database":
			cfg.Database = *db
		case "mongo":
			cfg.MongoURI = *mongoURI
		case "log_file":
			cfg.LogFile = *logFile
		case "verbose":
			cfg.Verbose = *verbose
		case "progress":
			cfg.Progress = *progress
		case "verify":
			cfg.Verify = *verify
		}
	})

	if cfg.LogFile != "" {
		logger = colorlog.NewFileLog(colorlog.Linfo, cfg.LogFile)
	}
	if cfg.Verbose {
		logger.SetLogLevel(colorlog.Ldebug)
	}
	sense.Logger = logger
	dump.Logger = logger
	dataset.Logger = logger
	store.Logger = logger

	logger.Info("+--------------------------------------------------\n")
	logger.Info("| Start Time    :    %v\n", time.Now())
	logger.Info("| Wiki File     :    %s\n", cfg.WikiFile)
	logger.Info("| Save Dir      :    %s\n", cfg.SaveDir)
	logger.Info("| Language      :    %s\n", cfg.Language)
	logger.Info("| Database      :    %s\n", cfg.Database)
	logger.Info("| Purge         :    %t\n", *purge)
	logger.Info("| Mongo         :    %t\n", cfg.MongoURI != "")
	logger.Info("| Verbose       :    %t\n", cfg.Verbose)
	logger.Info("| Verify        :    %t\n", cfg.Verify)
	logger.Info("+--------------------------------------------------\n")

	logger.Debug("NOTE: language should be given as its section heading (e.g. English, French, West Frisian, etc.)\n")

	check(cfg.Validate())
	check(run(context.Background(), cfg, *purge))
}

// run builds the dataset described by cfg: parse the dump, post process the
// senses, save the flat files and hand the result to any configured stores.
func run(ctx context.Context, cfg *config.Config, purge bool) error {
	startTime := time.Now()

	logger.Info("Parsing dump file\n")
	senses, pageStats, err := dump.ParseFile(cfg.WikiFile, dump.Options{
		Language: cfg.Language,
		Progress: cfg.Progress,
	})
	if err != nil {
		return err
	}
	logger.Info("%v\n", pageStats)
	logger.Printc(colorlog.Linfo, colorlog.Grey, "elapsed %s\n", time.Since(startTime))

	start := time.Now()
	logger.Info("Post processing ... ")
	d, stats := dataset.PostProcess(senses)
	logger.Printc(colorlog.Linfo, colorlog.Grey, "elapsed %s\n", time.Since(start))
	logger.Info("%v\n", stats)

	logger.Info("Saving to %s\n", cfg.SaveDir)
	if err := dataset.Save(cfg.SaveDir, d); err != nil {
		return err
	}

	sinks, err := openSinks(ctx, cfg, purge)
	defer func() {
		for _, s := range sinks {
			if err := s.Close(ctx); err != nil {
				logger.Error("%s\n", err.Error())
			}
		}
	}()
	if err != nil {
		return err
	}
	for _, s := range sinks {
		if err := s.Store(ctx, d); err != nil {
			return err
		}
	}

	if cfg.Verify {
		if err := verifySaved(cfg.SaveDir, d); err != nil {
			return err
		}
		logger.Info("Verified %s\n", cfg.SaveDir)
	}

	logger.Info("Completed in %s\n", time.Since(startTime))
	return nil
}

func openSinks(ctx context.Context, cfg *config.Config, purge bool) ([]store.Sink, error) {
	var sinks []store.Sink

	if cfg.Database != "" {
		s, err := store.OpenSQLite(cfg.Database, purge)
		if err != nil {
			return sinks, err
		}
		sinks = append(sinks, s)
	}

	if cfg.MongoURI != "" {
		s, err := store.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoCollection)
		if err != nil {
			return sinks, err
		}
		sinks = append(sinks, s)
	}

	return sinks, nil
}

// verifySaved reads the flat files back and compares them with d.
func verifySaved(dir string, d dataset.Dataset) error {
	loaded, err := dataset.Load(dir)
	if err != nil {
		return err
	}

	if len(loaded.Senses) != len(d.Senses) {
		return fmt.Errorf("%d of %d senses: %w", len(loaded.Senses), len(d.Senses), errVerify)
	}
	for i := range d.Senses {
		if loaded.Senses[i].SenseID != d.Senses[i].SenseID || loaded.Senses[i].Gloss != d.Senses[i].Gloss {
			return fmt.Errorf("sense %s: %w", d.Senses[i].SenseID, errVerify)
		}
	}
	if len(loaded.Examples) != len(d.Examples) {
		return fmt.Errorf("%d of %d examples: %w", len(loaded.Examples), len(d.Examples), errVerify)
	}
	if len(loaded.Quotations) != len(d.Quotations) {
		return fmt.Errorf("%d of %d quotations: %w", len(loaded.Quotations), len(d.Quotations), errVerify)
	}

	return nil
}

// Helper functions
func check(err error) {
	if err != nil {
		logger.Fatal("%s\n", err.Error())
		panic(err)
	}
}
