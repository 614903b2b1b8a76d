package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/corpustools/standoff/internal/util"
	"github.com/corpustools/standoff/pkg/brat"
	"github.com/corpustools/standoff/pkg/corpus"
	s3corpus "github.com/corpustools/standoff/pkg/corpus/s3"
	"github.com/corpustools/standoff/pkg/logger"
	"github.com/corpustools/standoff/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// logger
	debug := util.GetEnvBool("DEBUG", false)
	logger.Init(console.NewConsoleBackend(console.ConsoleBackendParams{
		Debug: debug,
	}))

	root := util.GetEnv("CORPUS_DIR")
	if len(os.Args) > 1 {
		root = os.Args[1]
	}
	if root == "" {
		logger.Fatal("No corpus root given (first argument or CORPUS_DIR)")
	}

	runID, err := gonanoid.New()
	if err != nil {
		logger.Fatal("Could not create run id", "err", err)
	}

	// Corpus source
	var source corpus.Source = corpus.NewDiskSource()
	if util.GetEnv("CORPUS_SOURCE") == "s3" {
		s3Source, err := s3corpus.NewCorpusSource(ctx, s3corpus.NewCorpusSourceParams{
			Bucket:    util.GetEnv("AWS_BUCKET"),
			Endpoint:  util.GetEnv("AWS_ENDPOINT"),
			Region:    util.GetEnv("AWS_REGION"),
			AccessKey: util.GetEnv("AWS_ACCESS_KEY"),
			SecretKey: util.GetEnv("AWS_SECRET_KEY"),
		})
		if err != nil {
			logger.Fatal("Could not create S3 corpus source", "err", err)
		}
		source = s3Source
	}

	var ignoredKinds []brat.Kind
	for _, kind := range strings.Split(util.GetEnv("IGNORE_KINDS"), ",") {
		if kind = strings.TrimSpace(kind); kind != "" {
			ignoredKinds = append(ignoredKinds, brat.Kind(kind))
		}
	}

	parser, err := brat.NewParser(brat.NewParserParams{
		Source:       source,
		IgnoredKinds: ignoredKinds,
		ErrorMode:    brat.ErrorMode(util.GetEnvString("ERROR_MODE", "strict")),
		TextEncoding: util.GetEnvString("TEXT_ENCODING", "utf-8"),
		ParallelDocs: util.GetEnvInt("PARALLEL_DOCS", 4),
	})
	if err != nil {
		logger.Fatal("Invalid parser configuration", "err", err)
	}

	started := time.Now()
	documents, err := parser.Parse(ctx, root)
	if err != nil {
		logger.Fatal("Corpus parse failed", "run_id", runID, "err", err)
	}

	var entities, relations, events int
	for _, document := range documents {
		entities += len(document.Entities)
		relations += len(document.Relations)
		events += len(document.Events)
	}
	logger.Info("Corpus parsed",
		"run_id", runID,
		"documents", len(documents),
		"entities", entities,
		"relations", relations,
		"events", events,
		"took", time.Since(started),
	)

	if util.GetEnv("OUTPUT") == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(documents); err != nil {
			logger.Fatal("Failed to write JSON output", "err", err)
		}
	}
}
