// Command signupguard serves the registration form with live field
// validation, the profile name editor and the evaluation JSON API.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/dmitrymomot/signupguard/internal/web"
	"github.com/dmitrymomot/signupguard/pkg/config"
	"github.com/dmitrymomot/signupguard/pkg/httpserver"
	"github.com/dmitrymomot/signupguard/pkg/logger"
	"github.com/dmitrymomot/signupguard/pkg/signup"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load[appConfig]()
	if err != nil {
		return err
	}

	log, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.SetAsDefault(log)

	eval, err := newEvaluator(cfg.GuidanceFile)
	if err != nil {
		log.Error("guidance catalogue rejected", slog.String("path", cfg.GuidanceFile), logger.Error(err))
		return err
	}

	handler := web.NewHandler(
		web.WithEvaluator(eval),
		web.WithLogger(log),
		web.WithScriptURL(cfg.ScriptURL),
	)
	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, web.NewRouter(handler))
}

func newLogger(cfg appConfig) (*slog.Logger, func(), error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Service),
		logger.WithContextExtractors(web.RequestIDExtractor()),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}

	closer := func() {}
	if cfg.LogFile != "" {
		rotated := &lumberjack.Logger{
			Filename: cfg.LogFile,
			MaxSize:  cfg.LogMaxSizeMB,
			MaxAge:   cfg.LogMaxAge,
			Compress: true,
		}
		opts = append(opts, logger.WithOutput(io.MultiWriter(os.Stdout, rotated)))
		closer = func() { _ = rotated.Close() }
	}
	return logger.New(opts...), closer, nil
}

// newEvaluator merges the optional guidance override file over the built-in
// catalogue.
func newEvaluator(path string) (*signup.Evaluator, error) {
	if path == "" {
		return signup.NewEvaluator(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open guidance file: %w", err)
	}
	defer f.Close()

	override, err := signup.LoadGuidance(f)
	if err != nil {
		return nil, err
	}
	return signup.NewEvaluator(signup.WithGuidance(override)), nil
}
