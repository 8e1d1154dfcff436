package run

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/ally-invest/src/ally"
	"github.com/jiaming2012/ally-invest/src/logger"
	"github.com/jiaming2012/ally-invest/src/responses"
	"github.com/jiaming2012/ally-invest/src/telemetry"
	"github.com/jiaming2012/ally-invest/src/utils"
)

const serviceName = "ally-invest"

type SetupArgs struct {
	EnvDir    string
	GoEnv     string
	LogLevel  string
	JSONLogs  bool
	Telemetry bool
	Format    string
}

// Setup loads the environment, configures logging and optionally telemetry, and
// returns a client. The returned shutdown must be called before exiting.
func Setup(ctx context.Context, args SetupArgs) (*ally.Client, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	if args.EnvDir != "" {
		if err := utils.InitEnvironmentVariables(args.EnvDir, args.GoEnv); err != nil {
			return nil, noop, fmt.Errorf("Setup: %w", err)
		}
	}

	// stdout is reserved for command output
	logger.SetOutput(os.Stderr)
	if err := logger.Setup(args.LogLevel, args.JSONLogs); err != nil {
		return nil, noop, fmt.Errorf("Setup: %w", err)
	}

	shutdown := noop
	if args.Telemetry {
		var err error
		if shutdown, err = telemetry.Setup(ctx, serviceName); err != nil {
			return nil, noop, fmt.Errorf("Setup: %w", err)
		}
	}

	cfg, err := ally.NewConfigFromEnv()
	if err != nil {
		return nil, shutdown, fmt.Errorf("Setup: %w", err)
	}

	if args.Format != "" {
		if cfg.Format, err = responses.ParseFormat(args.Format); err != nil {
			return nil, shutdown, fmt.Errorf("Setup: %w", err)
		}
	}

	client, err := ally.NewClient(cfg)
	if err != nil {
		return nil, shutdown, fmt.Errorf("Setup: %w", err)
	}

	log.WithField("format", cfg.Format).Debug("client ready")

	return client, shutdown, nil
}
