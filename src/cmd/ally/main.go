package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/ally-invest/src/ally"
	"github.com/jiaming2012/ally-invest/src/cmd/ally/run"
)

var rootCmd = &cobra.Command{
	Use:   "go run src/cmd/ally/main.go",
	Short: "Query and trade an Ally Invest account",
}

// setup builds a client from the persistent flags. The caller must call the returned
// shutdown.
func setup(cmd *cobra.Command) (*ally.Client, func()) {
	goEnv, err := cmd.Flags().GetString("go-env")
	if err != nil {
		log.Fatalf("error getting go-env: %v", err)
	}

	logLevel, err := cmd.Flags().GetString("log-level")
	if err != nil {
		log.Fatalf("error getting log-level: %v", err)
	}

	jsonLogs, err := cmd.Flags().GetBool("json-logs")
	if err != nil {
		log.Fatalf("error getting json-logs: %v", err)
	}

	otel, err := cmd.Flags().GetBool("otel")
	if err != nil {
		log.Fatalf("error getting otel: %v", err)
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		log.Fatalf("error getting format: %v", err)
	}

	client, shutdown, err := run.Setup(cmd.Context(), run.SetupArgs{
		EnvDir:    os.Getenv("PROJECTS_DIR"),
		GoEnv:     goEnv,
		LogLevel:  logLevel,
		JSONLogs:  jsonLogs,
		Telemetry: otel,
		Format:    format,
	})
	if err != nil {
		log.Fatalf("setup failed: %v", err)
	}

	return client, func() {
		if err := shutdown(context.Background()); err != nil {
			log.Errorf("telemetry shutdown: %v", err)
		}
	}
}

func main() {
	rootCmd.PersistentFlags().String("go-env", "development", "selects .env.<go-env> under $PROJECTS_DIR")
	rootCmd.PersistentFlags().String("log-level", "info", "logrus level")
	rootCmd.PersistentFlags().Bool("json-logs", false, "log as JSON")
	rootCmd.PersistentFlags().Bool("otel", false, "export traces and metrics over OTLP")
	rootCmd.PersistentFlags().String("format", "", "response format, json or xml (default $ALLY_RESPONSE_FORMAT)")

	addAccountCommands(rootCmd)
	addMarketCommands(rootCmd)
	addOrderCommands(rootCmd)
	addWatchlistCommands(rootCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
