// pulsar-ingest seeds the internal query service with a demo daily dataset.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pulsar/internal/seed"
	"pulsar/pkg/clients/ingest"
	"pulsar/pkg/config"
	"pulsar/pkg/logging"
	"pulsar/pkg/version"
)

var (
	ingestURL string
	tenantID  string
	startDate string
	days      int
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pulsar-ingest",
		Short:         "Seed the query service with demo market data",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&ingestURL, "ingest-url", config.GetEnv("INGEST_SERVICE_URL", "http://localhost:8081"), "ingest service base URL")
	rootCmd.PersistentFlags().StringVar(&tenantID, "tenant", config.GetEnv("DEFAULT_TENANT_ID", "DEFAULT"), "tenant to seed")

	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func newSeedCmd() *cobra.Command {
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load daily closing prices for the demo instrument universe",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewLoggerWithService("pulsar-ingest")

			points, err := seed.DailyCloses(tenantID, startDate, days, seed.DefaultInstruments)
			if err != nil {
				return fmt.Errorf("build seed dataset: %w", err)
			}

			client := ingest.NewClient(ingestURL)
			batch := ingest.BatchRequest{
				TenantID:    tenantID,
				Periodicity: "DAILY",
				Data:        points,
			}
			if err := client.IngestBatch(cmd.Context(), batch); err != nil {
				return fmt.Errorf("ingest batch: %w", err)
			}

			logger.WithFields(logging.Fields{
				"tenant_id": tenantID,
				"points":    len(points),
				"start":     startDate,
				"days":      days,
			}).Info("Seed dataset ingested")
			return nil
		},
	}

	seedCmd.Flags().StringVar(&startDate, "start", seed.DefaultStartDate, "first period date (YYYY-MM-DD)")
	seedCmd.Flags().IntVar(&days, "days", seed.DefaultDays, "number of consecutive days to generate")
	return seedCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pulsar-ingest %s (%s)\n", version.Version, version.GetShortCommit())
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
