package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nkumar/talentpool/internal/app/services"
	"github.com/nkumar/talentpool/internal/bootstrap"
	"github.com/nkumar/talentpool/internal/pkg/logger"
)

var (
	flagDir    string
	flagConfig string
	flagDryRun bool
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "importer",
		Short: "Bulk applicant spreadsheet importer",
		Long:  "Walks a directory of .xlsx/.xlsm/.csv files and ingests every data row as an applicant record.",
	}

	runCmd := &cobra.Command{
		Use:          "run",
		Short:        "Run a bulk import over a source directory",
		RunE:         runImport,
		SilenceUsage: true,
	}
	runCmd.Flags().StringVar(&flagDir, "dir", "", "directory to scan for tabular files (default from config)")
	runCmd.Flags().StringVar(&flagConfig, "config", "", "path to config file")
	runCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "resolve and report without writing")

	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(flagConfig)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	dir := flagDir
	if dir == "" {
		dir = cfg.Import.SourceDir
	}
	if dir == "" {
		return fmt.Errorf("no source directory: pass --dir or set import.sourceDir")
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}
	defer dbPool.Close()

	deps, err := bootstrap.BuildDependencies(cfg, dbPool, lgr)
	if err != nil {
		return fmt.Errorf("building dependencies: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	importService := services.NewImportService(deps.Engine, lgr)
	report, err := importService.Run(ctx, dir, flagDryRun)
	if report != nil {
		report.Print(os.Stdout)
	}
	if err != nil {
		return fmt.Errorf("import run: %w", err)
	}

	sum := report.Summary()
	if sum.Processed > 0 && sum.Errored == sum.Processed {
		logger.Error().Str("runID", sum.RunID.String()).Msg("every row failed")
		return fmt.Errorf("all %d rows failed", sum.Processed)
	}

	return nil
}
