package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"parcelnorm/internal"
	"parcelnorm/internal/config"
	"parcelnorm/internal/county"
	"parcelnorm/internal/logging"
	"parcelnorm/internal/pipeline"
	"parcelnorm/internal/storage"
)

var (
	cfg    config.Config
	log    zerolog.Logger
	dbPath string
)

func main() {
	root := &cobra.Command{
		Use:           "parcelnorm",
		Short:         "Normalizes county property appraiser pages into linked JSON records.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			cfg.DBPath = flagOr(dbPath, cfg.DBPath)
			log = logging.New(cfg.LogFormat, cfg.LogLevel)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&dbPath, "db", "", "sqlite run ledger")
	root.AddCommand(runCmd(), runsCmd(), reviewCmd(), profilesCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		var verr *internal.ValidationError
		if errors.As(err, &verr) {
			b, _ := json.Marshal(verr)
			fmt.Fprintln(os.Stderr, string(b))
			os.Exit(2)
		}
		must(err)
	}
}

func must(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	var req pipeline.Request
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Normalize one input directory into the output directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			req.InputDir = flagOr(req.InputDir, cfg.InputDir)
			req.OutputDir = flagOr(req.OutputDir, cfg.OutputDir)
			req.County = flagOr(req.County, cfg.County)
			req.ProfilePath = flagOr(req.ProfilePath, cfg.ProfilePath)
			req.BaseURL = flagOr(req.BaseURL, cfg.BaseURL)
			req.WorkbookPath = flagOr(req.WorkbookPath, cfg.ExportXLSX)
			if err := cfg.Require("county", req.County); err != nil {
				return err
			}

			var db *storage.DB
			if cfg.DBPath != "" {
				var err error
				db, err = storage.Open(cfg.DBPath)
				if err != nil {
					return err
				}
				defer db.Close()
			}

			res, err := pipeline.NewService(log, db).Process(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Printf("run %s parcel=%s files=%d relationships=%d unmapped=%d\n",
				res.TraceID, res.ParcelID, len(res.Files), len(res.Relationships), len(res.Review))
			if res.Workbook != "" {
				fmt.Printf("workbook written to %s\n", res.Workbook)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&req.InputDir, "input", "", "input directory holding input.html and sidecars")
	f.StringVar(&req.OutputDir, "out", "", "output directory, emptied before writing")
	f.StringVar(&req.County, "county", "", "county profile name")
	f.StringVar(&req.ProfilePath, "profile", "", "JSON5 file merged over the county profile")
	f.StringVar(&req.BaseURL, "base-url", "", "base URL for relative document links")
	f.StringVar(&req.WorkbookPath, "xlsx", "", "also write a run summary workbook")
	return cmd
}

func runsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent runs from the ledger.",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openLedger()
			if err != nil {
				return err
			}
			defer db.Close()

			rows, err := db.ListRuns(limit)
			if err != nil {
				return err
			}
			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"Trace", "County", "Parcel", "Status", "Files", "Created"})
			for _, r := range rows {
				status := r.Status
				if r.AbortReason != nil {
					status += ": " + *r.AbortReason
				}
				files := 0
				for kind, n := range r.Counts {
					if kind != "relationship" {
						files += n
					}
				}
				t.AppendRow(table.Row{r.TraceID, r.County, r.ParcelID, status, files, r.CreatedAt})
			}
			t.SetStyle(table.StyleRounded)
			t.Render()
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of runs to show")
	return cmd
}

func reviewCmd() *cobra.Command {
	var traceID string
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Show source labels that fell back to a default mapping.",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openLedger()
			if err != nil {
				return err
			}
			defer db.Close()

			if traceID != "" {
				if _, err := db.MustRun(traceID); err != nil {
					return err
				}
			}
			rows, err := db.ReviewQueue(traceID)
			if err != nil {
				return err
			}
			if cfg.ReviewLimit > 0 && len(rows) > cfg.ReviewLimit {
				rows = rows[:cfg.ReviewLimit]
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"Domain", "Raw", "Suggestion", "Score", "Seen"})
			for _, r := range rows {
				suggestion, score := "", ""
				if r.Suggestion != nil {
					suggestion = *r.Suggestion
				}
				if r.Score != nil {
					score = strconv.FormatFloat(*r.Score, 'f', 2, 64)
				}
				t.AppendRow(table.Row{r.Domain, r.Raw, suggestion, score, r.Seen})
			}
			t.SetStyle(table.StyleRounded)
			t.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&traceID, "run", "", "limit to one run trace id")
	return cmd
}

func profilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the built-in county profiles.",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"Profile", "County", "Classification order"})
			for _, name := range county.Names() {
				p, err := county.Load(name)
				if err != nil {
					return err
				}
				order := make([]string, 0, len(p.ClassificationOrder))
				for _, s := range p.ClassificationOrder {
					order = append(order, string(s))
				}
				t.AppendRow(table.Row{name, p.CountyName, strings.Join(order, ", ")})
			}
			t.SetStyle(table.StyleRounded)
			t.Render()
			return nil
		},
	}
}

func openLedger() (*storage.DB, error) {
	if err := cfg.Require("PARCELNORM_DB_PATH", cfg.DBPath); err != nil {
		return nil, err
	}
	return storage.Open(cfg.DBPath)
}

func flagOr(flag, fallback string) string {
	if strings.TrimSpace(flag) != "" {
		return flag
	}
	return fallback
}
