package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"WireRing/internal/api"
	"WireRing/internal/calc/brand"
	"WireRing/internal/config"
	"WireRing/internal/form"
	"WireRing/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	logger  = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "ringcalc",
		Short:        "Wire ring and sheet size calculator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if verbose {
				level = "debug"
			}
			l, err := logging.New(level)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newCalcCmd(), newBrandsCmd(), newServeCmd())
	return root
}

var calcFlags = []struct {
	flag  string
	field form.Field
	usage string
}{
	{"width", form.FieldWidth, "tray width in mm"},
	{"depth", form.FieldDepth, "tray depth in mm"},
	{"bend-height", form.FieldBendHeight, "bend height in mm (defaults to the brand preset)"},
	{"wire-diameter", form.FieldWireDiameter, "wire diameter in mm"},
}

func newCalcCmd() *cobra.Command {
	var brandID string
	raw := make(map[string]*string, len(calcFlags))

	cmd := &cobra.Command{
		Use:     "calc",
		Short:   "Compute wire size and sheet size",
		Example: "  ringcalc calc --brand lifetime --width 200 --depth 150 --wire-diameter 1",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := form.New(form.WithLogger(logger))
			if cmd.Flags().Changed("brand") {
				c.SetBrand(brandID)
			}
			for _, f := range calcFlags {
				if cmd.Flags().Changed(f.flag) {
					c.SetField(f.field, *raw[f.flag])
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), renderState(c.Snapshot()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&brandID, "brand", "b", "", "brand preset ("+brandIDs()+")")
	for _, f := range calcFlags {
		raw[f.flag] = cmd.Flags().String(f.flag, "", f.usage)
	}
	return cmd
}

func newBrandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "brands",
		Short: "List brand presets and their partition tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), renderBrands())
			return nil
		},
	}
}

func newServeCmd() *cobra.Command {
	var envFile string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			if verbose {
				cfg.LogLevel = "debug"
			}
			l, err := logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			logger = l

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return api.ListenAndServe(ctx, cfg, logger)
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	return cmd
}

func brandIDs() string {
	var s string
	for i, b := range brand.Brands() {
		if i > 0 {
			s += ", "
		}
		s += b.ID
	}
	return s
}
