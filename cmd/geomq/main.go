package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"honnef.co/go/geom"
)

func main() {
	var verbose bool
	rootCmd := &cobra.Command{
		Use:          "geomq",
		Short:        "Evaluate ray geometry queries",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				geom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log geometry errors to stderr")

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(rayCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "run [query-file]",
		Short: "Run the queries in a YAML, TOML or JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueries(cmd.OutOrStdout(), args[0], asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON lines")
	return cmd
}

func rayCmd() *cobra.Command {
	var opts rayOptions
	cmd := &cobra.Command{
		Use:   "ray",
		Short: "Describe a ray and optionally the point on it nearest to another",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.hasAngle = cmd.Flags().Changed("angle")
			return describeRay(cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.origin, "origin", "0,0", "origin as x,y")
	cmd.Flags().Float64Var(&opts.angle, "angle", 0, "direction in radians")
	cmd.Flags().StringVar(&opts.through, "through", "", "a point the ray passes through, as x,y")
	cmd.Flags().StringVar(&opts.point, "point", "", "find the point of the ray nearest to x,y")
	cmd.MarkFlagsMutuallyExclusive("angle", "through")
	cmd.MarkFlagsOneRequired("angle", "through")
	return cmd
}
