package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/rocket/pkg/buildinfo"
	"github.com/matzehuels/rocket/pkg/errors"
	"github.com/matzehuels/rocket/pkg/pipeline"
)

// buildOpts holds the command-line flags for building a rocket.
type buildOpts struct {
	height    int    // total rows
	heightSet bool   // height came from an argument, flag or config
	palette   string // accepted for compatibility, no effect on output
	seed      uint64 // random seed; drawn when not set
	format    string // output format: "text" or "json"
	fill      bool   // pad rows to the full rocket width
	parts     string // optional TOML part catalog
	config    string // optional TOML config file
}

// RootCommand creates the root cobra command with all subcommands registered.
// Running the root command builds and prints one rocket.
func (c *CLI) RootCommand() *cobra.Command {
	opts := buildOpts{
		palette: pipeline.DefaultPalette,
		format:  pipeline.DefaultFormat,
	}

	root := &cobra.Command{
		Use:   "rocket [height]",
		Short: "Rocket draws a random ASCII-art rocket",
		Long: `Rocket assembles a random rocket of the requested height from a catalog of
ASCII-art parts and prints it centered on standard output.

The height is given as an argument or with --height. Values not given on the
command line are read from $XDG_CONFIG_HOME/rocket/config.toml when present.`,
		Example: `  rocket 12
  rocket --height 20 --seed 7
  rocket -H 10 --format json`,
		Version:       buildinfo.Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			c.Logger.Debug("starting", "version", buildinfo.Short())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.heightSet = cmd.Flags().Changed("height")
			if len(args) == 1 {
				if opts.heightSet {
					return errors.New(errors.ErrCodeInvalidInput, "height given twice: as argument and with --height")
				}
				h, err := strconv.Atoi(args[0])
				if err != nil {
					return errors.New(errors.ErrCodeInvalidInput, "height must be an integer, got %q", args[0])
				}
				opts.height = h
				opts.heightSet = true
			}
			return c.runBuild(cmd, &opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.Flags().IntVarP(&opts.height, "height", "H", 0, "rocket height in rows (at least 3)")
	root.Flags().StringVarP(&opts.palette, "palette", "p", opts.palette, "color palette: america")
	root.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed for a reproducible rocket")
	root.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text (default), json")
	root.Flags().BoolVar(&opts.fill, "fill", false, "pad every row to the full rocket width")
	root.PersistentFlags().StringVar(&opts.parts, "parts", "", "TOML part catalog to build from")
	root.PersistentFlags().StringVar(&opts.config, "config", "", "TOML config file (default $XDG_CONFIG_HOME/rocket/config.toml)")

	// Register all subcommands
	root.AddCommand(c.catalogCommand(&opts))
	root.AddCommand(c.completionCommand())

	return root
}

// runBuild resolves flags and config, builds one rocket and writes it to
// the command's output.
func (c *CLI) runBuild(cmd *cobra.Command, opts *buildOpts) error {
	logger := loggerFromContext(cmd.Context())

	cfg, path, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	if path != "" {
		logger.Debug("loaded config", "path", path)
	}
	seed := cfg.apply(opts, cmd.Flags().Changed)
	if !opts.heightSet {
		return errors.New(errors.ErrCodeInvalidInput, "a height is required (argument, --height, or config)")
	}

	cat, err := loadCatalog(opts.parts)
	if err != nil {
		return err
	}

	popts := pipeline.Options{
		Height:  opts.height,
		Palette: opts.palette,
		Seed:    seed,
		Format:  opts.format,
		Fill:    opts.fill,
		Catalog: cat,
	}
	logger.Debug("building", "height", popts.Height, "format", popts.Format, "parts", cat.Len())

	result, err := c.newRunner().Execute(cmd.Context(), popts)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), string(result.Output))
	return err
}
