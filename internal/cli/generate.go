package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/shieldicon/pkg/background"
	"github.com/matzehuels/shieldicon/pkg/config"
	"github.com/matzehuels/shieldicon/pkg/errors"
	"github.com/matzehuels/shieldicon/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	configPath string
	background string
	font       string
	seed       uint64
	outputs    []string // "path" or "path:size"
}

// generateCommand creates the generate command, which renders and saves the icon.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the icon and write it at every output size",
		Long: `Render the icon and write it at every output size.

The background is read from public/ai_background.png unless --background is
given. A missing background is replaced by a radial gradient, an unreadable
one by a solid colour. By default the icon is written to public/icon-512.png
and public/icon-192.png.

Values from shieldicon.toml (or --config) are used for flags that are not
set on the command line.`,
		Example: `  shieldicon generate
  shieldicon generate --seed 42
  shieldicon generate -o dist/icon.png:1024 -o dist/favicon.png:32`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (default: ./shieldicon.toml if present)")
	cmd.Flags().StringVarP(&opts.background, "background", "b", "", "background image (default: "+pipeline.DefaultBackground+")")
	cmd.Flags().StringVar(&opts.font, "font", "", "TrueType font file (default: search system fonts)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed, 0 picks one")
	cmd.Flags().StringArrayVarP(&opts.outputs, "output", "o", nil, "output file as path[:size], repeatable")

	return cmd
}

// runGenerate merges flags with the config file, runs the pipeline and saves.
func (c *CLI) runGenerate(ctx context.Context, flags generateOpts) error {
	logger := loggerFromContext(ctx)

	opts, err := flags.pipelineOptions()
	if err != nil {
		return err
	}

	file, used, err := config.Discover(flags.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if used != "" {
		logger.Debug("loaded config", "path", used)
		file.Apply(&opts)
		printInfo("Using config %s", used)
	}
	opts.Logger = logger

	runner := c.newRunner()
	prog := newProgress(logger)

	spinner := newSpinner(ctx, "Rendering icon...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Generation failed")
		return err
	}

	spinner.Update("Saving icons...")
	paths, err := runner.Save(ctx, result)
	if err != nil {
		spinner.StopWithError("Save failed")
		return err
	}
	spinner.Stop()
	prog.done("Generated icon", "seed", result.Seed, "outputs", len(paths))

	printSuccess("Icon generated with seed %d", result.Seed)
	for i, p := range paths {
		printFile(p, result.Outputs[i].Size)
	}
	printStats(len(result.Placements), result.Stats.Trials, result.Background)
	if result.Background != background.SourceFile {
		printWarning("Background image unavailable, used %s fallback", result.Background)
	}
	if result.Font != "" {
		printDetail("font: %s", result.Font)
	}
	printNewline()
	printNextStep("Reproduce", fmt.Sprintf("%s generate --seed %d", appName, result.Seed))

	return nil
}

// pipelineOptions converts flags into pipeline options.
func (o generateOpts) pipelineOptions() (pipeline.Options, error) {
	opts := pipeline.Options{
		Background: o.background,
		FontPath:   o.font,
		Seed:       o.seed,
	}
	for _, s := range o.outputs {
		out, err := parseOutput(s)
		if err != nil {
			return pipeline.Options{}, err
		}
		opts.Outputs = append(opts.Outputs, out)
	}
	return opts, nil
}

// parseOutput parses "path" or "path:size". A path alone gets the
// rendered size.
func parseOutput(s string) (pipeline.Output, error) {
	if s == "" {
		return pipeline.Output{}, errors.New(errors.ErrCodeInvalidPath, "output path cannot be empty")
	}
	out := pipeline.Output{Path: s, Size: pipeline.DefaultSize}

	i := strings.LastIndex(s, ":")
	if i < 0 {
		return out, nil
	}
	size, err := strconv.Atoi(s[i+1:])
	if err != nil {
		// a drive letter or a colon in the file name, not a size
		return out, nil
	}
	if err := errors.ValidateSize(size); err != nil {
		return pipeline.Output{}, err
	}
	out.Path, out.Size = s[:i], size
	return out, nil
}
