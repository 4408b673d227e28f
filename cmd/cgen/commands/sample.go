package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/cgen/am"
	"github.com/teranos/cgen/cgen"
	"github.com/teranos/cgen/errors"
	"github.com/teranos/cgen/logger"
	"github.com/teranos/cgen/render"
	"github.com/teranos/cgen/style"
)

// SampleCmd renders the built-in sample translation unit
var SampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Render the built-in sample translation unit",
	Long: `Render a sample header and source file in the configured house style.

The style comes from cgen.toml (see 'cgen am'), optionally replaced by --preset.
With --watch the sample is rendered again every time the config file changes.

Examples:
  cgen sample                           # Use cgen.toml or the default preset
  cgen sample --preset horstmann        # Override the preset
  cgen sample --config team.yaml --watch`,
	RunE: runSample,
}

var (
	samplePreset string
	sampleConfig string
	sampleWatch  bool
)

func init() {
	SampleCmd.Flags().StringVarP(&samplePreset, "preset", "p", "", "Preset to render with (overrides the configured preset)")
	SampleCmd.Flags().StringVarP(&sampleConfig, "config", "c", "", "Config file to use instead of the cgen.toml cascade")
	SampleCmd.Flags().BoolVarP(&sampleWatch, "watch", "w", false, "Re-render when the config file changes")
}

func runSample(cmd *cobra.Command, args []string) error {
	path, c, err := loadConfig(sampleConfig)
	if err != nil {
		return err
	}

	cfg, err := resolve(c, samplePreset)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := renderSample(out, cfg); err != nil {
		return err
	}

	if !sampleWatch {
		return nil
	}
	if path == "" {
		return errors.WithHint(
			errors.New("--watch needs a config file"),
			"pass --config or create one with 'cgen am init'",
		)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchSample(ctx, out, path, samplePreset, sampleConfig == "")
}

// loadConfig reads configPath, or the cascade when it is empty. The returned
// path is the file to watch: configPath, or the highest-precedence file of
// the cascade.
func loadConfig(configPath string) (string, *am.Config, error) {
	if configPath != "" {
		c, err := am.ValidateFile(configPath)
		if err != nil {
			return "", nil, err
		}
		return configPath, c, nil
	}

	c, err := am.Load()
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to load config")
	}

	var path string
	if paths := am.ConfigPaths(); len(paths) > 0 {
		path = paths[len(paths)-1]
	}
	return path, c, nil
}

// resolve applies the preset override and validates the result.
func resolve(c *am.Config, preset string) (style.Config, error) {
	overridden := *c
	if preset != "" {
		overridden.Style.Preset = preset
	}
	if err := overridden.Validate(); err != nil {
		return style.Config{}, err
	}
	return overridden.Resolve()
}

func renderSample(w io.Writer, cfg style.Config) error {
	logger.Debugw("Rendering sample",
		"brace", cfg.Brace.String(),
		"unit", cfg.Unit.String(),
		"width", cfg.Width,
		"newline", cfg.Newline.String())
	return render.Write(w, cgen.Sample(), cfg)
}

// watchSample re-renders on every valid change of path until ctx is done.
// With cascade set, path is one layer of the cascade and every reload reads
// the whole cascade again, so user file and CGEN_* overrides still apply.
func watchSample(ctx context.Context, w io.Writer, path, preset string, cascade bool) error {
	cw, err := am.NewConfigWatcher(path)
	if err != nil {
		return err
	}
	if cascade {
		cw.SetLoader(am.ReloadCascade)
	}
	am.SetGlobalWatcher(cw)
	defer am.SetGlobalWatcher(nil)

	cw.OnReload(func(c *am.Config) error {
		cfg, err := resolve(c, preset)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, pterm.Info.Sprintf("%s changed", path))
		return renderSample(w, cfg)
	})
	cw.Start()
	logger.Infow("Watching config file", "path", cw.Path())

	<-ctx.Done()
	return cw.Stop()
}
