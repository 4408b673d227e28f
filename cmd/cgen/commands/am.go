package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/cgen/am"
	"github.com/teranos/cgen/errors"
)

// AmCmd represents the am (configuration) command
var AmCmd = &cobra.Command{
	Use:   "am",
	Short: "Manage the house-style configuration",
	Long: `am - Manage the cgen house style ("I am")

Configuration sources (in order of precedence):
1. Environment variables (CGEN_* prefix, e.g. CGEN_STYLE_BRACE=knr)
2. Project config (cgen.toml or cgen.yaml, searched up from the working directory)
3. User config (~/.cgen/cgen.toml)
4. Default values

Examples:
  cgen am show                    # Show current configuration
  cgen am show --format json      # Show configuration in JSON format
  cgen am show style.brace        # Show a single setting
  cgen am where                   # Show where each setting comes from
  cgen am validate                # Validate current configuration
  cgen am init                    # Write a starter cgen.toml`,
}

var amShowCmd = &cobra.Command{
	Use:   "show [key]",
	Short: "Show current configuration",
	Long:  "Display the cgen configuration merged from all sources, or one setting in dot notation",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAmShow,
}

var amValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate configuration",
	Long: `Validate the merged configuration, or a single file when one is given.

Files are also checked for unknown keys, which are otherwise ignored.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAmValidate,
}

var amInitCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Write a starter configuration file",
	Long:  "Write the default configuration to ./cgen.toml (or the given file) unless it already exists",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAmInit,
}

var amWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where configuration is loaded from",
	RunE:  runAmWhere,
}

var configFormat string

func init() {
	amShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")

	AmCmd.AddCommand(amShowCmd)
	AmCmd.AddCommand(amValidateCmd)
	AmCmd.AddCommand(amInitCmd)
	AmCmd.AddCommand(amWhereCmd)
}

func runAmShow(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return showKey(cmd.OutOrStdout(), args[0], configFormat)
	}

	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	return writeConfig(cmd.OutOrStdout(), cfg, configFormat)
}

// showKey prints a single merged setting. Unset keys print an empty line
// (null in JSON).
func showKey(w io.Writer, key, format string) error {
	if !slices.Contains(am.Keys, key) {
		return errors.WithHintf(
			errors.Newf("unknown configuration key %q", key),
			"known keys: %s", strings.Join(am.Keys, ", "),
		)
	}

	if format == "json" {
		data, err := json.Marshal(am.Get(key))
		if err != nil {
			return errors.Wrapf(err, "failed to marshal %s to JSON", key)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}
	fmt.Fprintln(w, am.GetString(key))
	return nil
}

// writeConfig encodes cfg in the given format.
func writeConfig(w io.Writer, cfg *am.Config, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to JSON")
		}
		fmt.Fprintln(w, string(data))

	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to YAML")
		}
		fmt.Fprintf(w, "# cgen configuration\n%s", string(data))

	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to TOML")
		}
		fmt.Fprintf(w, "# cgen configuration\n%s", string(data))

	default:
		return errors.Newf("unsupported format: %s (supported: toml, json, yaml)", format)
	}
	return nil
}

func runAmValidate(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		if _, err := am.ValidateFile(args[0]); err != nil {
			return errors.Wrap(err, "configuration validation failed")
		}
		fmt.Fprintln(cmd.OutOrStdout(), pterm.Success.Sprintf("%s is valid", args[0]))
		return nil
	}

	for _, path := range am.ConfigPaths() {
		if err := am.CheckUnknownKeys(path); err != nil {
			return errors.Wrap(err, "configuration validation failed")
		}
	}

	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}

	fmt.Fprintln(cmd.OutOrStdout(), pterm.Success.Sprint("Configuration is valid"))
	return nil
}

func runAmInit(cmd *cobra.Command, args []string) error {
	path := am.ConfigFileTOML
	if len(args) == 1 {
		path = args[0]
	}
	if err := am.Init(path); err != nil {
		return err
	}

	abs, _ := filepath.Abs(path)
	fmt.Fprintln(cmd.OutOrStdout(), pterm.Success.Sprintf("Wrote %s", abs))
	return nil
}

func runAmWhere(cmd *cobra.Command, args []string) error {
	intro, err := am.GetConfigIntrospection()
	if err != nil {
		return errors.Wrap(err, "failed to get config introspection")
	}
	out, err := sourcesTable(intro)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// sourcesTable renders every setting with the source that set it.
func sourcesTable(intro *am.ConfigIntrospection) (string, error) {
	data := pterm.TableData{{"Key", "Value", "Source", "From"}}
	for _, s := range intro.Settings {
		data = append(data, []string{s.Key, fmt.Sprint(s.Value), string(s.Source), s.SourcePath})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}
