package commands

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/cgen/cgen"
	"github.com/teranos/cgen/render"
	"github.com/teranos/cgen/style"
)

// StylesCmd lists the built-in presets
var StylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the built-in house styles",
	Long: `List every preset with its brace style, indentation and newline convention.

Presets whose brace style has no layout yet are listed as unsupported.

Examples:
  cgen styles            # Table of presets
  cgen styles --preview  # Also render a small snippet in each supported preset`,
	RunE: runStyles,
}

var stylesPreview bool

func init() {
	StylesCmd.Flags().BoolVar(&stylesPreview, "preview", false, "Render a snippet in each supported preset")
}

func runStyles(cmd *cobra.Command, args []string) error {
	table, err := stylesTable()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), table)

	if !stylesPreview {
		return nil
	}
	for _, p := range style.Presets() {
		cfg := style.FromPreset(p)
		if !cfg.Brace.Supported() {
			continue
		}
		out, err := render.String(previewSnippet(), cfg.WithNewline(style.LF))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n%s\n", pterm.Bold.Sprint(string(p)), out)
	}
	return nil
}

// stylesTable renders the preset table.
func stylesTable() (string, error) {
	data := pterm.TableData{{"Preset", "Brace", "Unit", "Width", "Newline", "Supported"}}
	for _, p := range style.Presets() {
		cfg := style.FromPreset(p)
		supported := "yes"
		if !cfg.Brace.Supported() {
			supported = "no"
		}
		data = append(data, []string{
			string(p),
			cfg.Brace.String(),
			cfg.Unit.String(),
			strconv.Itoa(cfg.Width),
			cfg.Newline.String(),
			supported,
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

func previewSnippet() render.Node {
	return cgen.NewFunction(cgen.NewSignature("INT", "SIGN", cgen.P("INT", "VALUE")),
		cgen.NewIf(render.Text("value < 0"), cgen.Return(render.Text("-1"))),
		cgen.Return(render.Text("value > 0")),
	)
}
