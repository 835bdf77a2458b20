package tools

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Manu343726/rvasm/pkg/hw/cpu/mc"
	"github.com/Manu343726/rvasm/pkg/utils"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var supportedModules = map[string]func() (string, error){
	"isa":           func() (string, error) { return mc.Descriptor.DocString() },
	"isa.layouts":   func() (string, error) { return mc.Descriptor.LayoutsDocumentation(0) },
	"isa.mnemonics": func() (string, error) { return mc.Descriptor.MnemonicsDocumentation(0) },
}

var docsCmd = &cobra.Command{
	Use:   "docs module",
	Short: "Show rvasm documentation",
	Long: `Dumps the documentation of the specified rvasm module.
By default the tool dumps the documentation to stdout, but it can be redirected to a file using the --output flag.
With --yaml the instruction set is dumped in machine readable form instead.

Supported modules:
` + strings.Join(utils.Map(utils.SortedKeys(supportedModules), func(module string) string { return "  " + module }), "\n"),
	Args:      cobra.MatchAll(cobra.OnlyValidArgs, cobra.MaximumNArgs(1), cobra.MinimumNArgs(1)),
	ValidArgs: utils.SortedKeys(supportedModules),
	Run: func(cmd *cobra.Command, args []string) {
		outputFile, _ := cmd.Flags().GetString("output")
		asYaml, _ := cmd.Flags().GetBool("yaml")

		var out io.Writer = os.Stdout
		if outputFile != "" {
			file, err := os.Create(outputFile)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error creating file:", err)
				os.Exit(2)
			}
			defer file.Close()
			out = file
		}

		if err := writeDocs(out, args[0], asYaml); err != nil {
			fmt.Fprintln(os.Stderr, "Error generating documentation:", err)
			os.Exit(1)
		}
	},
}

func writeDocs(out io.Writer, module string, asYaml bool) error {
	if asYaml {
		summary, err := mc.Descriptor.Summary()
		if err != nil {
			return err
		}

		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		defer encoder.Close()

		return encoder.Encode(summary)
	}

	generate, supported := supportedModules[module]
	if !supported {
		return fmt.Errorf("unknown module '%v'", module)
	}

	doc, err := generate()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, doc)
	return err
}

func init() {
	ToolsCmd.AddCommand(docsCmd)
	docsCmd.Flags().StringP("output", "o", "", "Output file. If not specified, the documentation is dumped to stdout.")
	docsCmd.Flags().Bool("yaml", false, "Dump the instruction set as YAML")
}
