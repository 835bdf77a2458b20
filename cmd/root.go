package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Manu343726/rvasm/cmd/asm"
	"github.com/Manu343726/rvasm/cmd/tools"
	"github.com/Manu343726/rvasm/pkg/assembler"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "rvasm",
	Short: "An RV32I assembler",
	Long: `rvasm translates RV32I assembly statements into 32-bit machine words.

Sources contain one instruction per line, ';' starts a comment and operands
are separated by whitespace and/or commas:

  add  x1, x2, x3      ; rd, rs1, rs2
  addi x5, x0, 10      ; rd, rs1, imm
  sw   x2, x3, 8       ; rs1 (base), rs2 (value), offset
  beq  x1, x2, 8       ; rs1, rs2, byte offset
  lui  x1, 74565       ; rd, imm[31:12]
  jal  x0, -4          ; rd, byte offset

Immediates are decimal (optionally negative) or binary ('b1010).`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(asm.ExitConfigError)
	}
}

func init() {
	RootCmd.AddCommand(tools.ToolsCmd, asm.AsmCmd)
	cobra.OnInitialize(initConfig)

	defaults := assembler.DefaultConfig()
	flags := RootCmd.PersistentFlags()

	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.rvasm.yaml)")
	flags.Int("xlen", defaults.XLEN, "Register width, bounds register indices and decimal literals")
	flags.StringP("format", "f", string(defaults.Format), "Machine word format: hex, binary")
	flags.Bool("halt-on-error", defaults.HaltOnError, "Stop at the first line with errors")
	flags.Bool("strict", defaults.Strict, "Reject immediates that do not fit the instruction layout")
	flags.String("color", string(defaults.Color), "Color output: auto, always, never")
	flags.String("log-level", defaults.Log.Level, "Log level: debug, info, warn, error")
	flags.String("log-file", defaults.Log.File, "Also write JSON log records to this file")

	for key, flag := range map[string]string{
		"xlen":          "xlen",
		"format":        "format",
		"halt_on_error": "halt-on-error",
		"strict":        "strict",
		"color":         "color",
		"log.level":     "log-level",
		"log.file":      "log-file",
	} {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(flag)))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	assembler.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".rvasm" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".rvasm")
	}

	viper.SetEnvPrefix("rvasm")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintln(os.Stderr, "Error reading config file:", err)
		os.Exit(asm.ExitConfigError)
	}
}
