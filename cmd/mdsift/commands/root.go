// Package commands implements the CLI commands for mdsift.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/mdsift/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "mdsift",
	Short: "Convert HTML documents to compact Markdown",
	Long: `Mdsift distills HTML pages into token-efficient Markdown for LLM
consumption. It finds the main content area, drops navigation, ads, and
other boilerplate, and keeps the structure that matters: headings,
paragraphs, lists, emphasis, links, and quotes.

Examples:
  # Convert a page
  mdsift convert https://example.com/article

  # Convert a local file
  mdsift convert -f page.html

  # Emit the intermediate node tree alongside the markdown
  mdsift convert -f page.html --format json --nodes`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logger.Options{
			Debug: viper.GetBool("debug"),
			Quiet: viper.GetBool("quiet"),
		})
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.mdsift.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".mdsift")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("MDSIFT")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
