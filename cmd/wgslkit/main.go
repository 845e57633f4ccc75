package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"wgslkit/internal/config"
	"wgslkit/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "wgslkit",
	Short: "WGSL tokenizer, parser, and editor tooling",
	Long:  `wgslkit parses WebGPU Shading Language files and exposes the syntax tree, diagnostics, highlighting, folding, and bracket data editors need`,
}

// projectCfg is resolved once before any command runs, from the nearest
// wgslkit.toml or the built-in defaults.
var projectCfg = config.Default()

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(diagCmd)
	rootCmd.AddCommand(highlightCmd)
	rootCmd.AddCommand(foldCmd)
	rootCmd.AddCommand(bracketsCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|always|never)")
	rootCmd.PersistentFlags().Int("max-diagnostics", -1, "maximum number of diagnostics to report (0=unlimited)")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")

	rootCmd.PersistentPreRunE = loadProjectConfig

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadProjectConfig discovers the manifest and lets it fill in any
// persistent flag the user left unset.
func loadProjectConfig(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}
	cfg, _, err := config.Discover(cwd)
	if err != nil {
		return err
	}
	projectCfg = cfg
	return nil
}

func colorMode(cmd *cobra.Command) (string, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return "", err
	}
	if mode == "" {
		return projectCfg.Output.Color, nil
	}
	switch mode {
	case "auto", "always", "never":
		return mode, nil
	default:
		return "", fmt.Errorf("invalid --color value %q (expected auto|always|never)", mode)
	}
}

func useColor(cmd *cobra.Command, f *os.File) (bool, error) {
	mode, err := colorMode(cmd)
	if err != nil {
		return false, err
	}
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	default:
		return isTerminal(f), nil
	}
}

func maxDiagnostics(cmd *cobra.Command) (int, error) {
	n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return projectCfg.Parse.MaxDiagnostics, nil
	}
	return n, nil
}

func showTimings(cmd *cobra.Command) (bool, error) {
	on, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return false, fmt.Errorf("failed to get timings flag: %w", err)
	}
	return on, nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
