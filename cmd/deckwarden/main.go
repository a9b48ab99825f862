// Package main provides the deckwarden command line interface.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/edhtools/deckwarden/internal/version"
)

var (
	// Global flags
	cfgPath string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "deckwarden",
	Short: "Validator for tribal Commander decks",
	Long: `Deckwarden checks a Commander deck against a set of house rules.

It fetches the deck from Moxfield, scores the creature curve by mana value,
flags creatures outside the declared tribe, looks for known combos on
Commander Spellbook, and matches cards against the Reserved List and the
Game Changers list.`,
	Version: version.GetVersion(),
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file path (default: ~/.deckwarden/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
