package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/edhtools/deckwarden/internal/banlist"
	"github.com/edhtools/deckwarden/internal/charts"
	"github.com/edhtools/deckwarden/internal/combo"
	"github.com/edhtools/deckwarden/internal/config"
	"github.com/edhtools/deckwarden/internal/deck"
	"github.com/edhtools/deckwarden/internal/logging"
	"github.com/edhtools/deckwarden/internal/scoring"
	"github.com/edhtools/deckwarden/internal/validator"
)

var (
	tribeName        string
	reservedPath     string
	gameChangersPath string
	jsonOutput       bool
	chartPath        string
	openChart        bool
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [deck-url]",
	Short: "Validate a Commander deck against the house rules",
	Long: `Validate fetches a Moxfield deck and runs every check against it:
CMC point scoring, tribe membership, combo lookup, and curated list matching.

Examples:
  deckwarden validate --tribe Elf https://moxfield.com/decks/abc123
  deckwarden validate --tribe Goblin --chart curve.html https://moxfield.com/decks/xyz789
  deckwarden validate --tribe Zombie --json https://moxfield.com/decks/abc123`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&tribeName, "tribe", "t", "", "Tribe the deck is built around (required)")
	validateCmd.Flags().StringVar(&reservedPath, "reserved", "", "Reserved List file (default: from config)")
	validateCmd.Flags().StringVar(&gameChangersPath, "game-changers", "", "Game Changers file (default: from config)")
	validateCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the result as JSON")
	validateCmd.Flags().StringVar(&chartPath, "chart", "", "Write an HTML curve chart to this path")
	validateCmd.Flags().BoolVar(&openChart, "open", false, "Open the curve chart in a browser")
	_ = validateCmd.MarkFlagRequired("tribe")
}

func runValidate(cmd *cobra.Command, args []string) error {
	deckRef := args[0]

	// Load configuration
	var cfg *config.Config
	var err error
	if cfgPath != "" {
		cfg, err = config.LoadFile(cfgPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Flag overrides
	if reservedPath != "" {
		cfg.Lists.Reserved = reservedPath
	}
	if gameChangersPath != "" {
		cfg.Lists.GameChangers = gameChangersPath
	}

	// Terminal runs log to the console; only surface problems unless -v is set
	cfg.Log.Format = "console"
	if verbose {
		cfg.Log.Level = "debug"
	} else {
		cfg.Log.Level = "error"
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	moxfieldTimeout, err := cfg.GetMoxfieldTimeout()
	if err != nil {
		return err
	}
	spellbookTimeout, err := cfg.GetSpellbookTimeout()
	if err != nil {
		return err
	}

	// Wire the validation pipeline
	loader := deck.NewLoader(deck.NewClient(cfg.Moxfield.BaseURL, moxfieldTimeout), logger)
	combos := combo.NewClient(cfg.Spellbook.URL, spellbookTimeout, cfg.ResolveCSRFToken(), logger)
	lists := banlist.NewCache(logger)

	v := validator.New(validator.Config{
		Limits: scoring.Limits{
			Min: cfg.Scoring.MinPoints,
			Max: cfg.Scoring.MaxPoints,
		},
		ReservedPath:     cfg.Lists.Reserved,
		GameChangersPath: cfg.Lists.GameChangers,
	}, logger, loader, combos, lists)

	result := v.Validate(context.Background(), deckRef, tribeName)

	if jsonOutput {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		fmt.Println(string(data))
	} else {
		printReport(result, cfg)
	}

	if chartPath != "" {
		chartCfg := charts.DefaultChartConfig()
		chartCfg.Subtitle = result.DeckName
		if err := charts.RenderCurveChart(result.CurveSummary, chartCfg, chartPath); err != nil {
			return fmt.Errorf("render chart: %w", err)
		}
		if !jsonOutput {
			fmt.Printf("\nCurve chart written to %s\n", chartPath)
		}
		if openChart {
			if err := charts.OpenInBrowser(chartPath); err != nil {
				fmt.Fprintf(os.Stderr, "Could not open browser: %v\n", err)
			}
		}
	}

	if !result.PointsValid {
		return fmt.Errorf("validation failed")
	}

	return nil
}

// printReport renders the result as a colorized terminal report.
func printReport(result *validator.Result, cfg *config.Config) {
	fmt.Println("Validation Results:")
	fmt.Println("-------------------")
	fmt.Println(colorize.CyanString("Deck:  ") + colorize.HiWhiteString(result.DeckName))
	fmt.Println(colorize.CyanString("Tribe: ") + colorize.HiWhiteString(result.Tribe))
	fmt.Println(colorize.CyanString("Run:   ") + colorize.HiWhiteString(result.RunID))

	if len(result.CurveSummary) > 0 {
		fmt.Println()
		fmt.Println(colorize.CyanString("CMC Curve:"))
		fmt.Printf("  %-4s %6s %7s %7s\n", "MV", "Cards", "Points", "Unique")
		for _, b := range result.CurveSummary {
			fmt.Printf("  %-4s %6d %7d %7d\n", b.ManaValue, b.Quantity, b.Points, b.UniqueCards)
		}
	}

	fmt.Println()
	if result.PointsValid {
		fmt.Printf("✅ %s\n", colorize.GreenString("Total points %d within range %d-%d",
			result.TotalPoints, cfg.Scoring.MinPoints, cfg.Scoring.MaxPoints))
	} else {
		fmt.Printf("❌ %s\n", colorize.RedString("Total points %d outside range %d-%d",
			result.TotalPoints, cfg.Scoring.MinPoints, cfg.Scoring.MaxPoints))
	}

	if len(result.TribeMismatches) > 0 {
		fmt.Println()
		fmt.Println(colorize.YellowString("Creatures outside tribe %s:", result.Tribe))
		for i, m := range result.TribeMismatches {
			fmt.Printf("%d. %s (%s)\n", i+1, m.Name, m.TypeLine)
		}
	}

	fmt.Println()
	switch result.ComboStatus {
	case combo.StatusFound:
		fmt.Println(colorize.YellowString("Combo detected in deck"))
	case combo.StatusNotFound:
		fmt.Println("No combos detected")
	default:
		fmt.Println(colorize.YellowString("Combo check unavailable"))
	}

	if len(result.ReservedHits) > 0 {
		fmt.Println()
		fmt.Println(colorize.YellowString("Reserved List cards:"))
		for i, h := range result.ReservedHits {
			fmt.Printf("%d. %s x%d\n", i+1, h.Name, h.Quantity)
		}
	}

	if len(result.GameChangerHits) > 0 {
		fmt.Println()
		fmt.Println(colorize.YellowString("Game Changer cards:"))
		for i, h := range result.GameChangerHits {
			fmt.Printf("%d. %s x%d\n", i+1, h.Name, h.Quantity)
		}
	}

	fmt.Println()
	fmt.Println(colorize.CyanString("Messages:"))
	for i, msg := range result.Messages {
		fmt.Printf("%d. %s\n", i+1, msg)
	}
}
