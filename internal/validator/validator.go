// Package validator orchestrates the full deck validation pipeline: load,
// score, tribe check, combo lookup, and curated list matching.
package validator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edhtools/deckwarden/internal/banlist"
	"github.com/edhtools/deckwarden/internal/combo"
	"github.com/edhtools/deckwarden/internal/deck"
	"github.com/edhtools/deckwarden/internal/scoring"
	"github.com/edhtools/deckwarden/internal/tribe"
)

// DeckLoader fetches and normalizes a deck.
type DeckLoader interface {
	Load(ctx context.Context, deckRef, tribeName string) ([]deck.Card, error)
}

// ComboChecker performs the advisory combo lookup.
type ComboChecker interface {
	Check(ctx context.Context, cards []deck.Card) combo.Status
}

// Config holds the validation settings.
type Config struct {
	Limits           scoring.Limits
	ReservedPath     string
	GameChangersPath string
}

// DefaultConfig returns the standard validation settings.
func DefaultConfig() Config {
	return Config{
		Limits:           scoring.DefaultLimits,
		ReservedPath:     "reserved_list.txt",
		GameChangersPath: "game_changers.txt",
	}
}

// Result is the outcome of one validation run. Every run produces a Result,
// including runs where the deck could not be loaded.
type Result struct {
	RunID           string           `json:"run_id"`
	DeckName        string           `json:"deck_name"`
	Tribe           string           `json:"tribe"`
	CurveSummary    []scoring.Bucket `json:"curve_summary"`
	TotalPoints     int              `json:"total_points"`
	PointsValid     bool             `json:"points_valid"`
	TribeMismatches []tribe.Mismatch `json:"tribe_mismatches"`
	ComboStatus     combo.Status     `json:"combo_status"`
	ReservedHits    []banlist.Hit    `json:"reserved_hits"`
	GameChangerHits []banlist.Hit    `json:"game_changer_hits"`
	Timestamp       time.Time        `json:"timestamp"`
	Messages        []string         `json:"messages"`
}

// Validator runs the validation pipeline.
type Validator struct {
	cfg    Config
	decks  DeckLoader
	combos ComboChecker
	lists  *banlist.Cache
	logger *zap.Logger
}

// New creates a validator from its collaborators. The list cache is owned
// by the caller and may be shared across validators.
func New(cfg Config, logger *zap.Logger, decks DeckLoader, combos ComboChecker, lists *banlist.Cache) *Validator {
	return &Validator{
		cfg:    cfg,
		decks:  decks,
		combos: combos,
		lists:  lists,
		logger: logger,
	}
}

// Validate runs every pass against the referenced deck and returns the
// accumulated Result. Failures degrade: a deck that cannot be loaded yields
// a Result with empty tables and a failure message, and no error or panic
// ever escapes this boundary.
func (v *Validator) Validate(ctx context.Context, deckRef, tribeName string) (result *Result) {
	result = &Result{
		RunID:       uuid.NewString(),
		Tribe:       tribeName,
		ComboStatus: combo.StatusUnknown,
		Timestamp:   time.Now(),
	}

	defer func() {
		if r := recover(); r != nil {
			v.logger.Error("validation aborted",
				zap.String("run_id", result.RunID),
				zap.Any("cause", r))
			result.Messages = append(result.Messages, fmt.Sprintf("Validation failed: %v", r))
		}
	}()

	cards, err := v.decks.Load(ctx, deckRef, tribeName)
	if err != nil {
		v.logger.Error("deck load failed",
			zap.String("run_id", result.RunID),
			zap.String("deck_ref", deckRef),
			zap.Error(err))
		result.Messages = append(result.Messages, fmt.Sprintf("Validation failed: %v", err))
		return result
	}

	result.DeckName = cards[0].DeckID
	result.Messages = append(result.Messages,
		fmt.Sprintf("Deck loaded: %s (%d cards)", result.DeckName, len(cards)))

	summary, total, legal := scoring.Score(cards, v.cfg.Limits)
	result.CurveSummary = summary
	result.TotalPoints = total
	result.PointsValid = legal
	if legal {
		result.Messages = append(result.Messages,
			fmt.Sprintf("CMC points within range: %d", total))
	} else {
		result.Messages = append(result.Messages,
			fmt.Sprintf("CMC points out of range: %d", total))
	}

	result.TribeMismatches = tribe.Mismatches(cards, tribeName)
	if n := len(result.TribeMismatches); n > 0 {
		result.Messages = append(result.Messages,
			fmt.Sprintf("%d creatures outside tribe %q", n, tribeName))
	}

	result.ComboStatus = v.combos.Check(ctx, cards)
	switch result.ComboStatus {
	case combo.StatusFound:
		result.Messages = append(result.Messages, "Combo detected in deck")
	case combo.StatusNotFound:
		result.Messages = append(result.Messages, "No combos detected")
	default:
		result.Messages = append(result.Messages, "Combo check unavailable")
	}

	reserved, err := v.lists.Match(v.cfg.ReservedPath, cards)
	result.ReservedHits = reserved
	if err != nil {
		result.Messages = append(result.Messages,
			fmt.Sprintf("Reserved List check skipped: %v", err))
	} else if len(reserved) > 0 {
		result.Messages = append(result.Messages,
			fmt.Sprintf("%d cards on the Reserved List", len(reserved)))
	}

	gameChangers, err := v.lists.Match(v.cfg.GameChangersPath, cards)
	result.GameChangerHits = gameChangers
	if err != nil {
		result.Messages = append(result.Messages,
			fmt.Sprintf("Game Changers check skipped: %v", err))
	} else if len(gameChangers) > 0 {
		result.Messages = append(result.Messages,
			fmt.Sprintf("%d Game Changer cards", len(gameChangers)))
	}

	v.logger.Info("validation complete",
		zap.String("run_id", result.RunID),
		zap.String("deck", result.DeckName),
		zap.Int("points", result.TotalPoints),
		zap.Bool("points_valid", result.PointsValid),
		zap.String("combo", string(result.ComboStatus)),
		zap.Int("tribe_mismatches", len(result.TribeMismatches)))

	return result
}
