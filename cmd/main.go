package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/acgowda/games/domain/card"
	"github.com/acgowda/games/domain/deck"
	"github.com/acgowda/games/domain/poker"
	"github.com/acgowda/games/domain/table"
)

const usage = `usage:
  %[1]s deal                     deal a five-card draw round
  %[1]s eval <card>...           evaluate one hand, e.g. AS KS QS JS 10S
  %[1]s compare <hand> <hand>    compare two quoted hands
`

func main() {
	_ = godotenv.Load()
	cfg, err := loadConfig(os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Create a new slog handler with the PTerm logger at the configured level
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(cfg.LogLevel))
	logger := slog.New(handler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := "deal"
	var args []string
	if len(os.Args) > 1 {
		cmd, args = os.Args[1], os.Args[2:]
	}
	switch cmd {
	case "deal":
		err = runDeal(ctx, cfg, logger)
	case "eval":
		err = runEval(args, logger)
	case "compare":
		err = runCompare(args, logger)
	default:
		fmt.Fprintf(os.Stderr, usage, os.Args[0])
		os.Exit(2)
	}
	if err != nil {
		logger.Error(cmd+" failed", "error", err)
		os.Exit(1)
	}
}

func playerNames(n int) []string {
	names := []string{"You", "Computer"}
	for i := len(names); i < n; i++ {
		names = append(names, fmt.Sprintf("Player %d", i+1))
	}
	return names[:n]
}

func runDeal(ctx context.Context, cfg config, logger *slog.Logger) error {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("5 Card ", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("Draw", pterm.FgDarkGray.ToStyle()),
	).Render()

	opts := []deck.Option{deck.WithLogger(logger)}
	if cfg.Seed != 0 {
		opts = append(opts, deck.WithSeed(cfg.Seed))
	}
	d := deck.New(opts...)
	evaluator := poker.NewEvaluator(logger)
	tb := table.New(d, evaluator, logger, playerNames(cfg.Players)...)

	spinner, _ := pterm.DefaultSpinner.Start("Shuffling the cards ...")
	d.Shuffle()
	spinner.Success()

	if err := tb.Deal(poker.HandSize); err != nil {
		return err
	}
	printSeats(tb.Seats())

	if cfg.Exchange {
		for i, s := range tb.Seats() {
			h, err := evaluator.Evaluate(s.Hand)
			if err != nil {
				return err
			}
			positions := table.DrawPositions(s.Hand, h)
			if _, err := tb.Exchange(i, positions...); err != nil {
				return err
			}
			pterm.Info.Printfln("%s exchanged %d card(s)", s.Name, len(positions))
		}
		printSeats(tb.Seats())
	}

	results, winners, err := tb.Showdown(ctx)
	if err != nil {
		return err
	}
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{{getWinnerPanel(results, winners)}}).Render()

	if err := tb.Collect(deck.Bottom); err != nil {
		return err
	}
	active, drawn, discarded := d.Counts()
	logger.Info("cards collected", "active", active, "drawn", drawn, "discarded", discarded)
	return nil
}

func runEval(args []string, logger *slog.Logger) error {
	cards, err := card.ParseList(strings.Join(args, " "))
	if err != nil {
		return err
	}
	h, err := poker.NewEvaluator(logger).Evaluate(cards)
	if err != nil {
		return err
	}
	reference := referenceDescription(cards, logger)
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{{getEvalPanel("|HAND|", h, reference)}}).Render()
	return nil
}

// referenceDescription names cards under standard poker rules. Hands the
// reference evaluator cannot size are left blank without a warning.
func referenceDescription(cards []card.Card, logger *slog.Logger) string {
	reference, err := poker.ReferenceDescribe(cards)
	if err != nil {
		if !errors.Is(err, poker.ErrUnsupportedSize) {
			logger.Warn("reference evaluation failed", "error", err)
		}
		return ""
	}
	return reference
}

func runCompare(args []string, logger *slog.Logger) error {
	if len(args) != 2 {
		return fmt.Errorf("compare needs two hands, got %d", len(args))
	}
	evaluator := poker.NewEvaluator(logger)
	hands := make([]poker.Hand, 2)
	cards := make([][]card.Card, 2)
	for i, arg := range args {
		cs, err := card.ParseList(arg)
		if err != nil {
			return err
		}
		h, err := evaluator.Evaluate(cs)
		if err != nil {
			return err
		}
		cards[i], hands[i] = cs, h
	}

	outcome := hands[0].Compare(hands[1])
	panels := []pterm.Panel{getEvalPanel("|FIRST|", hands[0], ""), getEvalPanel("|SECOND|", hands[1], "")}
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{panels}).Render()
	switch outcome {
	case poker.Greater:
		pterm.Success.Println("The first hand wins")
	case poker.Less:
		pterm.Success.Println("The second hand wins")
	default:
		pterm.Info.Println("The hands tie")
	}
	if ref, err := poker.ReferenceCompare(cards[0], cards[1]); err == nil && ref != outcome {
		pterm.Warning.Printfln("standard rules disagree: first hand is %s", ref)
	}
	return nil
}
