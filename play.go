// play.go
//
// Interactive terminal game.
//
// Answer selection (first match wins):
//   1. --answer flag
//   2. today's word when --daily is set
//   3. game.answer from config / GAME_ANSWER
//   4. a random answer
//
// Board rows always carry the [A]/(A)/A markers; with colour enabled each
// token is also styled by a lipgloss renderer bound to the output stream.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/gabble/internal/daily"
	"github.com/robalobadob/gabble/internal/game"
	"github.com/robalobadob/gabble/internal/words"
)

const banner = "**********"

type playOptions struct {
	answer string
	daily  bool
	strict bool
	color  string // auto, always, never
}

func (a *app) newPlayCmd() *cobra.Command {
	opts := &playOptions{}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := a.loadDictionary(cmd.Context())
			if err != nil {
				return err
			}
			answer, err := a.pickAnswer(opts, dict)
			if err != nil {
				return err
			}
			eval := a.evaluator()
			if opts.strict {
				eval = game.EvaluateStrict
			}
			sess, err := game.Setup(answer, dict, game.WithEvaluator(eval))
			if err != nil {
				return err
			}
			log.Debug().Str("gameId", sess.ID()).Bool("daily", opts.daily).Msg("game started")
			return runPlay(sess, a.stdin, a.stdout, a.rowRenderer(opts.color))
		},
	}
	cmd.Flags().StringVarP(&opts.answer, "answer", "a", "", "Fixed answer (must be a dictionary word)")
	cmd.Flags().BoolVar(&opts.daily, "daily", false, "Play today's word")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Use strict letter counting for feedback")
	cmd.Flags().StringVar(&opts.color, "color", "auto", "Colour the board: auto, always or never")
	return cmd
}

// pickAnswer applies the answer precedence documented above.
func (a *app) pickAnswer(opts *playOptions, dict *words.Dictionary) (string, error) {
	switch {
	case opts.answer != "":
		return opts.answer, nil
	case opts.daily:
		if w := daily.Answer(dict.Answers(), a.now(), a.cfg.Game.DailySalt); w != "" {
			return w, nil
		}
		return "", words.ErrNotReady
	case a.cfg.Game.Answer != "":
		return a.cfg.Game.Answer, nil
	default:
		return dict.RandomAnswer()
	}
}

// rowRenderer picks the board row format for mode (auto, always, never).
// auto colours only when stdout is a terminal; always forces ANSI colours.
func (a *app) rowRenderer(mode string) func(game.GuessRow) string {
	switch mode {
	case "never":
		return game.RenderRow
	case "always":
		r := lipgloss.NewRenderer(a.stdout)
		r.SetColorProfile(termenv.ANSI256)
		return newBoardStyles(r).row
	}
	if f, ok := a.stdout.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return newBoardStyles(lipgloss.NewRenderer(a.stdout)).row
	}
	return game.RenderRow
}

// runPlay drives sess from line-oriented input until a terminal outcome.
// It fails when input ends first or the dictionary errors.
func runPlay(sess *game.Session, in io.Reader, out io.Writer, render func(game.GuessRow) string) error {
	sc := bufio.NewScanner(in)
	if render == nil {
		render = game.RenderRow
	}

	fmt.Fprintln(out, banner)
	fmt.Fprintln(out, "Welcome to Gabble!")

	var outcome game.Outcome
	for !outcome.Terminal() {
		if board := sess.Board(); len(board) > 0 {
			fmt.Fprintf(out, "Your previous tries (%d):\n", len(sess.PreviousGuesses()))
			fmt.Fprintln(out, banner)
			for _, row := range board {
				fmt.Fprintln(out, render(row))
			}
			fmt.Fprintln(out, banner)
		}

		fmt.Fprint(out, "Enter your next guess: ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			if err := sc.Err(); err != nil {
				return fmt.Errorf("read guess: %w", err)
			}
			return fmt.Errorf("read guess: %w", io.ErrUnexpectedEOF)
		}
		response := sc.Text()

		var err error
		if outcome, err = sess.TakeTurn(response); err != nil {
			return err
		}
		if outcome == game.OutcomeInvalidAnswer {
			fmt.Fprintf(out, "Sorry, %s is not a valid word\n", response)
		}
	}

	if outcome == game.OutcomeRightAnswer {
		fmt.Fprintf(out, "Congratulation you won! %s was the correct answer\n", sess.Answer())
	} else {
		fmt.Fprintf(out, "Sorry, you lost. %s was the correct answer\n", sess.Answer())
	}
	return nil
}

// boardStyles colours board tokens by mark.
type boardStyles struct {
	exact, present, absent lipgloss.Style
}

func newBoardStyles(r *lipgloss.Renderer) boardStyles {
	return boardStyles{
		exact:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#538D4E")),
		present: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#B59F3B")),
		absent:  r.NewStyle().Foreground(lipgloss.Color("#AAAAAA")),
	}
}

// row renders like game.RenderRow with each token styled by its mark.
func (s boardStyles) row(row game.GuessRow) string {
	cells := make([]string, len(row.Marks))
	for i, m := range row.Marks {
		tok := game.Token(row.Guess[i], m)
		switch m {
		case game.MarkExact:
			cells[i] = s.exact.Render(tok)
		case game.MarkPresent:
			cells[i] = s.present.Render(tok)
		default:
			cells[i] = s.absent.Render(tok)
		}
	}
	return strings.Join(cells, " ")
}
