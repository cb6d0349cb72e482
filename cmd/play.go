package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/continha/internal/csvlog"
	"github.com/abhisek/continha/internal/difficulty"
	"github.com/abhisek/continha/internal/problemgen"
	"github.com/abhisek/continha/internal/session"
	"github.com/abhisek/continha/internal/store"
	"github.com/abhisek/continha/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Praticar continhas no terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		operacao, _ := cmd.Flags().GetString("operacao")
		faixa, _ := cmd.Flags().GetString("faixa")

		csvPath, dbPath, err := resolvePaths(cmd)
		if err != nil {
			return err
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		// Quiet logger: warnings only, and never onto the TUI screen.
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelError,
		}))

		engine := session.NewEngine(
			problemgen.New(problemgen.DefaultRanges()),
			difficulty.NewPolicy(difficulty.Heuristic{}, logger),
			session.MultiRecorder{csvlog.New(csvPath), st},
			logger,
		)

		return tui.Run(tui.Options{
			Engine:    engine,
			Session:   &session.Session{ID: uuid.NewString()},
			Operation: operacao,
			Bracket:   faixa,
		})
	},
}

func init() {
	playCmd.Flags().String("operacao", "soma", "Operação: soma, subtracao, multiplicacao ou divisao")
	playCmd.Flags().String("faixa", "6-8", "Faixa etária (3-5, 6-8, 9-12, 13-17, 18-22, 23-25)")
}
