package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/continha/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Mostrar estatísticas das sessões registradas",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, dbPath, err := resolvePaths(cmd)
		if err != nil {
			return err
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		total, err := st.TotalRows(cmd.Context())
		if err != nil {
			return err
		}
		if total == 0 {
			fmt.Println("Nenhuma interação registrada ainda.")
			return nil
		}

		stats, err := st.StatsByOperation(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("%-16s %8s %8s %10s\n", "operação", "total", "acertos", "precisão")
		for _, s := range stats {
			fmt.Printf("%-16s %8d %8d %9.0f%%\n", s.Operation, s.Total, s.Correct, s.Accuracy*100)
		}
		fmt.Printf("\n%d interações no total.\n", total)
		return nil
	},
}
