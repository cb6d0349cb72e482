package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Apagar o histórico de interações (CSV e banco)",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("isso apaga todo o histórico; repita com --force para confirmar")
		}

		csvPath, dbPath, err := resolvePaths(cmd)
		if err != nil {
			return err
		}

		for _, path := range []string{csvPath, dbPath, dbPath + "-wal", dbPath + "-shm"} {
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("remove %s: %w", path, err)
			}
		}

		fmt.Println("Histórico apagado.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Confirma a remoção do histórico")
}
