package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "continha",
	Short: "Tutor adaptativo de continhas",
	Long:  "Continha: tutor de aritmética que adapta a dificuldade ao aluno e explica cada resposta com exemplos do dia a dia.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("csv", "", "Caminho do log CSV (padrão: CSV_PATH ou ./data/interacoes.csv)")
	rootCmd.PersistentFlags().String("db", "", "Caminho do banco SQLite (padrão: DB_PATH ou ./data/continha.db)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolvePaths returns the CSV and sqlite paths honoring flags first,
// then environment, then defaults.
func resolvePaths(cmd *cobra.Command) (csvPath, dbPath string, err error) {
	cfg, err := loadConfig()
	if err != nil {
		return "", "", err
	}
	csvPath = cfg.CSVPath
	dbPath = cfg.DBPath
	if p, _ := cmd.Flags().GetString("csv"); p != "" {
		csvPath = p
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		dbPath = p
	}
	return csvPath, dbPath, nil
}
