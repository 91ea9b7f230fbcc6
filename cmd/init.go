package cmd

import (
	"github.com/spf13/cobra"

	"github.com/souravmalhi93-eng/Vaani-backend/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize vaani configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to choose providers and the listen port, and writes a .vaani.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
