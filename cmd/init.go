package cmd

import (
	"github.com/spf13/cobra"

	"github.com/usmank-dev/neonfolio/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize neonfolio configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the portfolio and writes a .neonfolio.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
