package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "neonfolio",
	Short: "Personal portfolio site with an admin panel and AI chat proxy",
	Long: `Neonfolio serves a single-page developer portfolio backed by an
in-memory content store: a project gallery, skill matrix, contact
inbox, and a chat widget that proxies a generative-language API.
All content is editable through a demo admin panel and resets on
restart.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".neonfolio.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
