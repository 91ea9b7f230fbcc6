package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "vaani",
	Short: "Stateless Telegram-to-LLM webhook relay",
	Long: `Vaani receives Telegram message updates over a webhook, forwards the
text to a hosted completion provider (with an optional fallback), and
relays the generated reply back to the originating chat.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".vaani.yml", "config file path")
}
