package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/souravmalhi93-eng/Vaani-backend/internal/config"
	"github.com/souravmalhi93-eng/Vaani-backend/internal/telegram"
)

var webhookCmd = &cobra.Command{
	Use:   "webhook",
	Short: "Manage the bot's Telegram webhook registration",
}

var webhookSetCmd = &cobra.Command{
	Use:   "set <public-url>",
	Short: "Register the webhook URL with Telegram",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := webhookClient()
		if err != nil {
			return err
		}
		if err := client.SetWebhook(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("setting webhook: %w", err)
		}
		fmt.Printf("Webhook set to %s\n", args[0])
		return nil
	},
}

var webhookDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove the bot's webhook registration",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := webhookClient()
		if err != nil {
			return err
		}
		if err := client.DeleteWebhook(cmd.Context()); err != nil {
			return fmt.Errorf("deleting webhook: %w", err)
		}
		fmt.Println("Webhook deleted")
		return nil
	},
}

var webhookInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the current webhook registration",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := webhookClient()
		if err != nil {
			return err
		}
		info, err := client.GetWebhookInfo(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetching webhook info: %w", err)
		}
		if info.URL == "" {
			fmt.Println("No webhook registered")
			return nil
		}
		fmt.Printf("URL:             %s\n", info.URL)
		fmt.Printf("Pending updates: %d\n", info.PendingUpdates)
		if info.LastErrorMsg != "" {
			fmt.Printf("Last error:      %s\n", info.LastErrorMsg)
		}
		return nil
	},
}

func webhookClient() (*telegram.Client, error) {
	_ = godotenv.Load()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if cfg.Telegram.Token == "" {
		return nil, fmt.Errorf("telegram bot token is required (set TELEGRAM_BOT_TOKEN)")
	}
	return telegram.NewClient(cfg.Telegram.BaseURL, cfg.Telegram.Token), nil
}

func init() {
	webhookCmd.AddCommand(webhookSetCmd)
	webhookCmd.AddCommand(webhookDeleteCmd)
	webhookCmd.AddCommand(webhookInfoCmd)
	rootCmd.AddCommand(webhookCmd)
}
