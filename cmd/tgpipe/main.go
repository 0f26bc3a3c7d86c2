package main

import (
	"tgpipe/internal/app"
	"tgpipe/internal/infra/config"
	"tgpipe/internal/infra/logger"
	"tgpipe/internal/infra/telegram"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Log.WithError(err).Fatal("tgpipe failed")
	}
}

func newRootCmd() *cobra.Command {
	var flags config.Flags

	cmd := &cobra.Command{
		Use:           "tgpipe",
		Short:         "Use telegram bot from cli.",
		Long:          "Send stdin lines to a Telegram chat and print incoming messages to stdout as\nusername,first_name,last_name,sender_id,chat_id,date,text",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(flags)
			if err != nil {
				return err
			}
			logger.Init(cfg)
			log := logrus.NewEntry(logger.Get())

			bot, err := telegram.NewBot(cfg.TelegramToken, cfg.APIURL, cfg.PollTimeout)
			if err != nil {
				return err
			}

			sender := app.NewSender(telegram.NewTelebotAdapter(bot), cmd.InOrStdin(), log)
			receiver := app.NewReceiver(telegram.NewUpdateStream(bot, cfg.PollTimeout), cmd.OutOrStdout(), log)

			return app.NewBridgeFromConfig(cfg, sender, receiver, log).Run(cmd.Context(), cfg.Mode())
		},
	}

	cmd.Flags().StringVarP(&flags.ID, "id", "i", "", "ID of receiving user/group/channel (default $"+config.EnvReceiverID+")")
	cmd.Flags().StringVarP(&flags.Token, "token", "t", "", "Telegram API KEY (default $"+config.EnvBotToken+")")
	cmd.Flags().BoolVarP(&flags.SendOnly, "send-only", "s", false, "Send only")
	cmd.Flags().BoolVarP(&flags.ReceiveOnly, "receive-only", "r", false, "Receive only")

	return cmd
}
