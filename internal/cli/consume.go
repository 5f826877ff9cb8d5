package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newConsumeCommand(options *rootOptions) *cobra.Command {
	var (
		amqpURL string
		queue   string
	)

	cmd := &cobra.Command{
		Use:   "consume",
		Short: "Import record batches published to an AMQP queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := options.openRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			if amqpURL == "" {
				amqpURL = rt.config.Import.AMQPURL
			}
			if queue == "" {
				queue = rt.config.Import.Queue
			}
			if amqpURL == "" {
				return fmt.Errorf("--amqp-url is required (or IMPORT_AMQP_URL)")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return rt.importer().ConsumeQueue(ctx, amqpURL, queue)
		},
	}

	cmd.Flags().StringVar(&amqpURL, "amqp-url", "", "AMQP broker url (default from config)")
	cmd.Flags().StringVar(&queue, "queue", "", "Queue name (default from config)")
	return cmd
}
