package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/yannix2/medmind/internal/importer"
)

func newImportCommand(options *rootOptions) *cobra.Command {
	var (
		files    []string
		watchDir string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import JSON record batches into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			files = append(files, args...)
			if len(files) == 0 && watchDir == "" {
				return fmt.Errorf("--file or --watch is required")
			}
			rt, err := options.openRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			recordsImporter := rt.importer()
			for _, path := range files {
				result, err := recordsImporter.ImportFile(path)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %s: user %d, %d eating days, %d activity days\n",
					path, result.UserID, result.EatingDays, result.ActivityDays)
			}
			if watchDir == "" {
				return nil
			}

			watcher, err := importer.NewWatcher(recordsImporter, watchDir)
			if err != nil {
				return err
			}
			if err := watcher.ImportExisting(); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			fmt.Fprintf(cmd.OutOrStdout(), "Watching %s for records files\n", watchDir)
			return watcher.Run(ctx)
		},
	}

	cmd.Flags().StringArrayVar(&files, "file", nil, "Records file to import (repeatable)")
	cmd.Flags().StringVar(&watchDir, "watch", "", "Directory to watch for records files")
	return cmd
}
