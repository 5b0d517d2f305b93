// Package schedule prints the day plan stored in the care database.
package schedule

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/carewell/eldercare/internal/db"
	"github.com/carewell/eldercare/internal/repositories"
	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "schedule",
	Title: "Schedule",
}

var Print = &cobra.Command{
	Use:     "schedule",
	GroupID: "schedule",
	Short:   "Print the day plan",
	Long:    "Prints the reminders of the day ordered by time, one line per care task",
	RunE: func(cmd *cobra.Command, _ []string) error {
		url, ok := os.LookupEnv("ELDERCARE_SQLITE_URL")
		if !ok {
			url = "./eldercare.sqlite"
		}

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		dbs, err := db.NewDatabase(cmd.Context(), url, logger)
		if err != nil {
			return err
		}
		defer func() {
			_ = dbs.Close()
		}()

		reminders := repositories.NewReminderRepository(dbs, logger)
		plan, err := reminders.List(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
		for _, reminder := range plan {
			voice := ""
			if reminder.VoiceEnabled {
				voice = "voice"
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				reminder.Time, reminder.ResidentName, reminder.Category, reminder.Title, reminder.Status, voice)
		}
		return w.Flush()
	},
}
