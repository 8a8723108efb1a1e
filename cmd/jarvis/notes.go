package main

import (
	"fmt"
	"time"

	"github.com/Dat0801/jarvis-cli/internal/api"
	"github.com/Dat0801/jarvis-cli/internal/cli"
	"github.com/spf13/cobra"
)

func notesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Manage notes and reminders",
	}

	cmd.AddCommand(listNotesCmd())
	cmd.AddCommand(showNoteCmd())
	cmd.AddCommand(addNoteCmd())
	cmd.AddCommand(updateNoteCmd())
	cmd.AddCommand(deleteNoteCmd())
	cmd.AddCommand(doneNoteCmd())
	cmd.AddCommand(remindersCmd())

	return cmd
}

func listNotesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List notes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			client, err := requireAuth(ctx, store)
			if err != nil {
				return err
			}

			notes, err := client.ListNotes(ctx)
			if err != nil {
				writeError(err)
				return fmt.Errorf("failed to list notes")
			}

			if len(notes) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No notes yet."))
				return nil
			}

			fmt.Println(cli.FormatTitle(cli.NoteIcon + " Notes"))
			for _, n := range notes {
				marker := "[ ]"
				if n.Done {
					marker = "[x]"
				}
				line := fmt.Sprintf("%s %d. %s", marker, n.ID, n.Title)
				if reminder := n.ReminderDate.Or(time.Time{}); !reminder.IsZero() {
					line += cli.SubtleStyle.Render(fmt.Sprintf("  (remind %s)", reminder.Format("2006-01-02")))
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func showNoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			client, err := requireAuth(ctx, store)
			if err != nil {
				return err
			}

			note, err := client.GetNote(ctx, id)
			if err != nil {
				writeError(err)
				return fmt.Errorf("failed to fetch note")
			}

			fmt.Println(cli.FormatTitle(cli.NoteIcon + " " + note.Title))
			if note.Body != "" {
				fmt.Println(note.Body)
			}
			if reminder := note.ReminderDate.Or(time.Time{}); !reminder.IsZero() {
				fmt.Println(cli.SubtleStyle.Render("Remind on " + reminder.Format("2006-01-02")))
			}
			if note.Done {
				fmt.Println(cli.SuccessStyle.Render("Done"))
			}
			return nil
		},
	}
}

func remindersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reminders",
		Short: "Show how many reminders are pending",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			client, err := requireAuth(ctx, store)
			if err != nil {
				return err
			}

			count, err := client.ReminderCount(ctx)
			if err != nil {
				writeError(err)
				return fmt.Errorf("failed to fetch reminder count")
			}

			if count == 0 {
				fmt.Println("No pending reminders.")
				return nil
			}
			fmt.Println(cli.FormatWarning(fmt.Sprintf("%d reminder(s) pending", count)))
			return nil
		},
	}
}

func addNoteCmd() *cobra.Command {
	var (
		body     string
		reminder string
	)

	cmd := &cobra.Command{
		Use:     "add TITLE",
		Aliases: []string{"create"},
		Short:   "Create a note",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			params := api.NoteParams{
				Title: args[0],
				Body:  body,
			}
			if reminder != "" {
				date, err := parseDate(reminder)
				if err != nil {
					return err
				}
				params.ReminderDate = date.Format("2006-01-02")
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			client, err := requireAuth(ctx, store)
			if err != nil {
				return err
			}

			note, err := client.CreateNote(ctx, params)
			if err != nil {
				writeError(err)
				return fmt.Errorf("failed to create note")
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created note '%s' (ID %d)", note.Title, note.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&body, "body", "", "note body")
	cmd.Flags().StringVar(&reminder, "remind", "", "reminder date (YYYY-MM-DD)")

	return cmd
}

func updateNoteCmd() *cobra.Command {
	var (
		title    string
		body     string
		reminder string
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			params := api.NoteParams{Title: title, Body: body}
			if reminder != "" {
				date, err := parseDate(reminder)
				if err != nil {
					return err
				}
				params.ReminderDate = date.Format("2006-01-02")
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			client, err := requireAuth(ctx, store)
			if err != nil {
				return err
			}

			if _, err := client.UpdateNote(ctx, id, params); err != nil {
				writeError(err)
				return fmt.Errorf("failed to update note")
			}

			fmt.Println(cli.FormatSuccess("Note updated"))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&body, "body", "", "new body")
	cmd.Flags().StringVar(&reminder, "remind", "", "new reminder date (YYYY-MM-DD)")

	return cmd
}

func doneNoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark a note as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			client, err := requireAuth(ctx, store)
			if err != nil {
				return err
			}

			done := true
			if _, err := client.UpdateNote(ctx, id, api.NoteParams{Done: &done}); err != nil {
				writeError(err)
				return fmt.Errorf("failed to mark note done")
			}

			fmt.Println(cli.FormatSuccess("Note marked done"))
			return nil
		},
	}
}

func deleteNoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			client, err := requireAuth(ctx, store)
			if err != nil {
				return err
			}

			if err := client.DeleteNote(ctx, id); err != nil {
				writeError(err)
				return fmt.Errorf("failed to delete note")
			}

			fmt.Println(cli.FormatSuccess("Note deleted"))
			return nil
		},
	}
}
