package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fathomworks/opsbrief/internal/model"
	"github.com/fathomworks/opsbrief/internal/session"
)

var sessionName string

// sessionCmd represents the session command group
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Save and list named intake snapshots",
	Long: `Session stores named snapshots of raw intake text so a run can be
repeated later. The list keeps the 20 most recent snapshots; saving a 21st
evicts the oldest.`,
}

var sessionSaveCmd = &cobra.Command{
	Use:   "save <intake-file>",
	Short: "Save an intake file as a named session",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionSave,
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved sessions, newest first",
	Args:  cobra.NoArgs,
	RunE:  runSessionList,
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionSaveCmd)
	sessionCmd.AddCommand(sessionListCmd)

	sessionSaveCmd.Flags().StringVar(&sessionName, "name", "", "session name (required)")
	_ = sessionSaveCmd.MarkFlagRequired("name")
}

func runSessionSave(cmd *cobra.Command, args []string) error {
	text, err := readIntake(args[0], false)
	if err != nil {
		return err
	}

	cfg := model.DefaultConfig()
	st := openStore(cfg)

	existing := session.LoadSessions(st)
	sessions, err := session.SaveSessionToStorage(session.New(sessionName, text), existing, st)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Saved session %q (%d of %d slots used)\n", sessionName, len(sessions), model.MaxSavedSessions)
	return nil
}

func runSessionList(cmd *cobra.Command, args []string) error {
	cfg := model.DefaultConfig()
	st := openStore(cfg)

	sessions := session.LoadSessions(st)
	if len(sessions) == 0 {
		fmt.Println("No saved sessions.")
		return nil
	}

	for _, s := range sessions {
		fmt.Printf("%s  %s  %q (%d chars)\n", s.CreatedAt.Format("2006-01-02 15:04"), s.ID, s.Name, len(s.IntakeText))
	}
	return nil
}
