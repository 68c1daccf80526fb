package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RAMYA-PARSANIA/se-to-do/internal/console"
)

var addCmd = &cobra.Command{
	Use:   "add <description...>",
	Short: "Add a task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show all tasks",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task as done",
	Args:  cobra.ExactArgs(1),
	RunE:  runDone,
}

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a task",
	Long: `Remove a task by id.

Remaining tasks are re-numbered 1..N in their current order, so removing
task 2 turns task 3 into task 2.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all tasks",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the task file and task counts",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	clearCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}

func runInteractive(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	return console.New(store, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	ok, err := store.Create(strings.Join(args, " "))
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("description cannot be empty")
	}

	task := store.Tasks()[store.Len()-1]
	fmt.Fprintf(cmd.OutOrStdout(), "✔ Task #%d created: %s\n", task.ID, task.Description)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), store.Render())
	return nil
}

func runDone(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	ok, err := store.MarkDone(id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("task #%d not found", id)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✔ Task #%d marked as done!\n", id)
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	ok, err := store.Remove(id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("task #%d not found", id)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✔ Task #%d removed successfully!\n", id)
	return nil
}

func runClear(cmd *cobra.Command, args []string) error {
	skipPrompt, _ := cmd.Flags().GetBool("yes")

	if !skipPrompt {
		fmt.Fprint(cmd.OutOrStdout(), "Are you sure you want to remove all tasks? (yes/no): ")
		answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if !console.Confirmed(answer) {
			fmt.Fprintln(cmd.OutOrStdout(), "Action cancelled.")
			return nil
		}
	}

	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	if _, err := store.RemoveAll(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "✔ All tasks have been removed!")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	total, done, pending := store.Stats()

	fmt.Fprintf(out, "File:   %s\n", store.Path())
	fmt.Fprintf(out, "Format: %s\n", store.Format())
	fmt.Fprintf(out, "Tasks:  %d (%d done, %d pending)\n", total, done, pending)
	if loadErr := store.LoadErr(); loadErr != nil {
		fmt.Fprintf(out, "Warning: %v\n", loadErr)
		fmt.Fprintln(out, "         The file will be overwritten on the next change.")
	}
	return nil
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q: must be a number", raw)
	}
	return id, nil
}
