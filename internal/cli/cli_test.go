package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/RAMYA-PARSANIA/se-to-do/internal/tasks"
	"github.com/RAMYA-PARSANIA/se-to-do/internal/testutil"
)

// resetFlags restores every flag to its default so state from one test
// does not leak into the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func executeCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestAddListDoneRemove(t *testing.T) {
	// Cannot use t.Parallel() - modifies HOME and working directory
	env := testutil.SetupTestEnv(t)

	out, _, err := executeCommand(t, "", "add", "Buy", "milk")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !strings.Contains(out, "✔ Task #1 created: Buy milk") {
		t.Errorf("Expected create message, got %q", out)
	}
	if _, _, err := executeCommand(t, "", "add", "Walk dog"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, _, err := executeCommand(t, "", "add", "Call mom"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if _, _, err := executeCommand(t, "", "done", "1"); err != nil {
		t.Fatalf("done failed: %v", err)
	}
	if _, _, err := executeCommand(t, "", "remove", "2"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	out, _, err = executeCommand(t, "", "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "1. [✔] Buy milk") {
		t.Errorf("Expected done task 1, got:\n%s", out)
	}
	if !strings.Contains(out, "2. [○] Call mom") {
		t.Errorf("Expected renumbered task 2, got:\n%s", out)
	}
	if strings.Contains(out, "Walk dog") {
		t.Errorf("Expected removed task to be gone, got:\n%s", out)
	}

	if !env.FileExists("tasks.json") {
		t.Error("Expected tasks.json in the working directory")
	}
}

func TestAddBlankDescription(t *testing.T) {
	// Cannot use t.Parallel() - modifies HOME and working directory
	env := testutil.SetupTestEnv(t)

	if _, _, err := executeCommand(t, "", "add", "   "); err == nil {
		t.Error("Expected error for blank description")
	}
	if env.FileExists("tasks.json") {
		t.Error("Expected no file to be written")
	}
}

func TestDoneErrors(t *testing.T) {
	// Cannot use t.Parallel() - modifies HOME and working directory
	testutil.SetupTestEnv(t)

	_, _, err := executeCommand(t, "", "done", "abc")
	if err == nil || !strings.Contains(err.Error(), "must be a number") {
		t.Errorf("Expected invalid id error, got %v", err)
	}

	_, _, err = executeCommand(t, "", "done", "999")
	if err == nil || !strings.Contains(err.Error(), "task #999 not found") {
		t.Errorf("Expected not found error, got %v", err)
	}

	_, _, err = executeCommand(t, "", "remove", "3")
	if err == nil || !strings.Contains(err.Error(), "task #3 not found") {
		t.Errorf("Expected not found error, got %v", err)
	}
}

func TestListEmpty(t *testing.T) {
	// Cannot use t.Parallel() - modifies HOME and working directory
	testutil.SetupTestEnv(t)

	out, _, err := executeCommand(t, "", "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if strings.TrimSpace(out) != tasks.EmptyMessage {
		t.Errorf("Expected empty message, got %q", out)
	}
}

func TestClearConfirmation(t *testing.T) {
	// Cannot use t.Parallel() - modifies HOME and working directory
	env := testutil.SetupTestEnv(t)

	if _, _, err := executeCommand(t, "", "add", "Keep?"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	out, _, err := executeCommand(t, "no\n", "clear")
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if !strings.Contains(out, "Action cancelled.") {
		t.Errorf("Expected cancellation, got %q", out)
	}
	if tasks.New(env.TasksFile()).Len() != 1 {
		t.Error("Expected task to survive cancelled clear")
	}

	out, _, err = executeCommand(t, "Yes\n", "clear")
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if !strings.Contains(out, "✔ All tasks have been removed!") {
		t.Errorf("Expected removal message, got %q", out)
	}
	if tasks.New(env.TasksFile()).Len() != 0 {
		t.Error("Expected empty list after clear")
	}
}

func TestClearYesFlag(t *testing.T) {
	// Cannot use t.Parallel() - modifies HOME and working directory
	env := testutil.SetupTestEnv(t)

	if _, _, err := executeCommand(t, "", "add", "Gone soon"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, _, err := executeCommand(t, "", "clear", "--yes"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if tasks.New(env.TasksFile()).Len() != 0 {
		t.Error("Expected empty list after clear --yes")
	}
}

func TestFileAndFormatFlags(t *testing.T) {
	// Cannot use t.Parallel() - modifies HOME and working directory
	env := testutil.SetupTestEnv(t)

	if _, _, err := executeCommand(t, "", "--file", "work.yaml", "add", "Yaml task"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !strings.Contains(env.ReadFile("work.yaml"), "description: Yaml task") {
		t.Error("Expected YAML task file")
	}

	if _, _, err := executeCommand(t, "", "-f", "work.data", "--format", "toml", "add", "Toml task"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !strings.Contains(env.ReadFile("work.data"), "[[tasks]]") {
		t.Error("Expected TOML task file")
	}

	if _, _, err := executeCommand(t, "", "--format", "xml", "list"); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestConfigFileSelectsTaskFile(t *testing.T) {
	// Cannot use t.Parallel() - modifies HOME and working directory
	env := testutil.SetupTestEnv(t)
	env.CreateFile(".taskman.yaml", "storage:\n  file: data/todo.json\n")

	if _, _, err := executeCommand(t, "", "add", "Configured"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !env.FileExists(filepath.Join("data", "todo.json")) {
		t.Error("Expected task file from project config")
	}
}

func TestStatus(t *testing.T) {
	// Cannot use t.Parallel() - modifies HOME and working directory
	env := testutil.SetupTestEnv(t)

	for _, d := range []string{"A", "B"} {
		if _, _, err := executeCommand(t, "", "add", d); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}
	if _, _, err := executeCommand(t, "", "done", "2"); err != nil {
		t.Fatalf("done failed: %v", err)
	}

	out, _, err := executeCommand(t, "", "status")
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	if !strings.Contains(out, "Tasks:  2 (1 done, 1 pending)") {
		t.Errorf("Expected counts, got:\n%s", out)
	}
	if !strings.Contains(out, "Format: json") {
		t.Errorf("Expected json format, got:\n%s", out)
	}

	env.CreateFile("tasks.json", "{broken")
	out, _, err = executeCommand(t, "", "status")
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	if !strings.Contains(out, "Warning:") {
		t.Errorf("Expected load warning, got:\n%s", out)
	}
}

func TestVerboseLogsToStderr(t *testing.T) {
	// Cannot use t.Parallel() - modifies HOME and working directory
	testutil.SetupTestEnv(t)

	out, stderr, err := executeCommand(t, "", "-v", "add", "Logged")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !strings.Contains(stderr, "saved tasks") {
		t.Errorf("Expected debug log on stderr, got %q", stderr)
	}
	if strings.Contains(out, "saved tasks") {
		t.Error("Expected logs to stay out of stdout")
	}
}

func TestInteractiveDefault(t *testing.T) {
	// Cannot use t.Parallel() - modifies HOME and working directory
	env := testutil.SetupTestEnv(t)

	out, _, err := executeCommand(t, "1\nFrom menu\n6\n")
	if err != nil {
		t.Fatalf("interactive run failed: %v", err)
	}
	if !strings.Contains(out, "TASK MANAGER - MAIN MENU") {
		t.Error("Expected the menu")
	}

	got := tasks.New(env.TasksFile()).Tasks()
	if len(got) != 1 || got[0].Description != "From menu" {
		t.Errorf("Expected task created from menu, got %+v", got)
	}
}

func TestUnknownCommand(t *testing.T) {
	// Cannot use t.Parallel() - modifies HOME and working directory
	testutil.SetupTestEnv(t)

	if _, _, err := executeCommand(t, "", "lst-all"); err == nil {
		t.Error("Expected error for unknown command")
	}
}
