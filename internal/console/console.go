// Package console implements the interactive numbered-menu front end.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const rule = "------------------------------------------------------------"

// TaskStore is the set of store operations the menu drives
type TaskStore interface {
	Create(description string) (bool, error)
	Render() string
	MarkDone(id int) (bool, error)
	Remove(id int) (bool, error)
	RemoveAll() (bool, error)
}

// Console reads menu selections from in and writes results to out
type Console struct {
	store TaskStore
	in    *bufio.Reader
	out   io.Writer
}

// New creates a console bound to a store
func New(store TaskStore, in io.Reader, out io.Writer) *Console {
	return &Console{
		store: store,
		in:    bufio.NewReader(in),
		out:   out,
	}
}

// Run loops until the user quits or input ends. Both return nil.
// A storage fault ends the loop and is returned.
func (c *Console) Run() error {
	for {
		c.showMenu()

		choice, err := c.prompt("\nSelect an option (1-6): ")
		if err != nil {
			return eofAsNil(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = c.create()
		case "2":
			fmt.Fprintln(c.out, c.store.Render())
		case "3":
			err = c.markDone()
		case "4":
			err = c.remove()
		case "5":
			err = c.removeAll()
		case "6":
			fmt.Fprintln(c.out, "\nThank you for using Task Manager!")
			return nil
		default:
			fmt.Fprintln(c.out, "✘ Invalid option. Please select a number between 1-6.")
		}

		if err != nil {
			return eofAsNil(err)
		}
	}
}

func (c *Console) showMenu() {
	fmt.Fprintln(c.out, "\n"+rule)
	fmt.Fprintln(c.out, "TASK MANAGER - MAIN MENU")
	fmt.Fprintln(c.out, rule)
	fmt.Fprintln(c.out, "1. Create New Task")
	fmt.Fprintln(c.out, "2. Show All Tasks")
	fmt.Fprintln(c.out, "3. Mark Task as Done")
	fmt.Fprintln(c.out, "4. Remove Task")
	fmt.Fprintln(c.out, "5. Remove All Tasks")
	fmt.Fprintln(c.out, "6. Quit")
	fmt.Fprintln(c.out, rule)
}

func (c *Console) create() error {
	description, err := c.prompt("Enter task description: ")
	if err != nil {
		return err
	}

	ok, err := c.store.Create(description)
	if err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}
	if ok {
		fmt.Fprintln(c.out, "✔ Task created successfully!")
	} else {
		fmt.Fprintln(c.out, "✘ Task creation failed. Description cannot be empty.")
	}
	return nil
}

func (c *Console) markDone() error {
	id, valid, err := c.promptID("Enter task ID to mark as done: ")
	if err != nil || !valid {
		return err
	}

	ok, err := c.store.MarkDone(id)
	if err != nil {
		return fmt.Errorf("failed to save task #%d: %w", id, err)
	}
	if ok {
		fmt.Fprintf(c.out, "✔ Task #%d marked as done!\n", id)
	} else {
		fmt.Fprintf(c.out, "✘ Task #%d not found.\n", id)
	}
	return nil
}

func (c *Console) remove() error {
	id, valid, err := c.promptID("Enter task ID to remove: ")
	if err != nil || !valid {
		return err
	}

	ok, err := c.store.Remove(id)
	if err != nil {
		return fmt.Errorf("failed to remove task #%d: %w", id, err)
	}
	if ok {
		fmt.Fprintf(c.out, "✔ Task #%d removed successfully!\n", id)
	} else {
		fmt.Fprintf(c.out, "✘ Task #%d not found.\n", id)
	}
	return nil
}

func (c *Console) removeAll() error {
	answer, err := c.prompt("Are you sure you want to remove all tasks? (yes/no): ")
	if err != nil {
		return err
	}

	if !Confirmed(answer) {
		fmt.Fprintln(c.out, "Action cancelled.")
		return nil
	}

	if _, err := c.store.RemoveAll(); err != nil {
		return fmt.Errorf("failed to remove tasks: %w", err)
	}
	fmt.Fprintln(c.out, "✔ All tasks have been removed!")
	return nil
}

// Confirmed reports whether answer is a case-insensitive "yes"
func Confirmed(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "yes")
}

// promptID reads an integer id. valid is false (with a message printed)
// when the input is not a number.
func (c *Console) promptID(label string) (id int, valid bool, err error) {
	raw, err := c.prompt(label)
	if err != nil {
		return 0, false, err
	}

	id, convErr := strconv.Atoi(strings.TrimSpace(raw))
	if convErr != nil {
		fmt.Fprintln(c.out, "✘ Invalid input. Please enter a valid number.")
		return 0, false, nil
	}
	return id, true, nil
}

// prompt prints label and reads one line. A final line without a trailing
// newline is still returned; io.EOF is only reported when nothing was read.
func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)

	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func eofAsNil(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
