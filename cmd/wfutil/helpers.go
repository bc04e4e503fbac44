package main

import (
	"fmt"
	"os"

	"github.com/Belafon/WFUtilities-sub000/fsys"
	"github.com/Belafon/WFUtilities-sub000/notify"
	"github.com/Belafon/WFUtilities-sub000/script"
)

// loadEditor reads a script file and binds an editor to its content.
func loadEditor(filename string) (*script.Editor, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	return script.New(string(data), script.WithFile(filename)), nil
}

// writeResult commits the editor's pending edits back to the file.
func writeResult(filename string, e *script.Editor) error {
	if err := fsys.NewDiskFS().WriteFile(filename, []byte(e.Apply())); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}

// printNotifier surfaces service notifications on the terminal.
type printNotifier struct{}

var _ notify.Notifier = printNotifier{}

func (printNotifier) Info(msg string)    { fmt.Println(msg) }
func (printNotifier) Warning(msg string) { fmt.Fprintln(os.Stderr, "warning: "+msg) }
func (printNotifier) Error(msg string)   { fmt.Fprintln(os.Stderr, "error: "+msg) }

func (printNotifier) OpenFile(path string) {
	fmt.Println(path)
}
