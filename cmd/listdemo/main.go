// Command listdemo drives a ListBox in the terminal.
//
//	listdemo [-config listkit.toml] [-columns] [-lang de] [dir]
//
// With a directory argument the list shows its entries, otherwise a fixed
// sample. Arrow keys move, shift extends, space toggles, q quits.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/BrandonKowalski/listkit/pkg/listkit"
	"github.com/BrandonKowalski/listkit/pkg/listkit/locale"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	configPath := flag.String("config", "", "TOML config file")
	columns := flag.Bool("columns", false, "multi-column layout")
	lang := flag.String("lang", os.Getenv("LANG"), "message language")
	logPath := flag.String("log", "", "log file")
	flag.Parse()

	// The alternate screen owns stdout.
	listkit.SetLogOutput(io.Discard)
	cfg, err := listkit.Init(listkit.Options{ConfigPath: *configPath, LogPath: *logPath})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer listkit.CloseLogger()
	if *columns {
		cfg.List.MultiColumn = true
	}

	tr, err := locale.New(*lang)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	items := sampleItems
	if dir := flag.Arg(0); dir != "" {
		if items, err = dirItems(dir); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	m, err := newModel(cfg, tr, items)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func dirItems(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		out = append(out, name)
	}
	return out, nil
}

var sampleItems = []string{
	"apple", "apricot", "banana", "blackberry", "blueberry", "cherry",
	"clementine", "date", "elderberry", "fig", "grape", "grapefruit",
	"kiwi", "lemon", "lime", "mango", "nectarine", "orange", "papaya",
	"peach", "pear", "persimmon", "pineapple", "plum", "quince",
	"raspberry", "strawberry", "tangerine", "watermelon",
}
