package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"sor-reader/sor"
	"sor-reader/sor/dstruct"
)

const (
	StateListing = "listing"
	StateShowing = "showing"
)

const Extension = ".sor"

type Entry struct {
	Name  string
	IsDir bool
}

// Browser walks a folder tree and decodes the .sor files in it.
type Browser struct {
	dir     string
	entries []Entry
	cursor  int
	state   string
	summary string
	message string
	options sor.Options
}

// ReadDirectory lists the sub folders, then the .sor files of path, each
// group sorted by name. Hidden entries are left out.
func ReadDirectory(path string) ([]Entry, error) {
	files, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.Wrapf(err, `ReadDirectory error: "%s"`, path)
	}

	visible := lo.Filter(
		files,
		func(file os.DirEntry, _ int) bool {
			if strings.HasPrefix(file.Name(), ".") {
				return false
			}
			return file.IsDir() || strings.EqualFold(filepath.Ext(file.Name()), Extension)
		},
	)
	entries := lo.Map(
		visible,
		func(file os.DirEntry, _ int) Entry {
			return Entry{Name: file.Name(), IsDir: file.IsDir()}
		},
	)
	sort.SliceStable(
		entries,
		func(i, j int) bool {
			if entries[i].IsDir != entries[j].IsDir {
				return entries[i].IsDir
			}
			return entries[i].Name < entries[j].Name
		},
	)
	return entries, nil
}

func CreateBrowser(dir string, options sor.Options) (Browser, error) {
	b := Browser{
		state:   StateListing,
		options: options,
	}
	if err := b.changeDirectory(dir); err != nil {
		return b, err
	}
	return b, nil
}

func (b *Browser) changeDirectory(dir string) error {
	entries, err := ReadDirectory(dir)
	if err != nil {
		return err
	}
	b.dir = dir
	b.entries = append([]Entry{{Name: "..", IsDir: true}}, entries...)
	b.cursor = 0
	return nil
}

func (b Browser) selected() (Entry, bool) {
	if b.cursor < 0 || b.cursor >= len(b.entries) {
		return Entry{}, false
	}
	return b.entries[b.cursor], true
}

func (b Browser) open() Browser {
	entry, ok := b.selected()
	if !ok {
		return b
	}
	path := filepath.Join(b.dir, entry.Name)
	if entry.IsDir {
		if err := b.changeDirectory(filepath.Clean(path)); err != nil {
			b.message = err.Error()
		}
		return b
	}

	bs, err := os.ReadFile(path)
	if err != nil {
		b.message = err.Error()
		return b
	}
	document, err := dstruct.DecodeBytes(bs)
	if err != nil {
		b.message = fmt.Sprintf("%s: %v", entry.Name, err)
		return b
	}
	b.state = StateShowing
	b.summary = Summarize(*document)
	b.message = ""
	return b
}

// export writes the rendering of the selected file next to it.
func (b Browser) export() Browser {
	entry, ok := b.selected()
	if !ok || entry.IsDir {
		return b
	}
	from := filepath.Join(b.dir, entry.Name)
	to := strings.TrimSuffix(from, filepath.Ext(from)) + "." + string(b.options.Format)
	if _, err := os.Stat(to); err == nil {
		b.message = filepath.Base(to) + " already exists"
		return b
	}

	bs, err := os.ReadFile(from)
	if err != nil {
		b.message = err.Error()
		return b
	}
	rendered, err := sor.DecodeSOR(bs, b.options)
	if err != nil {
		b.message = fmt.Sprintf("%s: %v", entry.Name, err)
		return b
	}
	if err := os.WriteFile(to, rendered, 0644); err != nil {
		b.message = err.Error()
		return b
	}
	b.message = "wrote " + filepath.Base(to)
	return b
}

func (b Browser) View() string {
	output := "SOR READER\n\n"
	output += "Current directory: " + b.dir + "\n\n"

	switch b.state {
	case StateShowing:
		entry, _ := b.selected()
		output += entry.Name + "\n\n" + b.summary + "\n\n"
		output += "esc: back • q: quit\n"
	default:
		if len(b.entries) == 1 {
			output += "  (no .sor files here)\n"
		}
		for i, entry := range b.entries {
			cursor := " "
			if i == b.cursor {
				cursor = ">"
			}
			name := entry.Name
			if entry.IsDir {
				name += "/"
			}
			output += fmt.Sprintf("%s %s\n", cursor, name)
		}
		output += "\n↑/↓: move • enter: open • c: convert • q: quit\n"
	}
	if b.message != "" {
		output += "\n" + b.message + "\n"
	}
	return output
}

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return b, tea.Quit
	}

	if b.state == StateShowing {
		switch keyMsg.String() {
		case "esc", "backspace", "enter":
			b.state = StateListing
			b.summary = ""
		}
		return b, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if b.cursor > 0 {
			b.cursor--
		}
	case "down", "j":
		if b.cursor < len(b.entries)-1 {
			b.cursor++
		}
	case "enter":
		b = b.open()
	case "c":
		b = b.export()
	}
	return b, nil
}

func (b Browser) Init() tea.Cmd {
	return nil
}
