package ui

import (
	"fmt"
	"strings"

	"envi-binreader/envi/efile"
	"envi-binreader/envi/ehdr"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

const DefaultPageSize = 15

// HeaderBrowser lists the header items of an opened file one page at a time.
type HeaderBrowser struct {
	metadata efile.Metadata
	entries  []ehdr.Entry
	warnings []string
	cursor   int
	pageSize int
}

func CreateHeaderBrowser(file *efile.File) HeaderBrowser {
	entries := []ehdr.Entry{}
	if file.HasHeader() {
		entries = file.Header().Entries()
	}
	return HeaderBrowser{
		metadata: file.Metadata(),
		entries:  entries,
		warnings: lo.Map(
			file.Diagnostics(),
			func(err error, _ int) string {
				return err.Error()
			},
		),
		pageSize: DefaultPageSize,
	}
}

func (s HeaderBrowser) Cursor() int {
	return s.cursor
}

func (s HeaderBrowser) View() string {
	output := "ENVI HEADER\n\n"
	output += fmt.Sprintf(
		"%s  %s  %d lines x %d samples x %d bands  %s\n",
		s.metadata.FileName, s.metadata.Style,
		s.metadata.Lines, s.metadata.Samples, s.metadata.Bands,
		s.metadata.DataTypeName,
	)
	for _, warning := range s.warnings {
		output += "! " + warning + "\n"
	}
	output += "\n"

	start := s.cursor - s.cursor%s.pageSize
	end := lo.Min([]int{start + s.pageSize, len(s.entries)})
	for i := start; i < end; i++ {
		marker := lo.Ternary(i == s.cursor, ">", " ")
		entry := s.entries[i]
		output += fmt.Sprintf("%s %s = %s\n", marker, entry.Key, ehdr.Tidy(entry.Value, false))
	}
	if len(s.entries) == 0 {
		output += "  (no header items)\n"
	}

	output += "\n" + strings.Join([]string{"up/down: move", "pgup/pgdown: page", "q: quit"}, "  ") + "\n"
	return output
}

func (s HeaderBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	last := len(s.entries) - 1
	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		return s, tea.Quit
	case "up", "k":
		s.cursor = lo.Max([]int{s.cursor - 1, 0})
	case "down", "j":
		s.cursor = lo.Max([]int{lo.Min([]int{s.cursor + 1, last}), 0})
	case "pgup":
		s.cursor = lo.Max([]int{s.cursor - s.pageSize, 0})
	case "pgdown":
		s.cursor = lo.Max([]int{lo.Min([]int{s.cursor + s.pageSize, last}), 0})
	case "home", "g":
		s.cursor = 0
	case "end", "G":
		s.cursor = lo.Max([]int{last, 0})
	}
	return s, nil
}

func (s HeaderBrowser) Init() tea.Cmd {
	return nil
}
