package ui

import (
	"envi-binreader/envi/efile"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

func Start(file *efile.File) error {
	browser := CreateHeaderBrowser(file)
	if err := tea.NewProgram(browser).Start(); err != nil {
		return errors.Wrap(err, "ui.Start error")
	}
	return nil
}
