// Package ui is the interactive terminal browser for SOR files.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"sor-reader/sor"
)

func Start(dir string, options sor.Options) error {
	browser, err := CreateBrowser(dir, options)
	if err != nil {
		return errors.Wrap(err, "ui.Start error")
	}
	if err := tea.NewProgram(browser).Start(); err != nil {
		return errors.Wrap(err, "ui.Start error")
	}
	return nil
}
