package app

import (
	"github.com/chmouel/lazycollect/internal/export"
	"github.com/chmouel/lazycollect/internal/scanner"
)

type exportAction int

const (
	actionCopy exportAction = iota
	actionWrite
	actionCopyTree
)

func (a exportAction) String() string {
	switch a {
	case actionCopy:
		return "Copy"
	case actionWrite:
		return "Write"
	default:
		return "Export"
	}
}

type (
	scanDoneMsg struct {
		gen    int
		result *scanner.Result
		err    error
	}
	loadingTickMsg struct{ gen int }
	exportDoneMsg  struct {
		action  exportAction
		target  string
		files   int
		skipped []error
		method  export.ClipboardMethod
		err     error
	}
	treeChangedMsg struct{}
	rescanDueMsg   struct{}
)
