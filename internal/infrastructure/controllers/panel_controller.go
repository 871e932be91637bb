package controllers

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rios0rios0/modinstaller/internal/domain/commands"
	"github.com/rios0rios0/modinstaller/internal/domain/entities"
)

const panelHelp = `Commands:
  refresh            reload the installed packages
  name <package>     set the package name to install
  install [package]  install the given package, or the one set with "name"
  select <index>     select a package from the list
  uninstall          uninstall the selected package
  ensure             install or upgrade the package manager
  show               print the package list and the selection
  help               print this help
  quit               leave the panel`

// PanelController handles the "panel" subcommand: an interactive session
// that owns its package name input, inventory and selection.
type PanelController struct {
	list      commands.List
	install   commands.Install
	uninstall commands.Uninstall
	ensure    commands.Ensure
}

// NewPanelController creates a new PanelController.
func NewPanelController(
	list commands.List,
	install commands.Install,
	uninstall commands.Uninstall,
	ensure commands.Ensure,
) *PanelController {
	return &PanelController{
		list:      list,
		install:   install,
		uninstall: uninstall,
		ensure:    ensure,
	}
}

// GetBind returns the Cobra command metadata for the panel controller.
func (it *PanelController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "panel",
		Short: "Manage packages interactively",
		Long: `Open an interactive session. The package list is loaded once on start
and refreshed after every successful install, uninstall or ensure.
Type "help" inside the session for the available commands.`,
	}
}

// Execute runs the session until "quit" or end of input.
func (it *PanelController) Execute(cmd *cobra.Command, _ []string) {
	target, err := resolveTarget(cmd)
	if err != nil {
		logger.Errorf("Cannot open panel: %v", err)
		return
	}

	session := &panelSession{
		controller: it,
		target:     target,
		state:      entities.NewPanelState(),
		in:         bufio.NewScanner(cmd.InOrStdin()),
		out:        cmd.OutOrStdout(),
		prompt:     isTerminal(cmd.InOrStdin()),
	}
	defer session.state.Reset()

	session.run(context.Background())
}

func isTerminal(in io.Reader) bool {
	file, ok := in.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

type panelSession struct {
	controller *PanelController
	target     entities.Target
	state      *entities.PanelState
	in         *bufio.Scanner
	out        io.Writer
	prompt     bool
}

func (s *panelSession) run(ctx context.Context) {
	s.refresh(ctx)

	for {
		if s.prompt {
			_, _ = fmt.Fprint(s.out, "modinstaller> ")
		}
		if !s.in.Scan() {
			return
		}

		verb, rest, _ := strings.Cut(strings.TrimSpace(s.in.Text()), " ")
		rest = strings.TrimSpace(rest)

		switch strings.ToLower(verb) {
		case "":
		case "refresh":
			s.refresh(ctx)
		case "name":
			s.state.PackageName = rest
		case "install":
			if rest != "" {
				s.state.PackageName = rest
			}
			s.report(s.controller.install.Execute(ctx, s.target, s.state.Inventory, s.state.PackageName))
		case "select":
			s.selectPackage(rest)
		case "uninstall":
			s.uninstallSelected(ctx)
		case "ensure":
			s.report(s.controller.ensure.Execute(ctx, s.target, s.state.Inventory))
		case "show":
			s.show()
		case "help", "?":
			_, _ = fmt.Fprintln(s.out, panelHelp)
		case "quit", "exit":
			return
		default:
			_, _ = fmt.Fprintf(s.out, "[ERROR] Unknown command %q, type \"help\"\n", verb)
		}
	}
}

func (s *panelSession) refresh(ctx context.Context) {
	s.report(s.controller.list.Execute(ctx, s.target, s.state.Inventory))
}

// report prints the result and, when the inventory may have changed, the list.
func (s *panelSession) report(result entities.OperationResult) {
	printResult(s.out, result)
	if result.OK {
		s.show()
	}
}

// uninstallSelected clears the selection after a successful uninstall, since
// the refreshed index would point at the next package.
func (s *panelSession) uninstallSelected(ctx context.Context) {
	result := s.controller.uninstall.Execute(ctx, s.target, s.state.Inventory, s.state.Selection)
	if result.OK {
		s.state.Selection = entities.NewSelection(noSelection)
	}
	s.report(result)
}

func (s *panelSession) selectPackage(raw string) {
	index, err := strconv.Atoi(raw)
	if err != nil {
		_, _ = fmt.Fprintf(s.out, "[ERROR] %q is not a package index\n", raw)
		return
	}

	selection := entities.NewSelection(index)
	record, err := selection.Resolve(s.state.Inventory)
	if err != nil {
		_, _ = fmt.Fprintln(s.out, "[ERROR] No package selected")
		return
	}
	s.state.Selection = selection
	_, _ = fmt.Fprintf(s.out, "[INFO] Selected %s %s\n", record.Name, record.Version)
}

func (s *panelSession) show() {
	selected := noSelection
	if _, err := s.state.Selection.Resolve(s.state.Inventory); err == nil {
		selected = s.state.Selection.Index
	}
	printInventory(s.out, s.state.Inventory.Records(), selected)
}
