package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/zoro11031/turtleshell/internal/common"
)

// ErrExit is returned when the user chooses to exit the menu
var ErrExit = errors.New("exit")

// MenuItem is one operation offered by the interactive menu
type MenuItem struct {
	Name   string
	Prompt string // input requested before running; empty for none
	// Optional marks items whose input may be left empty.
	Optional bool
}

// MenuItems returns the menu entries in display order
func MenuItems() []MenuItem {
	return []MenuItem{
		{Name: "List directory (ls)", Prompt: "Directory (empty for current)", Optional: true},
		{Name: "Read files (cat)", Prompt: "Files, separated by spaces"},
		{Name: "Copy (cp)", Prompt: "Sources then destination, separated by spaces"},
		{Name: "Move (mv)", Prompt: "Sources then destination, separated by spaces"},
		{Name: "Create file (touch)", Prompt: "Files, separated by spaces"},
		{Name: "Create directory (mkdir)", Prompt: "Directories, separated by spaces"},
		{Name: "Exit"},
	}
}

// Menu provides an interactive menu interface
type Menu struct {
	ctx *Context
}

// NewMenu creates a new Menu instance
func NewMenu(ctx *Context) *Menu {
	return &Menu{ctx: ctx}
}

// Show displays the main menu and runs operations until the user exits
func (m *Menu) Show(ctx context.Context) error {
	items := MenuItems()
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}

	m.ctx.UI.Header("turtleshell")

	for {
		choice, err := m.ctx.UI.PromptSelect("What would you like to do?", names)
		if err != nil {
			return err
		}

		input, err := m.promptArgs(items[choice])
		if err != nil {
			return err
		}

		if err := m.handleChoice(ctx, choice, strings.Fields(input)); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			m.ctx.UI.Error(err.Error())
		}
		m.ctx.UI.Separator()
	}
}

func (m *Menu) promptArgs(item MenuItem) (string, error) {
	if item.Prompt == "" {
		return "", nil
	}
	if item.Optional {
		return m.ctx.UI.PromptInput(item.Prompt, "")
	}
	return m.ctx.UI.PromptInputWithValidation(item.Prompt, "", common.ValidateNotEmpty)
}

// handleChoice runs the operation at index choice of MenuItems with args
func (m *Menu) handleChoice(ctx context.Context, choice int, args []string) error {
	switch choice {
	case 0:
		dir := ""
		if len(args) > 0 {
			dir = args[0]
		}
		return RunList(ctx, m.ctx, dir)
	case 1:
		return RunCat(ctx, m.ctx, args)
	case 2:
		if err := RunCopy(ctx, m.ctx, args, true); err != nil {
			return err
		}
		m.ctx.UI.Success("Copied")
		return nil
	case 3:
		if err := RunMove(ctx, m.ctx, args, true); err != nil {
			return err
		}
		m.ctx.UI.Success("Moved")
		return nil
	case 4:
		if err := RunTouch(ctx, m.ctx, args); err != nil {
			return err
		}
		m.ctx.UI.Successf("Touched %d files", len(args))
		return nil
	case 5:
		if err := RunMkdir(ctx, m.ctx, args, m.confirmParents()); err != nil {
			return err
		}
		m.ctx.UI.Successf("Created %d directories", len(args))
		return nil
	case 6:
		return ErrExit
	default:
		return fmt.Errorf("invalid choice: %d", choice)
	}
}

// confirmParents asks whether missing parent directories should be created
func (m *Menu) confirmParents() bool {
	ok, err := m.ctx.UI.PromptYesNo("Create missing parent directories?", false)
	return err == nil && ok
}
