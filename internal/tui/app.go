package tui

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/ohadaerp/erp/internal/bus"
	"github.com/ohadaerp/erp/internal/catalog"
	"github.com/ohadaerp/erp/internal/guard"
	"github.com/ohadaerp/erp/internal/route"
	"github.com/ohadaerp/erp/internal/tui/keys"
	"github.com/ohadaerp/erp/internal/tui/model"
	"github.com/ohadaerp/erp/internal/tui/ui"
	"github.com/ohadaerp/erp/internal/tui/views"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// Page names.
const (
	pageHome    = "home"
	pageList    = "list"
	pageDetail  = "detail"
	pageHelp    = "help"
	pageConfirm = "confirm"
)

// Options configures the TUI.
type Options struct {
	Catalog   *catalog.Catalog
	Router    route.Router
	Bus       *bus.Bus
	Logger    *zap.Logger
	Workspace string
	// DefaultModule is the kind opened at start; empty stays on the menu.
	DefaultModule string
}

// App is the main TUI application shell.
type App struct {
	app      *tview.Application
	theme    *ui.Theme
	registry *keys.Registry

	root     *tview.Flex
	pages    *ui.Pages
	crumbs   *ui.Crumbs
	menu     *ui.Menu
	info     *ui.WorkspaceInfo
	flash    *ui.FlashModel
	flashBar *ui.FlashBar
	prompt   *ui.Prompt
	confirm  *ui.Confirm

	home   *views.ModuleMenu
	list   *views.RecordList
	detail *views.RecordDetail
	help   *views.HelpView

	cat    *catalog.Catalog
	router route.Router
	bus    *bus.Bus
	logger *zap.Logger
	opts   Options

	// lists keeps one list state per kind for the life of the app.
	lists      map[string]*model.List
	promptOpen bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp creates the TUI application.
func NewApp(opts Options) *App {
	ctx, cancel := context.WithCancel(context.Background())
	theme := ui.DefaultTheme()
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	a := &App{
		app:      tview.NewApplication(),
		theme:    theme,
		registry: keys.NewRegistry(),
		pages:    ui.NewPages(),
		crumbs:   ui.NewCrumbs(theme),
		menu:     ui.NewMenu(theme),
		info:     ui.NewWorkspaceInfo(theme),
		flash:    ui.NewFlashModel(),
		flashBar: ui.NewFlashBar(theme),
		prompt:   ui.NewPrompt(theme),
		confirm:  ui.NewConfirm(theme),
		home:     views.NewModuleMenu(theme),
		list:     views.NewRecordList(theme),
		detail:   views.NewRecordDetail(theme),
		help:     views.NewHelpView(theme, opts.Catalog.Kinds()),
		cat:      opts.Catalog,
		router:   opts.Router,
		bus:      opts.Bus,
		logger:   logger.Named("tui"),
		opts:     opts,
		lists:    make(map[string]*model.List),
		ctx:      ctx,
		cancel:   cancel,
	}

	a.setupBindings()
	a.setupCallbacks()
	a.setupLayout()

	return a
}

func (a *App) setupBindings() {
	a.registry.AddGlobal("command", &keys.Action{
		Key: tcell.KeyRune, Rune: ':',
		Label: ":", Description: "Commande", Visible: true,
		Handler: func() { a.showPrompt(ui.PromptCommand, "") },
	})
	a.registry.AddGlobal("help", &keys.Action{
		Key: tcell.KeyRune, Rune: '?',
		Label: "?", Description: "Aide", Visible: true,
		Handler: a.showHelp,
	})
	a.registry.AddGlobal("back", &keys.Action{
		Key: tcell.KeyEscape,
		Label: "Esc", Description: "Retour", Visible: true,
		Handler: a.back,
	})
	a.registry.AddGlobal("quit", &keys.Action{
		Key: tcell.KeyRune, Rune: 'q',
		Label: "q", Description: "Quitter", Visible: true,
		Handler: a.Stop,
	})

	a.registry.AddView(pageHome, "open", &keys.Action{
		Key:   tcell.KeyEnter,
		Label: "Enter", Description: "Ouvrir", Visible: true,
		Handler: func() { a.openKind(a.home.SelectedKind(), "") },
	})
	for n := 1; n <= 9; n++ {
		n := n
		a.registry.AddView(pageHome, fmt.Sprintf("jump%d", n), &keys.Action{
			Key: tcell.KeyRune, Rune: rune('0' + n),
			Label: "1-9", Description: "Aller à", Visible: n == 1, Jump: true,
			Handler: func() { a.openKind(a.home.KindByIndex(n), "") },
		})
	}

	a.registry.AddView(pageList, "detail", &keys.Action{
		Key:   tcell.KeyEnter,
		Label: "Enter", Description: "Détail", Visible: true,
		Handler: a.showDetail,
	})
	a.registry.AddView(pageList, "expand", &keys.Action{
		Key: tcell.KeyRune, Rune: ' ',
		Label: "Space", Description: "Déplier", Visible: true,
		Handler: a.toggleExpand,
	})
	a.registry.AddView(pageList, "search", &keys.Action{
		Key: tcell.KeyRune, Rune: '/',
		Label: "/", Description: "Rechercher", Visible: true,
		Handler: func() {
			if l := a.list.Model(); l != nil {
				a.showPrompt(ui.PromptFilter, l.Query().Term)
			}
		},
	})
	a.registry.AddView(pageList, "filter", &keys.Action{
		Key: tcell.KeyRune, Rune: 'f',
		Label: "f", Description: "Filtrer", Visible: true,
		Handler: func() { a.updateList((*model.List).CycleFilter) },
	})
	a.registry.AddView(pageList, "filter-field", &keys.Action{
		Key: tcell.KeyRune, Rune: 'F',
		Label: "F", Description: "Champ filtré", Visible: true,
		Handler: func() {
			a.updateList((*model.List).NextFilterField)
			if f, ok := a.list.Model().FilterField(); ok {
				a.flash.Info("Filtre : " + f.Label)
			}
		},
	})
	a.registry.AddView(pageList, "clear", &keys.Action{
		Key: tcell.KeyRune, Rune: '0',
		Label: "0", Description: "Tout afficher", Visible: true,
		Handler: func() { a.updateList((*model.List).ClearQuery) },
	})
	a.registry.AddView(pageList, "delete", &keys.Action{
		Key: tcell.KeyRune, Rune: 'd',
		Label: "d", Description: "Supprimer", Visible: true,
		Handler: a.requestDelete,
	})
}

func (a *App) setupCallbacks() {
	a.pages.SetOnChange(func(trail []string) {
		a.crumbs.Update(trail)
		a.updateHeader()
	})

	a.prompt.SetOnSubmit(func(mode ui.PromptMode, text string) {
		a.hidePrompt()
		switch mode {
		case ui.PromptFilter:
			a.updateList(func(l *model.List) error { return l.SetTerm(text) })
		case ui.PromptCommand:
			a.runCommand(ParseCommand(text))
		}
	})
	a.prompt.SetOnCancel(a.hidePrompt)

	a.confirm.SetOnConfirm(a.confirmDelete)
	a.confirm.SetOnCancel(a.cancelDelete)
}

func (a *App) setupLayout() {
	a.pages.Register(pageHome, a.home)
	a.pages.Register(pageList, a.list)
	a.pages.Register(pageDetail, a.detail)
	a.pages.Register(pageHelp, a.help)
	a.pages.RegisterOverlay(pageConfirm, a.confirm)

	header := tview.NewFlex().
		AddItem(a.info, 32, 0, false).
		AddItem(a.menu, 0, 1, false).
		AddItem(ui.NewLogo(a.theme), 14, 0, false)

	a.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 6, 0, false).
		AddItem(a.prompt, 0, 0, false).
		AddItem(a.pages, 0, 1, true).
		AddItem(a.crumbs, 1, 0, false).
		AddItem(a.flashBar, 1, 0, false)

	a.app.SetRoot(a.root, true)

	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		// The modal owns every key while open; Esc there means cancel.
		if a.pages.OverlayOpen() {
			return event
		}
		if a.promptOpen {
			return event
		}
		if a.registry.HandleEvent(a.pages.Current(), event) {
			a.refreshChrome()
			return nil
		}
		return event
	})
}

// Run starts the TUI application.
func (a *App) Run() error {
	a.home.Update(a.cat.Resources())
	a.pages.Reset(pageHome)
	a.app.SetFocus(a.home)
	a.refreshChrome()

	if kind := a.opts.DefaultModule; kind != "" {
		if _, ok := a.cat.Resource(kind); ok {
			a.openKind(kind, "")
		} else {
			a.flash.Warn(fmt.Sprintf("Module par défaut inconnu : %s", kind))
		}
	}

	a.startFlashLoop()
	a.startRecordWatch()

	a.logger.Info("tui started", zap.String("workspace", a.opts.Workspace), zap.Int("records", a.cat.Total()))
	return a.app.Run()
}

// Stop gracefully shuts down the TUI.
func (a *App) Stop() {
	a.cancel()
	a.app.Stop()
}

// startFlashLoop redraws the flash bar when a message is set and clears
// it once expired.
func (a *App) startFlashLoop() {
	ticker := time.NewTicker(time.Second)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-a.flash.Watch():
			case <-ticker.C:
			case <-a.ctx.Done():
				return
			}
			a.app.QueueUpdateDraw(func() {
				a.flashBar.Render(a.flash)
			})
		}
	}()
}

// startRecordWatch keeps the record counts on the menu and header in sync
// with store changes.
func (a *App) startRecordWatch() {
	if a.bus == nil {
		return
	}
	events, unsub := a.bus.Subscribe("record.", 32)
	go func() {
		defer unsub()
		for {
			select {
			case _, ok := <-events:
				if !ok {
					return
				}
				a.app.QueueUpdateDraw(func() {
					a.home.Update(a.cat.Resources())
					a.refreshChrome()
				})
			case <-a.ctx.Done():
				return
			}
		}
	}()
}

func (a *App) openKind(kind, term string) {
	if kind == "" {
		return
	}
	res, ok := a.cat.Resource(kind)
	if !ok {
		a.flash.Warn("Vue inconnue : " + kind)
		return
	}
	l, ok := a.lists[kind]
	if !ok {
		var err error
		if l, err = model.NewList(res); err != nil {
			a.flash.Err(err)
			return
		}
		a.lists[kind] = l
	} else if err := l.Refresh(); err != nil {
		a.flash.Err(err)
		return
	}
	if term != "" {
		if err := l.SetTerm(term); err != nil {
			a.flash.Err(err)
		}
	}

	a.list.Bind(l)
	a.pages.Reset(pageHome)
	a.pages.Push(pageList)
	a.app.SetFocus(a.list)
	a.logger.Debug("view opened", zap.String("kind", kind), zap.Int("rows", len(l.Rows())))
}

// updateList applies fn to the current list and redraws it.
func (a *App) updateList(fn func(*model.List) error) {
	l := a.list.Model()
	if l == nil {
		return
	}
	if err := fn(l); err != nil {
		a.flash.Err(err)
		return
	}
	a.list.Render()
	a.refreshChrome()
}

func (a *App) toggleExpand() {
	id := a.list.SelectedID()
	if id == "" {
		return
	}
	a.list.Model().Toggle(id)
	a.list.Render()
}

func (a *App) showDetail() {
	l := a.list.Model()
	row, ok := a.list.SelectedRow()
	if l == nil || !ok {
		return
	}
	res := l.Resource()
	fields, err := res.Detail(row.ID)
	if err != nil {
		a.flash.Err(err)
		return
	}
	url, urlErr := a.router.DetailURL(res.Kind(), row.ID)
	a.detail.Update(res, row, fields, url, urlErr)
	a.pages.Push(pageDetail)
	a.app.SetFocus(a.detail)
}

func (a *App) showHelp() {
	if a.pages.Current() == pageHelp {
		return
	}
	a.pages.Push(pageHelp)
	a.app.SetFocus(a.help)
}

func (a *App) back() {
	if a.pages.Pop() {
		a.focusCurrent()
	}
}

func (a *App) focusCurrent() {
	if top := a.pages.Top(); top != nil {
		a.app.SetFocus(top)
	}
}

func (a *App) showPrompt(mode ui.PromptMode, text string) {
	a.prompt.ActivateWith(mode, text)
	a.root.ResizeItem(a.prompt, 3, 0)
	a.promptOpen = true
	a.app.SetFocus(a.prompt)
}

func (a *App) hidePrompt() {
	if !a.promptOpen {
		return
	}
	a.root.ResizeItem(a.prompt, 0, 0)
	a.promptOpen = false
	a.focusCurrent()
}

func (a *App) runCommand(cmd Command) {
	kind, arg := cmd.Resolve(a.cat.Kinds())
	switch kind {
	case CmdQuit:
		a.Stop()
	case CmdHelp:
		a.showHelp()
	case CmdHome:
		a.home.Update(a.cat.Resources())
		a.pages.Reset(pageHome)
		a.app.SetFocus(a.home)
	case CmdOpen:
		a.openKind(arg, cmd.Args)
	default:
		a.flash.Warn("Commande inconnue : " + cmd.Name)
	}
}

func (a *App) requestDelete() {
	l := a.list.Model()
	id := a.list.SelectedID()
	if l == nil || id == "" {
		return
	}
	p, err := l.RequestDelete(id)
	if err != nil {
		a.flash.Err(err)
		return
	}
	a.confirm.Show(p.Title, p.Message)
	a.pages.ShowOverlay(pageConfirm)
	a.app.SetFocus(a.confirm)
}

func (a *App) confirmDelete() {
	l := a.list.Model()
	res := l.Resource()
	p, _ := res.PendingDelete()

	if err := l.ConfirmDelete(); err != nil {
		if res.DeleteState() == guard.Confirming {
			a.logger.Warn("delete failed", zap.String("kind", res.Kind()), zap.Error(err))
			a.confirm.ShowError(err)
			return
		}
		// Deleted, but the list could not be refreshed.
		a.flash.Err(err)
	} else {
		a.flash.OK(fmt.Sprintf("%s « %s » supprimé", capitalize(res.ItemType()), p.ItemName))
	}
	a.closeConfirm()
	a.list.Render()
}

func (a *App) cancelDelete() {
	l := a.list.Model()
	if err := l.CancelDelete(); err != nil && !errors.Is(err, guard.ErrInvalidStateTransition) {
		a.flash.Err(err)
	}
	a.closeConfirm()
}

func (a *App) closeConfirm() {
	a.pages.HideOverlay()
	a.app.SetFocus(a.list)
	a.refreshChrome()
}

// refreshChrome redraws the crumbs and header.
func (a *App) refreshChrome() {
	a.pages.Refresh()
}

func (a *App) updateHeader() {
	current := a.pages.Current()
	a.menu.Update(a.registry.Hints(current))

	data := &ui.WorkspaceData{Workspace: a.opts.Workspace, Total: a.cat.Total()}
	if l := a.list.Model(); l != nil && current != pageHome {
		data.Module = l.Resource().Module()
		data.View = l.Resource().Title()
		data.Records = len(l.Rows())
	}
	a.info.Update(data)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
