// Package app wires the editor together: panes, modes, overlays, and
// the services behind them. The Model is the single bubbletea root.
package app

import (
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hollisbeck/vellum/internal/config"
	"github.com/hollisbeck/vellum/internal/domain"
	"github.com/hollisbeck/vellum/internal/modal"
	"github.com/hollisbeck/vellum/internal/position"
	"github.com/hollisbeck/vellum/internal/registry"
	"github.com/hollisbeck/vellum/internal/services/docstore"
	"github.com/hollisbeck/vellum/internal/services/editor"
	"github.com/hollisbeck/vellum/internal/services/render"
	"github.com/hollisbeck/vellum/internal/types"
	"github.com/hollisbeck/vellum/internal/ui/overlay"
	"github.com/hollisbeck/vellum/internal/ui/ruler"
	"github.com/hollisbeck/vellum/internal/ui/styles"
)

// Pane identifies which half of the split has focus
type Pane int

const (
	PaneEditor Pane = iota
	PanePreview
)

// Modal names known to the coordinator
const (
	modalHelp     = "help"
	modalConfirm  = "confirm"
	modalPalette  = "palette"
	modalSettings = "settings"
	modalBrowser  = "browser"
)

type tickMsg time.Time

type repositionMsg struct{}

// panes tracks the split layout. It satisfies the coordinator's pane
// switching contract: when the window is narrow only one pane is shown,
// and closing every modal must land the user back in the editor.
type panes struct {
	active Pane
	narrow bool
}

func (p *panes) SinglePane() bool { return p.narrow }

func (p *panes) ShowEditorPane() { p.active = PaneEditor }

// Model is the main application model
type Model struct {
	cfg    *config.Config
	logger *slog.Logger
	styles *styles.Styles

	width  int
	height int

	state *editor.Service
	panes *panes

	reg         *registry.Registry
	overlays    *overlay.Stack
	coordinator *modal.Coordinator
	named       map[string]overlay.Overlay
	ruler       *ruler.Ruler
	tracker     *position.Tracker
	repositions chan struct{}

	store    *docstore.Store
	renderer *render.Service

	doc         *domain.Document
	nextConfirm overlay.Overlay
	gSeq        bool
	editor      textarea.Model
	preview     string
	diags       []render.Diagnostic
	dirty       bool

	toasts  []types.Toast
	pending []tea.Cmd
}

// New creates the application model from loaded config
func New(cfg *config.Config, logger *slog.Logger) (*Model, error) {
	if logger == nil {
		logger = slog.Default()
	}

	store, err := docstore.NewStore(cfg.Storage.Dir, logger)
	if err != nil {
		return nil, err
	}

	renderer, err := render.NewService(80, logger)
	if err != nil {
		return nil, err
	}

	ed := textarea.New()
	ed.Placeholder = "Start writing..."
	ed.ShowLineNumbers = false

	m := &Model{
		cfg:         cfg,
		logger:      logger,
		styles:      styles.New(),
		state:       editor.NewService(),
		panes:       &panes{active: PaneEditor},
		named:       make(map[string]overlay.Overlay),
		ruler:       ruler.New(cfg.Editor.RulerColumn),
		store:       store,
		renderer:    renderer,
		editor:      ed,
		repositions: make(chan struct{}, 1),
	}

	m.reg = registry.New(logger)
	m.overlays = overlay.NewStack(m.reg)

	m.tracker = position.NewTracker(func() {
		select {
		case m.repositions <- struct{}{}:
		default:
		}
	}, 0)

	m.coordinator = modal.New(m.ruler, m.panes, logger)
	m.coordinator.Register(modalHelp, m.modalSetter(modalHelp, func() overlay.Overlay {
		return overlay.NewHelp()
	}))
	m.coordinator.Register(modalPalette, m.modalSetter(modalPalette, func() overlay.Overlay {
		return overlay.NewPalette(m.commands())
	}))
	m.coordinator.Register(modalSettings, m.modalSetter(modalSettings, func() overlay.Overlay {
		return overlay.NewSettings(m.cfg.Editor.RulerColumn, m.cfg.UI.Theme, m.cfg.Editor.WordWrap)
	}))
	m.coordinator.Register(modalBrowser, m.modalSetter(modalBrowser, func() overlay.Overlay {
		docs, err := m.store.List()
		if err != nil {
			m.logger.Error("listing documents failed", "error", err)
		}
		return overlay.NewBrowser(docs)
	}))
	m.coordinator.Register(modalConfirm, m.modalSetter(modalConfirm, func() overlay.Overlay {
		return m.nextConfirm
	}))

	if err := m.openMostRecent(); err != nil {
		logger.Warn("could not open a document at startup", "error", err)
	}

	return m, nil
}

// modalSetter adapts one overlay constructor to the coordinator's
// visibility contract. Closing is keyed on the overlay instance so a
// setter firing after an external dismissal is a no-op.
func (m *Model) modalSetter(name string, build func() overlay.Overlay) modal.Setter {
	return func(visible bool) {
		if visible {
			o := build()
			if o == nil {
				return
			}
			m.named[name] = o
			m.pending = append(m.pending, m.overlays.Push(o))
			return
		}
		if o, ok := m.named[name]; ok {
			m.overlays.Remove(o)
			delete(m.named, name)
		}
	}
}

func (m *Model) commands() []overlay.Command {
	return []overlay.Command{
		{Name: "New Document", Hint: "ctrl+n"},
		{Name: "Open Document", Hint: "ctrl+o"},
		{Name: "Save", Hint: "ctrl+s"},
		{Name: "Delete Document", Hint: "ctrl+d"},
		{Name: "Toggle Ruler", Hint: "ctrl+r"},
		{Name: "Settings", Hint: ","},
		{Name: "Help", Hint: "?"},
	}
}

func (m *Model) openMostRecent() error {
	docs, err := m.store.List()
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		doc, err := m.store.Create("Untitled")
		if err != nil {
			return err
		}
		m.setDocument(doc)
		return nil
	}
	doc, err := m.store.Load(docs[0].ID)
	if err != nil {
		return err
	}
	m.setDocument(doc)
	return nil
}

func (m *Model) setDocument(doc domain.Document) {
	m.doc = &doc
	m.editor.SetValue(doc.Body)
	m.dirty = false
	m.refreshPreview()
}

func (m *Model) refreshPreview() {
	if m.doc == nil {
		return
	}
	out, diags, err := m.renderer.Render(m.editor.Value())
	if err != nil {
		m.logger.Error("preview render failed", "error", err)
		m.addToast(types.ToastError, "Preview failed: "+err.Error())
		return
	}
	m.preview = out
	m.diags = diags
}

func (m *Model) addToast(level types.ToastLevel, message string) {
	ttl := time.Duration(m.cfg.UI.ToastTTLMs) * time.Millisecond
	if level == types.ToastError {
		ttl = time.Duration(m.cfg.UI.ErrorTTLMs) * time.Millisecond
	}
	m.toasts = append(m.toasts, types.NewToast(level, message, ttl))
}

func (m *Model) pruneToasts() {
	now := time.Now()
	kept := m.toasts[:0]
	for _, t := range m.toasts {
		if t.Expires.After(now) {
			kept = append(kept, t)
		}
	}
	m.toasts = kept
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) waitForReposition() tea.Cmd {
	ch := m.repositions
	return func() tea.Msg {
		<-ch
		return repositionMsg{}
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.waitForReposition())
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.pending = nil

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleResize(msg)

	case tickMsg:
		m.pruneToasts()
		m.pending = append(m.pending, tickCmd())

	case repositionMsg:
		if !m.overlays.IsEmpty() {
			m.pending = append(m.pending, m.overlays.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height}))
		}
		m.pending = append(m.pending, m.waitForReposition())

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		if cmd != nil {
			m.pending = append(m.pending, cmd)
		}

	case tea.MouseMsg:
		if !m.overlays.IsEmpty() {
			m.pending = append(m.pending, m.overlays.Update(msg))
		}

	case overlay.CloseOverlayMsg:
		m.pending = append(m.pending, m.overlays.Update(msg))

	case overlay.SelectionMsg:
		switch msg.Source {
		case "palette":
			m.runCommand(msg.Value)
		case "browser":
			m.openDocument(msg.Value)
		}

	case overlay.ConfirmResultMsg:
		m.handleConfirm(msg)

	case overlay.SettingsAppliedMsg:
		m.applySettings(msg)

	case overlay.OpenLinkMsg:
		m.addToast(types.ToastInfo, "Opening "+msg.URL)
		m.logger.Info("link opened from popover", "url", msg.URL)
	}

	return m, tea.Batch(m.pending...)
}

func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height

	m.panes.narrow = msg.Width < m.cfg.UI.NarrowWidth

	paneWidth := msg.Width / 2
	if m.panes.narrow {
		paneWidth = msg.Width
	}
	m.editor.SetWidth(paneWidth - 4)
	m.editor.SetHeight(msg.Height - 3)

	m.tracker.Notify()
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Escape goes through the registry first so exactly one overlay
	// reacts; only when nothing is open does it fall through to modes.
	if msg.Type == tea.KeyEsc {
		if m.overlays.CloseTop() {
			return nil
		}
		if m.state.ExitMode() {
			m.editor.Blur()
		}
		return nil
	}

	// Coordinated modal shortcuts work even while another overlay is
	// open; the coordinator closes whatever was there first.
	switch msg.String() {
	case "ctrl+k":
		m.coordinator.Open(modalPalette)
		return nil
	case "ctrl+o":
		m.coordinator.Open(modalBrowser)
		return nil
	}

	if !m.overlays.IsEmpty() {
		return m.overlays.Update(msg)
	}

	switch m.state.Mode() {
	case types.ModeInsert:
		return m.handleInsertKey(msg)
	case types.ModeSelect:
		return m.handleSelectKey(msg)
	default:
		return m.handleNormalKey(msg)
	}
}

func (m *Model) handleInsertKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+s" {
		return m.save()
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.dirty = true
	m.refreshPreview()
	return cmd
}

func (m *Model) handleSelectKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "j", "down":
		m.state.ExtendSelection(m.editor.Line() + 1)
	case "k", "up":
		m.state.ExtendSelection(m.editor.Line() - 1)
	case "y", "d":
		// Selection editing is handled by the textarea itself.
		m.state.ExitMode()
	}
	return nil
}

func (m *Model) handleNormalKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "q":
		if m.dirty {
			m.openConfirm("Quit without saving?", "Unsaved edits will be lost.", "quit")
			return nil
		}
		return tea.Quit
	case "i":
		m.state.EnterInsert()
		m.panes.active = PaneEditor
		return m.editor.Focus()
	case "v":
		m.state.EnterSelect(m.editor.Line())
	case "tab":
		if !m.panes.narrow {
			if m.panes.active == PaneEditor {
				m.panes.active = PanePreview
			} else {
				m.panes.active = PaneEditor
			}
		}
	case "ctrl+s":
		return m.save()
	case "ctrl+n":
		m.newDocument()
	case "ctrl+d":
		m.openConfirm("Delete document?", "This cannot be undone.", "delete")
	case "ctrl+r":
		if m.ruler.Toggle() {
			m.addToast(types.ToastInfo, fmt.Sprintf("Ruler at column %d", m.ruler.Column()))
		}
	case ",":
		m.coordinator.Open(modalSettings, modal.WithKeepRuler())
	case "?":
		m.coordinator.Open(modalHelp)
	case "g":
		m.gSeq = true
		return nil
	case "l":
		if m.gSeq {
			m.openLinkPopover()
		}
	}
	m.gSeq = false
	return nil
}

func (m *Model) openConfirm(title, question, action string) {
	m.nextConfirm = overlay.NewConfirm(title, question, action)
	m.coordinator.Open(modalConfirm)
}

func (m *Model) runCommand(name string) {
	switch name {
	case "New Document":
		m.newDocument()
	case "Open Document":
		m.coordinator.Open(modalBrowser)
	case "Save":
		m.pending = append(m.pending, m.save())
	case "Delete Document":
		m.openConfirm("Delete document?", "This cannot be undone.", "delete")
	case "Toggle Ruler":
		m.ruler.Toggle()
	case "Settings":
		m.coordinator.Open(modalSettings, modal.WithKeepRuler())
	case "Help":
		m.coordinator.Open(modalHelp)
	}
}

func (m *Model) handleConfirm(msg overlay.ConfirmResultMsg) {
	if !msg.Confirmed {
		return
	}
	switch msg.Action {
	case "quit":
		m.pending = append(m.pending, tea.Quit)
	case "delete":
		m.deleteDocument()
	}
}

func (m *Model) applySettings(msg overlay.SettingsAppliedMsg) {
	m.cfg.Editor.RulerColumn = msg.RulerColumn
	m.cfg.Editor.WordWrap = msg.WordWrap
	m.cfg.UI.Theme = msg.Theme
	m.ruler.SetColumn(msg.RulerColumn)

	if err := config.SaveConfig(m.cfg, ".vellum.json"); err != nil {
		m.logger.Error("saving config failed", "error", err)
		m.addToast(types.ToastError, "Could not save settings")
		return
	}
	m.addToast(types.ToastSuccess, "Settings saved")
}

func (m *Model) save() tea.Cmd {
	if m.doc == nil {
		return nil
	}
	m.doc.Body = m.editor.Value()
	if err := m.store.Save(*m.doc); err != nil {
		m.logger.Error("save failed", "id", m.doc.ID, "error", err)
		m.addToast(types.ToastError, "Save failed: "+err.Error())
		return nil
	}
	m.dirty = false
	m.addToast(types.ToastSuccess, "Saved "+m.doc.Title)
	return nil
}

func (m *Model) openDocument(id string) {
	doc, err := m.store.Load(id)
	if err != nil {
		m.logger.Error("load failed", "id", id, "error", err)
		m.addToast(types.ToastError, "Could not open document")
		return
	}
	m.setDocument(doc)
}

func (m *Model) newDocument() {
	doc, err := m.store.Create("Untitled")
	if err != nil {
		m.logger.Error("create failed", "error", err)
		m.addToast(types.ToastError, "Could not create document")
		return
	}
	m.setDocument(doc)
	m.addToast(types.ToastInfo, "New document")
}

func (m *Model) deleteDocument() {
	if m.doc == nil {
		return
	}
	if err := m.store.Delete(m.doc.ID); err != nil {
		m.logger.Error("delete failed", "id", m.doc.ID, "error", err)
		m.addToast(types.ToastError, "Delete failed")
		return
	}
	m.addToast(types.ToastInfo, "Deleted "+m.doc.Title)
	m.doc = nil
	if err := m.openMostRecent(); err != nil {
		m.logger.Warn("no document to fall back to", "error", err)
	}
}

var inlineLinkRe = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)

// openLinkPopover previews the first link on the cursor's line. The
// popover anchors to the link text and follows it through resizes.
func (m *Model) openLinkPopover() {
	row := m.editor.Line()
	lines := splitLines(m.editor.Value())
	if row >= len(lines) {
		return
	}

	match := inlineLinkRe.FindStringSubmatchIndex(lines[row])
	if match == nil {
		m.addToast(types.ToastInfo, "No link on this line")
		return
	}

	text := lines[row][match[2]:match[3]]
	url := lines[row][match[4]:match[5]]

	anchor := position.Rect{
		X: match[0] + 2,
		Y: row + 1,
		W: match[1] - match[0],
		H: 1,
	}
	viewport := position.Rect{W: m.width, H: m.height}

	m.pending = append(m.pending, m.overlays.Push(overlay.NewLinkPopover(text, url, anchor, viewport)))
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}

// Shutdown releases background resources. Safe to call more than once.
func (m *Model) Shutdown() {
	m.tracker.Stop()
}
