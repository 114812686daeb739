package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hollisbeck/vellum/internal/dismiss"
	"github.com/hollisbeck/vellum/internal/position"
	"github.com/hollisbeck/vellum/internal/registry"
)

const (
	linkPopoverWidth  = 36
	linkPopoverHeight = 5
)

// OpenLinkMsg asks the app to open a link target from the popover
type OpenLinkMsg struct {
	URL string
}

// LinkPopover previews a link's target next to the link itself. It is
// anchored to the link's cell rect and repositions itself when the
// window resizes; clicking anywhere outside dismisses it.
type LinkPopover struct {
	text     string
	url      string
	anchor   position.Rect
	viewport position.Rect
	pos      position.Position
}

// NewLinkPopover creates a popover anchored to the given link rect
func NewLinkPopover(text, url string, anchor, viewport position.Rect) *LinkPopover {
	p := &LinkPopover{
		text:     text,
		url:      url,
		anchor:   anchor,
		viewport: viewport,
	}
	p.reposition()
	return p
}

func (p *LinkPopover) reposition() {
	res, err := position.Compute(position.Request{
		Strategy: position.StrategyAnchored,
		Anchor:   &p.anchor,
		Overlay:  position.Rect{W: linkPopoverWidth, H: linkPopoverHeight},
		Viewport: p.viewport,
		Side:     position.SideBottom,
		Align:    position.AlignStart,
		Offset:   1,
	})
	if err != nil {
		return
	}
	p.pos = res.Position
}

// Pos returns where the popover should be drawn
func (p *LinkPopover) Pos() position.Position {
	return p.pos
}

// Bounds returns the popover's current cell rect
func (p *LinkPopover) Bounds() position.Rect {
	return position.Rect{
		X: p.pos.Left,
		Y: p.pos.Top,
		W: linkPopoverWidth,
		H: linkPopoverHeight,
	}
}

// Init implements tea.Model
func (p *LinkPopover) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (p *LinkPopover) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.viewport = position.Rect{W: msg.Width, H: msg.Height}
		p.reposition()
		return p, nil

	case tea.MouseMsg:
		var closed bool
		ctrl := &dismiss.Controller{
			OnOutside: func() { closed = true },
		}
		if ctrl.HandleMouse(msg, position.Rect{}, p.Bounds()) && closed {
			return p, Close()
		}
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "o":
			url := p.url
			return p, tea.Sequence(Close(), func() tea.Msg {
				return OpenLinkMsg{URL: url}
			})
		case "q":
			return p, Close()
		}
	}
	return p, nil
}

// View implements tea.Model
func (p *LinkPopover) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		itemStyle.Render(p.text),
		itemActiveStyle.Render(p.url),
		"",
		hintStyle.Render("enter open · q close"),
	)
	return frameStyle.Width(linkPopoverWidth - 2).Padding(0, 1).Render(body)
}

// Title implements Overlay
func (p *LinkPopover) Title() string {
	return "Link"
}

// Size implements Overlay
func (p *LinkPopover) Size() (int, int) {
	return linkPopoverWidth, linkPopoverHeight
}

// Layer implements Overlay
func (p *LinkPopover) Layer() registry.Layer {
	return registry.LayerPopover
}
