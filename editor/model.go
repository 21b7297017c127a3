package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/emojicode/buffer"
	"github.com/iw2rmb/emojicode/shortcode"
)

// Model is a Bubble Tea component editing a buffer with emoji shortcode
// support.
type Model struct {
	cfg      Config
	buf      *buffer.Buffer
	resolver *shortcode.Resolver

	focused bool

	viewport viewport.Model

	completion CompletionState
	// forced is set by the trigger key and lowers the minimum query to zero
	// until the open query goes away.
	forced bool
	// dismissed suppresses the popup for the query anchored at
	// dismissedAnchor.
	dismissed       bool
	dismissedAnchor buffer.Pos

	mouseDragging bool

	lastBufVersion uint64
	lastCursor     buffer.Pos
	lastEmitted    uint64
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		resolver: shortcode.NewResolver(cfg.Table),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Resolver() *shortcode.Resolver { return m.resolver }

// Value returns the document text.
func (m Model) Value() string { return m.buf.Text() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.completion = CompletionState{}
		m.forced = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// CompletionState returns a copy of the popup state.
func (m Model) CompletionState() CompletionState {
	return cloneCompletionState(m.completion)
}

// ClearCompletion hides the popup until the open query is closed or a new
// one starts elsewhere.
func (m Model) ClearCompletion() Model {
	m.dismissCompletion()
	return m
}

func (m Model) View() string {
	base := m.viewport.View()
	if popup, ok := m.completionPopupRender(base); ok {
		return popup
	}
	return base
}

// syncFromBuffer picks up mutations made through Buffer() by the host.
func (m *Model) syncFromBuffer() (cursorChanged bool) {
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return false
	}
	cursorChanged = cur != m.lastCursor
	m.lastBufVersion = ver
	m.lastCursor = cur
	m.rebuildContent()
	return cursorChanged
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	cur := m.buf.Cursor()
	h := m.visibleRowCount()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if cur.Row < y {
		m.viewport.SetYOffset(cur.Row)
		return
	}
	if cur.Row >= y+h {
		m.viewport.SetYOffset(cur.Row - h + 1)
	}
}

func (m Model) visibleRowCount() int {
	return m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
}

// emitChange reports the buffer's last change once.
func (m *Model) emitChange() {
	ch, ok := m.buf.LastChange()
	if !ok || ch.VersionAfter <= m.lastEmitted {
		return
	}
	m.lastEmitted = ch.VersionAfter
	if m.cfg.OnChange == nil {
		return
	}
	m.cfg.OnChange(ChangeEvent{
		Version: ch.VersionAfter,
		Cursor:  ch.CursorAfter,
		Source:  ch.Source,
		Text:    m.buf.Text(),
		Edits:   ch.AppliedEdits,
	})
}
