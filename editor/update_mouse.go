package editor

import tea "github.com/charmbracelet/bubbletea"

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if isWheelMouse(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if !m.focused {
		return m, nil
	}

	// Left button press places the cursor; dragging keeps it under the pointer.
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.mouseInBounds(msg.X, msg.Y) {
			return m, nil
		}
		m.mouseDragging = true
	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, nil
		}
	case tea.MouseActionRelease:
		m.mouseDragging = false
		return m, nil
	default:
		return m, nil
	}

	x, y := m.clampMouseToBounds(msg.X, msg.Y)
	m.buf.SetCursor(m.screenToDocPos(x, y))
	m.refreshCompletion()
	m.syncFromBuffer()
	return m, nil
}

func isWheelMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		x = clamp(x, 0, m.viewport.Width-1)
	}
	if m.viewport.Height > 0 {
		y = clamp(y, 0, m.viewport.Height-1)
	}
	return x, y
}
