package core

// View returns the frame rendered by the last FrameMsg; input between
// frames does not redraw.
func (m Model) View() string {
	return m.front
}
