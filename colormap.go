package tmtheme

// ColorMap interns hex color strings to small integer ids. Id 0 is reserved
// for "not set / inherit"; real ids start at 1 in first-seen order. Built
// once during theme resolution, read-only afterwards.
type ColorMap struct {
	lastColorID int
	id2color    []string
	color2id    map[string]int
}

// NewColorMap creates a color map, optionally pre-seeded so the given colors
// occupy the lowest ids in order.
func NewColorMap(initial []string) *ColorMap {
	m := &ColorMap{
		id2color: []string{""}, // index 0 is the unset sentinel
		color2id: make(map[string]int),
	}
	for _, color := range initial {
		m.GetID(color)
	}
	return m
}

// GetID returns the id for color, assigning the next unused id if the color
// has not been seen before. The empty string maps to 0.
func (m *ColorMap) GetID(color string) int {
	if color == "" {
		return 0
	}
	if id, ok := m.color2id[color]; ok {
		return id
	}
	m.lastColorID++
	m.color2id[color] = m.lastColorID
	m.id2color = append(m.id2color, color)
	return m.lastColorID
}

// GetColor returns the color for id, or an empty string for id 0 and ids
// that were never assigned.
func (m *ColorMap) GetColor(id int) string {
	if id <= 0 || id >= len(m.id2color) {
		return ""
	}
	return m.id2color[id]
}

// Colors returns the interned colors ordered by id, starting at id 1.
func (m *ColorMap) Colors() []string {
	colors := make([]string, len(m.id2color)-1)
	copy(colors, m.id2color[1:])
	return colors
}
