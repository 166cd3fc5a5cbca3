package procgraph

// Levels used by the default diagram: events on top, data and models in the
// middle rows, the player-facing surface at the bottom.
const (
	LevelTop    = "top"
	LevelMid    = "mid"
	LevelMid2   = "mid2"
	LevelBottom = "bottom"
)

// DefaultNodes returns the ten nodes of the issue 01 diagram.
func DefaultNodes() []Node {
	return []Node{
		{ID: "igromir", X: 40, Y: 26, Label: "ИГРОМИР 2025", Level: LevelTop},
		{ID: "brand", X: 120, Y: 18, Label: "ЦИФРОВОЙ КРИМИНАЛИСТ", Level: LevelTop},
		{ID: "snejinka", X: 200, Y: 26, Label: "СТАНЦИЯ «СНЕЖИНКА»", Level: LevelTop},
		{ID: "audio", X: 40, Y: 60, Label: "АУДИО", Level: LevelMid},
		{ID: "text", X: 118, Y: 54, Label: "ТЕКСТ", Level: LevelMid},
		{ID: "meta", X: 196, Y: 60, Label: "МЕТАДАННЫЕ", Level: LevelMid},
		{ID: "graphs", X: 70, Y: 90, Label: "ГРАФ СВЯЗЕЙ", Level: LevelMid2},
		{ID: "spectra", X: 150, Y: 90, Label: "СПЕКТРОГРАММА", Level: LevelMid2},
		{ID: "ui", X: 70, Y: 122, Label: "ИНТЕРФЕЙС ИГРОКА", Level: LevelBottom},
		{ID: "dossier", X: 150, Y: 122, Label: "ДОСЬЕ / СЦЕНА 01", Level: LevelBottom},
	}
}

// DefaultEdges returns the fifteen connectors of the issue 01 diagram.
func DefaultEdges() []Edge {
	return []Edge{
		{"igromir", "audio"},
		{"igromir", "text"},
		{"brand", "audio"},
		{"brand", "text"},
		{"brand", "meta"},
		{"snejinka", "meta"},
		{"audio", "graphs"},
		{"text", "graphs"},
		{"text", "spectra"},
		{"meta", "graphs"},
		{"meta", "spectra"},
		{"graphs", "ui"},
		{"spectra", "dossier"},
		{"graphs", "dossier"},
		{"ui", "dossier"},
	}
}
