package procgraph

// Config holds the sizing and canvas constants of the process graph.
type Config struct {
	FontSize    float64 `toml:"font_size" yaml:"font_size" json:"font_size"`
	PaddingX    float64 `toml:"padding_x" yaml:"padding_x" json:"padding_x"`
	PaddingY    float64 `toml:"padding_y" yaml:"padding_y" json:"padding_y"`
	CharWidth   float64 `toml:"char_width" yaml:"char_width" json:"char_width"`
	LabelOffset float64 `toml:"label_offset" yaml:"label_offset" json:"label_offset"`

	Width  float64 `toml:"width" yaml:"width" json:"width"`
	Height float64 `toml:"height" yaml:"height" json:"height"`

	Caption  string  `toml:"caption" yaml:"caption" json:"caption"`
	CaptionX float64 `toml:"caption_x" yaml:"caption_x" json:"caption_x"`
	CaptionY float64 `toml:"caption_y" yaml:"caption_y" json:"caption_y"`

	// GuideRows and GuideCols are the y and x positions of the guide lines.
	GuideRows []float64 `toml:"guide_rows" yaml:"guide_rows" json:"guide_rows"`
	GuideCols []float64 `toml:"guide_cols" yaml:"guide_cols" json:"guide_cols"`
}

const (
	DefaultFontSize    = 6.0
	DefaultPaddingX    = 4.0
	DefaultPaddingY    = 2.0
	DefaultCharWidth   = 3.1
	DefaultLabelOffset = 2.0
	DefaultWidth       = 240.0
	DefaultHeight      = 150.0
	DefaultCaption     = "ВЫПУСК 01 · КАРТА СВЯЗЕЙ"
)

// DefaultConfig returns the constants of the issue 01 diagram.
func DefaultConfig() Config {
	return Config{
		FontSize:    DefaultFontSize,
		PaddingX:    DefaultPaddingX,
		PaddingY:    DefaultPaddingY,
		CharWidth:   DefaultCharWidth,
		LabelOffset: DefaultLabelOffset,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Caption:     DefaultCaption,
		CaptionX:    DefaultWidth / 2,
		CaptionY:    146,
		GuideRows:   []float64{40, 82, 124},
		GuideCols:   []float64{40, 120, 200},
	}
}
