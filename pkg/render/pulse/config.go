package pulse

// Config holds the grid and animation constants.
type Config struct {
	CellSize          float64 `toml:"cell_size" yaml:"cell_size" json:"cell_size"`
	SquareSize        float64 `toml:"square_size" yaml:"square_size" json:"square_size"`
	ColumnProbability float64 `toml:"column_probability" yaml:"column_probability" json:"column_probability"`
	MinStack          int     `toml:"min_stack" yaml:"min_stack" json:"min_stack"`
	MaxStack          int     `toml:"max_stack" yaml:"max_stack" json:"max_stack"`
	MinBaseFraction   float64 `toml:"min_base_fraction" yaml:"min_base_fraction" json:"min_base_fraction"`
	DelayColStep      float64 `toml:"delay_col_step" yaml:"delay_col_step" json:"delay_col_step"`
	DelayRowStep      float64 `toml:"delay_row_step" yaml:"delay_row_step" json:"delay_row_step"`
	DelayPeriod       float64 `toml:"delay_period" yaml:"delay_period" json:"delay_period"`
	DurationMin       float64 `toml:"duration_min" yaml:"duration_min" json:"duration_min"`
	DurationSpread    float64 `toml:"duration_spread" yaml:"duration_spread" json:"duration_spread"`
}

// DefaultConfig returns the constants used on the page.
func DefaultConfig() Config {
	return Config{
		CellSize:          32,
		SquareSize:        10,
		ColumnProbability: 0.45,
		MinStack:          3,
		MaxStack:          7,
		MinBaseFraction:   0.4,
		DelayColStep:      0.25,
		DelayRowStep:      0.08,
		DelayPeriod:       5,
		DurationMin:       2.5,
		DurationSpread:    1.5,
	}
}
