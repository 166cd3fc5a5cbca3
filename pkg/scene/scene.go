package scene

// AnchorPrefix is prepended to a scene ID to form its section ID.
const AnchorPrefix = "scene-"

// Decor is the decorative variant a panel renders.
type Decor int

const (
	DecorCode          Decor = iota // code listing only
	DecorGraph                      // process graph instead of the code listing
	DecorSpectral                   // code listing plus spectral panel
	DecorGraphSpectral              // process graph plus spectral panel
)

func (d Decor) String() string {
	switch d {
	case DecorGraph:
		return "graph"
	case DecorSpectral:
		return "spectral"
	case DecorGraphSpectral:
		return "graph+spectral"
	default:
		return "code"
	}
}

// Scene is one full-viewport panel of the comic. Empty optional strings
// mean the field is absent.
type Scene struct {
	ID          string `toml:"id" yaml:"id" json:"id"`
	Label       string `toml:"label" yaml:"label" json:"label"`
	Title       string `toml:"title" yaml:"title" json:"title"`
	Subtitle    string `toml:"subtitle,omitempty" yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	Description string `toml:"description,omitempty" yaml:"description,omitempty" json:"description,omitempty"`
	Code        string `toml:"code,omitempty" yaml:"code,omitempty" json:"code,omitempty"`
	Explanation string `toml:"explanation,omitempty" yaml:"explanation,omitempty" json:"explanation,omitempty"`
	Image       string `toml:"image,omitempty" yaml:"image,omitempty" json:"image,omitempty"`

	ProcessGraph bool `toml:"process_graph,omitempty" yaml:"process_graph,omitempty" json:"process_graph,omitempty"`
	Spectral     bool `toml:"spectral,omitempty" yaml:"spectral,omitempty" json:"spectral,omitempty"`
}

func (s Scene) HasSubtitle() bool    { return s.Subtitle != "" }
func (s Scene) HasDescription() bool { return s.Description != "" }
func (s Scene) HasCode() bool        { return s.Code != "" }
func (s Scene) HasExplanation() bool { return s.Explanation != "" }
func (s Scene) HasImage() bool       { return s.Image != "" }

// Decor derives the decorative variant from the scene flags.
func (s Scene) Decor() Decor {
	switch {
	case s.ProcessGraph && s.Spectral:
		return DecorGraphSpectral
	case s.ProcessGraph:
		return DecorGraph
	case s.Spectral:
		return DecorSpectral
	default:
		return DecorCode
	}
}

// AnchorID returns the id attribute of the scene's section.
func (s Scene) AnchorID() string { return AnchorPrefix + s.ID }

// Fragment returns the in-page link to the scene's section.
func (s Scene) Fragment() string { return "#" + s.AnchorID() }
