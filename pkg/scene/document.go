package scene

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/comiccon2025/comicpage/pkg/errors"
	"github.com/comiccon2025/comicpage/pkg/render/procgraph"
	"github.com/comiccon2025/comicpage/pkg/render/pulse"
	"github.com/comiccon2025/comicpage/pkg/render/spectral"
)

// Format is a catalog file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown catalog format %q (want .toml, .yaml, .yml or .json)", filepath.Ext(path))
}

// Document is a catalog together with the generator inputs it overrides.
type Document struct {
	Catalog *Catalog

	Nodes       []procgraph.Node
	Edges       []procgraph.Edge
	GraphConfig procgraph.Config

	Heights        []float64
	Waveform       bool
	SpectralConfig spectral.Config

	PulseConfig pulse.Config
}

// DefaultDocument returns the built-in issue 01 document.
func DefaultDocument() *Document {
	return &Document{
		Catalog:        DefaultCatalog(),
		Nodes:          procgraph.DefaultNodes(),
		Edges:          procgraph.DefaultEdges(),
		GraphConfig:    procgraph.DefaultConfig(),
		Heights:        spectral.DefaultHeights(),
		SpectralConfig: spectral.DefaultConfig(),
		PulseConfig:    pulse.DefaultConfig(),
	}
}

// GraphLayout builds the document's process graph.
func (d *Document) GraphLayout() procgraph.Layout {
	return procgraph.Build(d.Nodes, d.Edges, d.GraphConfig)
}

// SpectralPanel builds the document's spectrum, with its waveform if enabled.
func (d *Document) SpectralPanel() spectral.Panel {
	p := spectral.Build(d.Heights, d.SpectralConfig)
	if d.Waveform {
		p = p.WithWaveform(spectral.Envelope(p))
	}
	return p
}

type fileGraph struct {
	Nodes []procgraph.Node `toml:"nodes" yaml:"nodes" json:"nodes"`
	Edges []procgraph.Edge `toml:"edges" yaml:"edges" json:"edges"`
}

type fileSpectral struct {
	Heights  []float64       `toml:"heights,omitempty" yaml:"heights,omitempty" json:"heights,omitempty"`
	Waveform bool            `toml:"waveform,omitempty" yaml:"waveform,omitempty" json:"waveform,omitempty"`
	Geometry spectral.Config `toml:"geometry" yaml:"geometry" json:"geometry"`
}

type file struct {
	Scenes     []Scene          `toml:"scenes" yaml:"scenes" json:"scenes"`
	Graph      *fileGraph       `toml:"graph,omitempty" yaml:"graph,omitempty" json:"graph,omitempty"`
	GraphStyle procgraph.Config `toml:"graph_style" yaml:"graph_style" json:"graph_style"`
	Spectral   fileSpectral     `toml:"spectral" yaml:"spectral" json:"spectral"`
	Pulse      pulse.Config     `toml:"pulse" yaml:"pulse" json:"pulse"`
}

// Load reads a catalog file, choosing the decoder by extension.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "catalog %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read catalog %s", path)
	}
	doc, err := Decode(data, format)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "catalog %s", path)
	}
	return doc, nil
}

// Decode parses a catalog. Unknown keys are rejected so typos surface.
// Generator constants start from the defaults and only keys present in the
// file replace them, so an explicit 0 is kept.
func Decode(data []byte, format Format) (*Document, error) {
	def := DefaultDocument()
	f := file{
		GraphStyle: def.GraphConfig,
		Spectral:   fileSpectral{Geometry: def.SpectralConfig},
		Pulse:      def.PulseConfig,
	}
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "decode toml")
		}
		if extra := md.Undecoded(); len(extra) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidCatalog, "unknown key %q", extra[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "decode yaml")
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "decode json")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown catalog format %q", format)
	}
	return f.document()
}

func (f file) document() (*Document, error) {
	if len(f.Scenes) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidCatalog, "catalog has no scenes")
	}
	cat, err := NewCatalog(f.Scenes...)
	if err != nil {
		return nil, err
	}

	def := DefaultDocument()
	doc := &Document{
		Catalog:        cat,
		Nodes:          def.Nodes,
		Edges:          def.Edges,
		GraphConfig:    f.GraphStyle,
		Heights:        def.Heights,
		Waveform:       f.Spectral.Waveform,
		SpectralConfig: f.Spectral.Geometry,
		PulseConfig:    f.Pulse,
	}
	if f.Graph != nil {
		doc.Nodes, doc.Edges = f.Graph.Nodes, f.Graph.Edges
	}
	if len(f.Spectral.Heights) > 0 {
		doc.Heights = f.Spectral.Heights
	}
	return doc, nil
}

// Encode writes the document in format. Decoding the result yields an
// equivalent document.
func (d *Document) Encode(format Format) ([]byte, error) {
	f := file{
		Scenes:     d.Catalog.Scenes(),
		Graph:      &fileGraph{Nodes: d.Nodes, Edges: d.Edges},
		GraphStyle: d.GraphConfig,
		Spectral:   fileSpectral{Heights: d.Heights, Waveform: d.Waveform, Geometry: d.SpectralConfig},
		Pulse:      d.PulseConfig,
	}

	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(f); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode toml")
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode yaml")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode yaml")
		}
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(f); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode json")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown catalog format %q", format)
	}
	return buf.Bytes(), nil
}
