package forms

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// nodeConfig is the TOML shape of one node. Child tables nest under
// [[child]].
type nodeConfig struct {
	Name    string `toml:"name"`
	Left    int    `toml:"left"`
	Top     int    `toml:"top"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Margin  []int  `toml:"margin"`
	Padding []int  `toml:"padding"`
	MinSize []int  `toml:"min_size"`
	MaxSize []int  `toml:"max_size"`

	Anchor       []string `toml:"anchor"`
	Dock         string   `toml:"dock"`
	AutoSize     bool     `toml:"auto_size"`
	AutoSizeMode string   `toml:"auto_size_mode"`

	Layout        string   `toml:"layout"`
	FlowDirection string   `toml:"flow_direction"`
	WrapContents  bool     `toml:"wrap_contents"`
	FlowBreak     bool     `toml:"flow_break"`
	Rows          []string `toml:"rows"`
	Columns       []string `toml:"columns"`
	Cell          []int    `toml:"cell"`
	CellSpan      []int    `toml:"cell_span"`

	Text string `toml:"text"`

	Children []nodeConfig `toml:"child"`
}

// Load builds a node tree from TOML. The whole tree is resolved exactly
// once, after construction completes.
func Load(data []byte) (*Node, error) {
	var cfg nodeConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	root, err := buildNode(&cfg)
	if err != nil {
		return nil, err
	}
	root.PerformLayout()
	return root, nil
}

// LoadFile builds a node tree from a TOML file.
func LoadFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Load(data)
}

func buildNode(cfg *nodeConfig) (*Node, error) {
	n := New(
		WithName(cfg.Name),
		WithBounds(cfg.Left, cfg.Top, cfg.Width, cfg.Height),
	)
	n.SuspendLayout()
	defer n.ResumeLayout()

	if cfg.Width < 0 || cfg.Height < 0 {
		return nil, configErrorf(field(cfg, "size"), "negative size %dx%d", cfg.Width, cfg.Height)
	}
	e, err := parseEdges(cfg.Margin)
	if err != nil {
		return nil, configErrorf(field(cfg, "margin"), "%v", err)
	}
	n.margin = e
	if e, err = parseEdges(cfg.Padding); err != nil {
		return nil, configErrorf(field(cfg, "padding"), "%v", err)
	}
	n.padding = e
	s, err := parseSizePair(cfg.MinSize)
	if err != nil {
		return nil, configErrorf(field(cfg, "min_size"), "%v", err)
	}
	if err := n.SetMinimumSize(s); err != nil {
		return nil, err
	}
	if s, err = parseSizePair(cfg.MaxSize); err != nil {
		return nil, configErrorf(field(cfg, "max_size"), "%v", err)
	}
	if err := n.SetMaximumSize(s); err != nil {
		return nil, err
	}

	if len(cfg.Anchor) > 0 && cfg.Dock != "" && cfg.Dock != "none" {
		return nil, configErrorf(field(cfg, "anchor"), "anchor and dock are mutually exclusive")
	}
	if len(cfg.Anchor) > 0 {
		a, err := ParseAnchors(cfg.Anchor)
		if err != nil {
			return nil, err
		}
		n.SetAnchor(a)
	}
	if cfg.Dock != "" {
		d, err := ParseDock(cfg.Dock)
		if err != nil {
			return nil, err
		}
		n.SetDock(d)
	}

	if cfg.AutoSizeMode != "" {
		m, err := ParseAutoSizeMode(cfg.AutoSizeMode)
		if err != nil {
			return nil, err
		}
		if err := n.SetAutoSizeMode(m); err != nil {
			return nil, err
		}
	}
	n.SetAutoSize(cfg.AutoSize)

	if cfg.Layout != "" {
		k, err := ParseLayoutKind(cfg.Layout)
		if err != nil {
			return nil, err
		}
		n.SetLayoutKind(k)
	}
	if cfg.FlowDirection != "" {
		d, err := ParseFlowDirection(cfg.FlowDirection)
		if err != nil {
			return nil, err
		}
		n.SetFlowDirection(d)
	}
	n.SetWrapContents(cfg.WrapContents)
	n.SetFlowBreak(cfg.FlowBreak)

	if len(cfg.Rows) > 0 {
		tracks, err := parseTracks(field(cfg, "rows"), cfg.Rows)
		if err != nil {
			return nil, err
		}
		if err := n.SetRowCount(len(tracks)); err != nil {
			return nil, err
		}
		if err := n.SetRowTracks(tracks...); err != nil {
			return nil, err
		}
	}
	if len(cfg.Columns) > 0 {
		tracks, err := parseTracks(field(cfg, "columns"), cfg.Columns)
		if err != nil {
			return nil, err
		}
		if err := n.SetColumnCount(len(tracks)); err != nil {
			return nil, err
		}
		if err := n.SetColumnTracks(tracks...); err != nil {
			return nil, err
		}
	}
	if len(cfg.Cell) > 0 {
		if len(cfg.Cell) != 2 {
			return nil, configErrorf(field(cfg, "cell"), "want [column row], got %d values", len(cfg.Cell))
		}
		if err := n.SetCell(cfg.Cell[0], cfg.Cell[1]); err != nil {
			return nil, err
		}
	}
	if len(cfg.CellSpan) > 0 {
		if len(cfg.CellSpan) != 2 {
			return nil, configErrorf(field(cfg, "cell_span"), "want [columns rows], got %d values", len(cfg.CellSpan))
		}
		if err := n.SetCellSpan(cfg.CellSpan[0], cfg.CellSpan[1]); err != nil {
			return nil, err
		}
	}

	if cfg.Text != "" {
		n.SetMeasurer(NewTextMeasurer(cfg.Text))
	}

	for i := range cfg.Children {
		child, err := buildNode(&cfg.Children[i])
		if err != nil {
			return nil, err
		}
		if err := n.AddChild(child); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// field qualifies a config key with the node's name for error messages.
func field(cfg *nodeConfig, key string) string {
	if cfg.Name == "" {
		return key
	}
	return cfg.Name + "." + key
}

// parseEdges accepts 1 (all), 2 (vertical, horizontal) or 4 (top, right,
// bottom, left) values.
func parseEdges(vals []int) (Edges, error) {
	switch len(vals) {
	case 0:
		return Edges{}, nil
	case 1:
		return EdgeAll(vals[0]), nil
	case 2:
		return EdgeSymmetric(vals[0], vals[1]), nil
	case 4:
		return EdgeTRBL(vals[0], vals[1], vals[2], vals[3]), nil
	default:
		return Edges{}, fmt.Errorf("want 1, 2 or 4 values, got %d", len(vals))
	}
}

func parseSizePair(vals []int) (Size, error) {
	switch len(vals) {
	case 0:
		return Size{}, nil
	case 2:
		return Size{Width: vals[0], Height: vals[1]}, nil
	default:
		return Size{}, fmt.Errorf("want [width height], got %d values", len(vals))
	}
}

// ParseDock maps a config string to a Dock value.
func ParseDock(s string) (Dock, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return DockNone, nil
	case "top":
		return DockTop, nil
	case "bottom":
		return DockBottom, nil
	case "left":
		return DockLeft, nil
	case "right":
		return DockRight, nil
	case "fill":
		return DockFill, nil
	default:
		return DockNone, configErrorf("dock", "unknown value %q", s)
	}
}

// ParseAnchors maps config strings to an AnchorSet. An empty list means
// AnchorNone.
func ParseAnchors(names []string) (AnchorSet, error) {
	var a AnchorSet
	for _, name := range names {
		switch strings.ToLower(name) {
		case "top":
			a |= AnchorTop
		case "bottom":
			a |= AnchorBottom
		case "left":
			a |= AnchorLeft
		case "right":
			a |= AnchorRight
		default:
			return 0, configErrorf("anchor", "unknown edge %q", name)
		}
	}
	return a, nil
}

// ParseAutoSizeMode maps a config string to an AutoSizeMode.
func ParseAutoSizeMode(s string) (AutoSizeMode, error) {
	switch strings.ToLower(s) {
	case "", "grow_only":
		return GrowOnly, nil
	case "grow_and_shrink":
		return GrowAndShrink, nil
	default:
		return GrowOnly, configErrorf("auto_size_mode", "unknown value %q", s)
	}
}

// ParseLayoutKind maps a config string to a LayoutKind.
func ParseLayoutKind(s string) (LayoutKind, error) {
	switch strings.ToLower(s) {
	case "", "manual":
		return LayoutManual, nil
	case "flow":
		return LayoutFlow, nil
	case "table":
		return LayoutTable, nil
	default:
		return LayoutManual, configErrorf("layout", "unknown value %q", s)
	}
}

// ParseFlowDirection maps a config string to a FlowDirection.
func ParseFlowDirection(s string) (FlowDirection, error) {
	switch strings.ToLower(s) {
	case "", "left_to_right":
		return LeftToRight, nil
	case "top_down":
		return TopDown, nil
	case "right_to_left":
		return RightToLeft, nil
	case "bottom_up":
		return BottomUp, nil
	default:
		return LeftToRight, configErrorf("flow_direction", "unknown value %q", s)
	}
}

// ParseTrack maps one config string to a table track: "auto", a percent
// like "30%", or an absolute pixel count like "120".
func ParseTrack(s string) (Track, error) {
	t := strings.TrimSpace(strings.ToLower(s))
	switch {
	case t == "auto":
		return AutoTrack(), nil
	case strings.HasSuffix(t, "%"):
		p, err := strconv.ParseFloat(strings.TrimSuffix(t, "%"), 64)
		if err != nil || p < 0 {
			return Track{}, configErrorf("track", "invalid percent %q", s)
		}
		return PercentTrack(p), nil
	default:
		px, err := strconv.Atoi(t)
		if err != nil || px < 0 {
			return Track{}, configErrorf("track", "invalid extent %q", s)
		}
		return AbsoluteTrack(px), nil
	}
}

func parseTracks(f string, names []string) ([]Track, error) {
	tracks := make([]Track, 0, len(names))
	for _, name := range names {
		t, err := ParseTrack(name)
		if err != nil {
			return nil, configErrorf(f, "%v", err)
		}
		tracks = append(tracks, t)
	}
	return tracks, nil
}
