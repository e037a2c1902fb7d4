package forms

import (
	"errors"
	"testing"
)

func TestLoad_FullTree(t *testing.T) {
	data := []byte(`
name = "window"
width = 400
height = 300
padding = [0]

[[child]]
name = "header"
height = 50
dock = "top"

[[child]]
name = "body"
dock = "fill"
layout = "flow"
flow_direction = "left_to_right"
wrap_contents = true

[[child.child]]
name = "chip-a"
width = 100
height = 30

[[child.child]]
name = "chip-b"
width = 100
height = 30
`)

	root, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if root.Name() != "window" {
		t.Errorf("root name = %q, want window", root.Name())
	}
	if got := root.Size(); got.Width != 400 || got.Height != 300 {
		t.Errorf("root size = %v, want 400x300", got)
	}

	children := root.Children()
	if len(children) != 2 {
		t.Fatalf("root has %d children, want 2", len(children))
	}
	header, body := children[0], children[1]
	if got := header.Bounds(); got != NewRect(0, 0, 400, 50) {
		t.Errorf("header = %v, want (0,0,400,50)", got)
	}
	if got := body.Bounds(); got != NewRect(0, 50, 400, 250) {
		t.Errorf("body = %v, want (0,50,400,250)", got)
	}
	if body.LayoutKind() != LayoutFlow {
		t.Errorf("body layout = %v, want flow", body.LayoutKind())
	}

	chips := body.Children()
	if len(chips) != 2 {
		t.Fatalf("body has %d children, want 2", len(chips))
	}
	if got := chips[1].Bounds(); got != NewRect(100, 0, 100, 30) {
		t.Errorf("chip-b = %v, want (100,0,100,30)", got)
	}
}

func TestLoad_TableTree(t *testing.T) {
	data := []byte(`
name = "grid"
width = 300
height = 60
layout = "table"
rows = ["100%"]
columns = ["30%", "70%"]

[[child]]
name = "label"
width = 50
height = 20
cell = [0, 0]

[[child]]
name = "input"
cell = [1, 0]
dock = "fill"
`)

	root, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if root.RowCount() != 1 || root.ColumnCount() != 2 {
		t.Fatalf("grid = %dx%d, want 1x2", root.RowCount(), root.ColumnCount())
	}

	input := root.Children()[1]
	if got := input.Bounds(); got != NewRect(90, 0, 210, 60) {
		t.Errorf("input = %v, want (90,0,210,60)", got)
	}
}

func TestLoad_Errors(t *testing.T) {
	type tc struct {
		data string
	}

	tests := map[string]tc{
		"unknown dock": {
			data: `dock = "sideways"`,
		},
		"unknown anchor edge": {
			data: `anchor = ["center"]`,
		},
		"unknown layout": {
			data: `layout = "stack"`,
		},
		"unknown flow direction": {
			data: `flow_direction = "diagonal"`,
		},
		"unknown auto size mode": {
			data: `auto_size_mode = "sometimes"`,
		},
		"anchor and dock together": {
			data: "dock = \"top\"\nanchor = [\"left\"]",
		},
		"bad track": {
			data: "layout = \"table\"\ncolumns = [\"wide\"]",
		},
		"negative track": {
			data: "layout = \"table\"\ncolumns = [\"-20\"]",
		},
		"bad cell arity": {
			data: `cell = [1]`,
		},
		"cell outside grid": {
			data: `
layout = "table"
rows = ["100%"]
columns = ["50%", "50%"]

[[child]]
cell = [5, 0]
`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load([]byte(tt.data))
			if err == nil {
				t.Fatal("Load should fail")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoad_MalformedTOML(t *testing.T) {
	_, err := Load([]byte(`width = `))
	if err == nil {
		t.Fatal("Load should fail on malformed TOML")
	}
}

func TestParseTrack(t *testing.T) {
	type tc struct {
		in      string
		want    Track
		wantErr bool
	}

	tests := map[string]tc{
		"auto":     {in: "auto", want: AutoTrack()},
		"percent":  {in: "30%", want: PercentTrack(30)},
		"absolute": {in: "120", want: AbsoluteTrack(120)},
		"spaces":   {in: " 50% ", want: PercentTrack(50)},
		"garbage":  {in: "wide", wantErr: true},
		"negative": {in: "-10", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseTrack(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseTrack(%q) should fail", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTrack(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseTrack(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
