package forms

import "testing"

func TestTextMeasurer_Measure(t *testing.T) {
	type tc struct {
		text string
		hint Size
		want Size
	}

	tests := map[string]tc{
		"single line unbounded": {
			text: "hello world",
			want: Size{Width: 11, Height: 1},
		},
		"empty text": {
			text: "",
			want: Size{Width: 0, Height: 1},
		},
		"explicit newlines": {
			text: "one\ntwo\nthree",
			want: Size{Width: 5, Height: 3},
		},
		"wraps at word boundary": {
			text: "hello world",
			hint: Size{Width: 6},
			want: Size{Width: 5, Height: 2},
		},
		"word wider than hint kept whole": {
			text: "a incomprehensible b",
			hint: Size{Width: 10},
			want: Size{Width: 16, Height: 3},
		},
		"wide runes count double": {
			text: "日本語",
			want: Size{Width: 6, Height: 1},
		},
		"newline inside wrapped paragraphs": {
			text: "aa bb\ncc",
			hint: Size{Width: 3},
			want: Size{Width: 2, Height: 3},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := NewTextMeasurer(tt.text)
			got, ok := m.Measure(nil, tt.hint)
			if !ok {
				t.Fatal("Measure reported no measurement available")
			}
			if got != tt.want {
				t.Errorf("Measure(%q, width %d) = %v, want %v", tt.text, tt.hint.Width, got, tt.want)
			}
		})
	}
}

func TestTextMeasurer_DrivesAutoSize(t *testing.T) {
	root := New(WithSize(80, 10))
	label := New(
		WithLocation(2, 2),
		WithAutoSize(), WithAutoSizeMode(GrowAndShrink),
		WithText("status: ok"),
	)
	if err := root.AddChild(label); err != nil {
		t.Fatalf("AddChild: %v", err)
	}

	if got := label.Size(); got.Width != 10 || got.Height != 1 {
		t.Errorf("label = %v, want 10x1", got)
	}
}
