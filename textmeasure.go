package forms

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/mattn/go-runewidth"
)

// TextMeasurer reports the display size of a text block in character
// cells. When the hint width is bounded, lines wrap at Unicode word
// boundaries; a single word wider than the hint is kept whole.
type TextMeasurer struct {
	text string
}

// NewTextMeasurer creates a Measurer for the given text.
func NewTextMeasurer(text string) *TextMeasurer {
	return &TextMeasurer{text: text}
}

// Text returns the measured content.
func (m *TextMeasurer) Text() string {
	return m.text
}

// Measure implements Measurer. The width is the widest resulting line,
// the height the line count. Explicit newlines always break.
func (m *TextMeasurer) Measure(_ *Node, hint Size) (Size, bool) {
	width, lines := 0, 0
	for _, para := range strings.Split(m.text, "\n") {
		w, h := wrapExtent(para, hint.Width)
		if w > width {
			width = w
		}
		lines += h
	}
	return Size{Width: width, Height: lines}, true
}

// wrapExtent measures one paragraph wrapped to the given cell limit,
// returning the widest line and the line count. A limit of zero or less
// disables wrapping.
func wrapExtent(s string, limit int) (width, lines int) {
	if s == "" {
		return 0, 1
	}
	if limit <= 0 {
		return runewidth.StringWidth(s), 1
	}
	cur := 0     // line extent including trailing whitespace
	content := 0 // line extent up to the last non-space token
	lines = 1
	tokens := words.FromString(s)
	for tokens.Next() {
		tok := tokens.Value()
		w := runewidth.StringWidth(tok)
		if w == 0 {
			continue
		}
		space := strings.TrimSpace(tok) == ""
		if cur > 0 && cur+w > limit {
			// Whitespace at a wrap point is swallowed, not carried over.
			if space {
				continue
			}
			if content > width {
				width = content
			}
			cur, content = 0, 0
			lines++
		}
		cur += w
		if !space {
			content = cur
		}
	}
	if content > width {
		width = content
	}
	return width, lines
}
