package forms

import (
	"errors"
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	n := New()

	if n.Anchor() != DefaultAnchor {
		t.Errorf("Anchor = %v, want %v", n.Anchor(), DefaultAnchor)
	}
	if n.Dock() != DockNone {
		t.Errorf("Dock = %v, want %v", n.Dock(), DockNone)
	}
	if n.AutoSize() {
		t.Error("AutoSize should default to false")
	}
	if n.AutoSizeMode() != GrowOnly {
		t.Errorf("AutoSizeMode = %v, want GrowOnly", n.AutoSizeMode())
	}
	if n.LayoutKind() != LayoutManual {
		t.Errorf("LayoutKind = %v, want LayoutManual", n.LayoutKind())
	}
	if !n.Bounds().IsEmpty() {
		t.Errorf("Bounds = %v, want empty", n.Bounds())
	}
	if cell := n.Cell(); cell.ColumnSpan != 1 || cell.RowSpan != 1 {
		t.Errorf("Cell spans = %d,%d, want 1,1", cell.ColumnSpan, cell.RowSpan)
	}
}

func TestNode_GeometrySetters(t *testing.T) {
	n := New(WithBounds(10, 20, 100, 50))

	n.SetLeft(15)
	n.SetTop(25)
	if got := n.Location(); got.X != 15 || got.Y != 25 {
		t.Errorf("Location = %v, want (15, 25)", got)
	}

	if err := n.SetWidth(120); err != nil {
		t.Fatalf("SetWidth: %v", err)
	}
	if err := n.SetHeight(60); err != nil {
		t.Fatalf("SetHeight: %v", err)
	}
	if got := n.Size(); got.Width != 120 || got.Height != 60 {
		t.Errorf("Size = %v, want 120x60", got)
	}

	if err := n.SetBounds(0, 0, 30, 40); err != nil {
		t.Fatalf("SetBounds: %v", err)
	}
	if got := n.Bounds(); got != NewRect(0, 0, 30, 40) {
		t.Errorf("Bounds = %v, want (0,0,30,40)", got)
	}
}

func TestNode_NegativeSizeRejected(t *testing.T) {
	n := New(WithSize(100, 50))

	if err := n.SetWidth(-1); err == nil {
		t.Fatal("SetWidth(-1) should fail")
	} else if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
	}
	if err := n.SetSize(10, -5); err == nil {
		t.Fatal("SetSize with negative height should fail")
	}

	// Last-good geometry is preserved.
	if got := n.Size(); got.Width != 100 || got.Height != 50 {
		t.Errorf("Size after rejected mutations = %v, want 100x50", got)
	}
}

func TestNode_ConstraintClampsAssignment(t *testing.T) {
	type tc struct {
		min, max     Size
		set          Size
		wantW, wantH int
	}

	tests := map[string]tc{
		"below minimum": {
			min:   Size{Width: 50, Height: 20},
			set:   Size{Width: 10, Height: 10},
			wantW: 50, wantH: 20,
		},
		"above maximum": {
			max:   Size{Width: 200, Height: 100},
			set:   Size{Width: 500, Height: 400},
			wantW: 200, wantH: 100,
		},
		"min wins over max": {
			min:   Size{Width: 80, Height: 0},
			max:   Size{Width: 40, Height: 0},
			set:   Size{Width: 60, Height: 10},
			wantW: 80, wantH: 10,
		},
		"zero max axis is unbounded": {
			max:   Size{Width: 0, Height: 50},
			set:   Size{Width: 900, Height: 90},
			wantW: 900, wantH: 50,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			n := New(WithMinimumSize(tt.min.Width, tt.min.Height), WithMaximumSize(tt.max.Width, tt.max.Height))
			if err := n.SetSize(tt.set.Width, tt.set.Height); err != nil {
				t.Fatalf("SetSize: %v", err)
			}
			if got := n.Size(); got.Width != tt.wantW || got.Height != tt.wantH {
				t.Errorf("Size = %v, want %dx%d", got, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestNode_SetMinimumSizeReclamps(t *testing.T) {
	n := New(WithSize(30, 30))
	if err := n.SetMinimumSize(Size{Width: 50, Height: 40}); err != nil {
		t.Fatalf("SetMinimumSize: %v", err)
	}
	if got := n.Size(); got.Width != 50 || got.Height != 40 {
		t.Errorf("Size after minimum raise = %v, want 50x40", got)
	}
	if err := n.SetMinimumSize(Size{Width: -1, Height: 0}); err == nil {
		t.Error("negative minimum should fail")
	}
}

func TestNode_DockAndAnchorAreExclusive(t *testing.T) {
	n := New(WithAnchor(AnchorTop | AnchorRight))

	n.SetDock(DockBottom)
	if n.Anchor() != DefaultAnchor {
		t.Errorf("Anchor after SetDock = %v, want default", n.Anchor())
	}
	if n.Dock() != DockBottom {
		t.Errorf("Dock = %v, want DockBottom", n.Dock())
	}

	n.SetAnchor(AnchorLeft | AnchorBottom)
	if n.Dock() != DockNone {
		t.Errorf("Dock after SetAnchor = %v, want DockNone", n.Dock())
	}
}

func TestNode_AutoSizeMarkLifecycle(t *testing.T) {
	n := New(WithSize(100, 40))

	if _, ok := n.OriginalSize(); ok {
		t.Fatal("mark should not exist before auto-sizing")
	}

	n.SetAutoSize(true)
	mark, ok := n.OriginalSize()
	if !ok {
		t.Fatal("enabling GrowOnly auto-size should establish the mark")
	}
	if mark.Width != 100 || mark.Height != 40 {
		t.Errorf("mark = %v, want 100x40", mark)
	}

	if err := n.SetAutoSizeMode(GrowAndShrink); err != nil {
		t.Fatalf("SetAutoSizeMode: %v", err)
	}
	if _, ok := n.OriginalSize(); ok {
		t.Error("GrowAndShrink should clear the mark")
	}

	if err := n.SetAutoSizeMode(GrowOnly); err != nil {
		t.Fatalf("SetAutoSizeMode: %v", err)
	}
	if _, ok := n.OriginalSize(); !ok {
		t.Error("returning to GrowOnly should re-establish the mark")
	}

	n.SetAutoSize(false)
	if _, ok := n.OriginalSize(); ok {
		t.Error("disabling auto-size should clear the mark")
	}
}

func TestNode_LockedAutoSizeMode(t *testing.T) {
	n := New(WithLockedAutoSizeMode(GrowAndShrink))

	if !n.AutoSizeModeLocked() {
		t.Fatal("mode should be locked")
	}
	err := n.SetAutoSizeMode(GrowOnly)
	if err == nil {
		t.Fatal("SetAutoSizeMode on a locked node should fail")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
	}
	if n.AutoSizeMode() != GrowAndShrink {
		t.Errorf("mode changed to %v despite lock", n.AutoSizeMode())
	}
}

func TestNode_TrackValidation(t *testing.T) {
	n := New(WithTable(2, 2))

	if err := n.SetColumnTracks(AbsoluteTrack(100), PercentTrack(100)); err != nil {
		t.Fatalf("valid tracks rejected: %v", err)
	}
	if err := n.SetColumnTracks(Track{Kind: SizeAbsolute, Value: -5}); err == nil {
		t.Error("negative absolute track should fail")
	}
	if err := n.SetRowTracks(PercentTrack(0), PercentTrack(0)); err == nil {
		t.Error("all-zero percent tracks should fail")
	}
}

func TestNode_CellValidation(t *testing.T) {
	table := New(WithSize(200, 100), WithTable(2, 3))
	child := New(WithSize(10, 10), WithCell(1, 1))
	if err := table.AddChild(child); err != nil {
		t.Fatalf("AddChild: %v", err)
	}

	if err := child.SetCell(5, 0); err == nil {
		t.Error("column outside declared grid should fail")
	}
	if err := child.SetCell(-1, 0); err == nil {
		t.Error("negative cell should fail")
	}
	if err := child.SetCellSpan(0, 1); err == nil {
		t.Error("zero span should fail")
	}
	if err := child.SetCell(2, 1); err != nil {
		t.Errorf("valid cell rejected: %v", err)
	}

	if err := table.SetColumnCount(2); err == nil {
		t.Error("shrinking column count below an occupied column should fail")
	}
	if err := table.SetRowCount(2); err != nil {
		t.Errorf("shrinking to a still-valid row count failed: %v", err)
	}
}

func TestNode_ClientRect(t *testing.T) {
	n := New(WithBounds(40, 30, 200, 100), WithPadding(EdgeTRBL(5, 10, 15, 20)))

	got := n.ClientRect()
	want := NewRect(20, 5, 170, 80)
	if got != want {
		t.Errorf("ClientRect = %v, want %v", got, want)
	}
}

func TestNode_AbsoluteBounds(t *testing.T) {
	root := New(WithSize(400, 300))
	mid := New(WithBounds(10, 20, 200, 150))
	leaf := New(WithBounds(5, 5, 50, 40))
	if err := root.AddChild(mid); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if err := mid.AddChild(leaf); err != nil {
		t.Fatalf("AddChild: %v", err)
	}

	got := leaf.AbsoluteBounds()
	want := NewRect(15, 25, 50, 40)
	if got != want {
		t.Errorf("AbsoluteBounds = %v, want %v", got, want)
	}
}

func TestNode_VisibleBounds(t *testing.T) {
	root := New(WithName("root"), WithSize(100, 100), WithPadding(EdgeAll(10)))
	panel := New(WithName("panel"), WithBounds(20, 20, 60, 60))
	child := New(WithName("child"), WithBounds(40, -10, 40, 30))
	if err := root.AddChild(panel); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if err := panel.AddChild(child); err != nil {
		t.Fatalf("AddChild: %v", err)
	}

	// The child overhangs the panel's top and right edges; only the part
	// inside every ancestor's client area remains.
	if got := child.VisibleBounds(); got != NewRect(60, 20, 20, 20) {
		t.Errorf("VisibleBounds = %v, want (60,20,20,20)", got)
	}
	if got := panel.VisibleBounds(); got != NewRect(20, 20, 60, 60) {
		t.Errorf("panel VisibleBounds = %v, want (20,20,60,60)", got)
	}
}
