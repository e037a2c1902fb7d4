package forms

import "testing"

// Builds a realistic form: docked header and status bar, a left table of
// labelled inputs, and a wrapping button row, then resizes the window and
// checks that every region follows.
func TestIntegration_FormResize(t *testing.T) {
	window := New(WithName("window"), WithSize(400, 300))

	header := New(WithName("header"), WithSize(0, 40), WithDock(DockTop))
	status := New(WithName("status"), WithSize(0, 20), WithDock(DockBottom))
	body := New(WithName("body"), WithBounds(0, 40, 400, 240), WithDock(DockFill))

	grid := New(
		WithName("grid"),
		WithBounds(10, 10, 280, 100),
		WithAnchor(AnchorTop|AnchorLeft|AnchorRight),
		WithTable(2, 2),
		WithColumnTracks(AbsoluteTrack(80), PercentTrack(100)),
		WithRowTracks(PercentTrack(50), PercentTrack(50)),
	)
	nameLabel := New(WithName("name-label"), WithSize(60, 20), WithCell(0, 0))
	nameInput := New(WithName("name-input"), WithCell(1, 0), WithDock(DockFill), WithMargin(EdgeAll(2)))
	mailLabel := New(WithName("mail-label"), WithSize(60, 20), WithCell(0, 1))
	mailInput := New(WithName("mail-input"), WithCell(1, 1), WithDock(DockFill), WithMargin(EdgeAll(2)))

	buttons := New(
		WithName("buttons"),
		WithBounds(10, 120, 280, 60),
		WithAnchor(AnchorBottom|AnchorLeft|AnchorRight),
		WithFlow(LeftToRight, true),
	)
	ok := New(WithName("ok"), WithSize(90, 24), WithMargin(EdgeAll(2)))
	cancel := New(WithName("cancel"), WithSize(90, 24), WithMargin(EdgeAll(2)))
	apply := New(WithName("apply"), WithSize(90, 24), WithMargin(EdgeAll(2)))

	window.SuspendLayout()
	if err := grid.AddChild(nameLabel, nameInput, mailLabel, mailInput); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if err := buttons.AddChild(ok, cancel, apply); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if err := body.AddChild(grid, buttons); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if err := window.AddChild(header, status, body); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	window.ResumeLayout()

	// Initial frame.
	if got := body.Bounds(); got != NewRect(0, 40, 400, 240) {
		t.Fatalf("body = %v, want (0,40,400,240)", got)
	}
	if got := nameInput.Bounds(); got != NewRect(82, 2, 196, 46) {
		t.Errorf("name-input = %v, want (82,2,196,46)", got)
	}

	// Wrapped: three 94-wide outer extents do not fit in 280.
	if got := ok.Bounds(); got != NewRect(2, 2, 90, 24) {
		t.Errorf("ok = %v, want (2,2,90,24)", got)
	}
	if got := apply.Bounds(); got != NewRect(2, 30, 90, 24) {
		t.Errorf("apply = %v, want wrapped to (2,30,90,24)", got)
	}

	// Grow the window: docked regions restretch, the anchored grid widens,
	// the buttons row keeps its bottom distance and all three fit one line.
	if err := window.SetBounds(0, 0, 600, 400); err != nil {
		t.Fatalf("SetBounds: %v", err)
	}

	if got := body.Bounds(); got != NewRect(0, 40, 600, 340) {
		t.Errorf("body = %v, want (0,40,600,340)", got)
	}
	if got := status.Bounds(); got != NewRect(0, 380, 600, 20) {
		t.Errorf("status = %v, want (0,380,600,20)", got)
	}
	if got := grid.Bounds(); got != NewRect(10, 10, 480, 100) {
		t.Errorf("grid = %v, want (10,10,480,100)", got)
	}
	if got := nameInput.Bounds(); got != NewRect(82, 2, 396, 46) {
		t.Errorf("name-input = %v, want (82,2,396,46)", got)
	}
	if got := buttons.Top(); got != 220 {
		t.Errorf("buttons top = %d, want 220", got)
	}
	if got := apply.Bounds(); got != NewRect(190, 2, 90, 24) {
		t.Errorf("apply = %v, want same line at (190,2,90,24)", got)
	}
}
