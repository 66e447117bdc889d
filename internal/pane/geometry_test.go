package pane

import "testing"

func TestComputeGeometry_LeftColumnWidthFraction(t *testing.T) {
	g := ComputeGeometry(1000, 800, DefaultFractions())
	if g.Panes[0].Width != 400 {
		t.Errorf("pane1 width = %d, want 400 (L_w=0.40 of 1000)", g.Panes[0].Width)
	}
	if g.Panes[1].X != 400 || g.Panes[2].X < g.Panes[1].X {
		t.Errorf("right cluster should start at x=400, got pane2.X=%d pane3.X=%d", g.Panes[1].X, g.Panes[2].X)
	}
}

func TestComputeGeometry_RightTopSplitsTopFromBottom(t *testing.T) {
	g := ComputeGeometry(1000, 1000, DefaultFractions())
	wantTop := int(1000 * 0.617)
	if g.Panes[1].Height != wantTop || g.Panes[2].Height != wantTop {
		t.Errorf("panes 2/3 height = %d/%d, want %d", g.Panes[1].Height, g.Panes[2].Height, wantTop)
	}
	if g.Panes[3].Y != wantTop {
		t.Errorf("pane4.Y = %d, want %d", g.Panes[3].Y, wantTop)
	}
}

func TestComputeGeometry_RightHSplitDividesPane2And3(t *testing.T) {
	g := ComputeGeometry(1000, 1000, DefaultFractions())
	rightW := g.Panes[3].Width
	wantPane2W := int(float64(rightW) * 0.5)
	if g.Panes[1].Width != wantPane2W {
		t.Errorf("pane2 width = %d, want %d", g.Panes[1].Width, wantPane2W)
	}
	if g.Panes[2].X != g.Panes[1].X+g.Panes[1].Width {
		t.Errorf("pane3.X = %d, want immediately right of pane2", g.Panes[2].X)
	}
}

func TestFractions_ClampOutOfRange(t *testing.T) {
	f := Fractions{LeftWidth: 0.40, LeftTop: 1.5, RightTop: -0.2, RightHSplit: 0.5}
	clamped := f.Clamp()
	if clamped.LeftTop != 0.8 {
		t.Errorf("LeftTop = %v, want clamped to 0.8", clamped.LeftTop)
	}
	if clamped.RightTop != 0.2 {
		t.Errorf("RightTop = %v, want clamped to 0.2", clamped.RightTop)
	}
}

func TestRTopHandle_DoesNotOverlapHeaderBand(t *testing.T) {
	g := ComputeGeometry(1000, 300, Fractions{LeftWidth: 0.40, LeftTop: 0.65, RightTop: 0.21, RightHSplit: 0.5})
	if g.RTopH.Y < headerHeight {
		t.Errorf("RTopH.Y = %d, must not extend into header band (< %d)", g.RTopH.Y, headerHeight)
	}
}

func TestClampDrag_RespectsMinExtent(t *testing.T) {
	got := ClampDrag(0.01, 1000, 160)
	if got < 0.16 {
		t.Errorf("ClampDrag = %v, want >= 0.16 (160/1000)", got)
	}
	got = ClampDrag(0.99, 1000, 160)
	if got > 0.84 {
		t.Errorf("ClampDrag = %v, want <= 0.84", got)
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 5, Height: 5}
	if !r.Contains(12, 12) {
		t.Error("Contains(12,12) = false, want true")
	}
	if r.Contains(20, 20) {
		t.Error("Contains(20,20) = true, want false")
	}
	if r.Contains(15, 12) {
		t.Error("Contains(15,12) = true, want false (right edge exclusive)")
	}
}
