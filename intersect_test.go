package draft

import (
	"math"
	"testing"
)

func TestIntersectSegmentLine(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Point // segment
		l1, l2 Point // infinite line
		wantT  float64
		wantAt Point
		wantOK bool
	}{
		{
			name: "perpendicular crossing at midpoint",
			a:    Pt(0, 0), b: Pt(100, 0),
			l1: Pt(50, -10), l2: Pt(50, 10),
			wantT: 0.5, wantAt: Pt(50, 0), wantOK: true,
		},
		{
			name: "line extends beyond its drawn endpoints",
			a:    Pt(0, 0), b: Pt(100, 0),
			l1: Pt(25, 100), l2: Pt(25, 200),
			wantT: 0.25, wantAt: Pt(25, 0), wantOK: true,
		},
		{
			name: "diagonal 3-4-5 crossing",
			a:    Pt(0, 0), b: Pt(4000, 3000),
			l1: Pt(1600, 0), l2: Pt(1600, 1), // vertical line at x=1600
			wantT: 0.4, wantAt: Pt(1600, 1200), wantOK: true,
		},
		{
			name: "parallel lines",
			a:    Pt(0, 0), b: Pt(100, 0),
			l1: Pt(0, 10), l2: Pt(100, 10),
			wantOK: false,
		},
		{
			name: "collinear counts as parallel",
			a:    Pt(0, 0), b: Pt(100, 0),
			l1: Pt(200, 0), l2: Pt(300, 0),
			wantOK: false,
		},
		{
			name: "crossing beyond segment end",
			a:    Pt(0, 0), b: Pt(100, 0),
			l1: Pt(150, -10), l2: Pt(150, 10),
			wantOK: false,
		},
		{
			name: "crossing before segment start",
			a:    Pt(0, 0), b: Pt(100, 0),
			l1: Pt(-50, -10), l2: Pt(-50, 10),
			wantOK: false,
		},
		{
			name: "slightly past endpoint clamps to 1",
			a:    Pt(0, 0), b: Pt(100, 0),
			l1: Pt(100.05, -10), l2: Pt(100.05, 10), // t = 1.0005, within slack
			wantT: 1, wantAt: Pt(100, 0), wantOK: true,
		},
		{
			name: "slightly before start clamps to 0",
			a:    Pt(0, 0), b: Pt(100, 0),
			l1: Pt(-0.05, -10), l2: Pt(-0.05, 10), // t = -0.0005, within slack
			wantT: 0, wantAt: Pt(0, 0), wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotT, gotAt, ok := IntersectSegmentLine(tt.a, tt.b, tt.l1, tt.l2)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if math.Abs(gotT-tt.wantT) > 1e-9 {
				t.Errorf("t = %v, want %v", gotT, tt.wantT)
			}
			if !gotAt.Approx(tt.wantAt, 1e-6) {
				t.Errorf("at = %v, want %v", gotAt, tt.wantAt)
			}
		})
	}
}

func TestIntersectSegments(t *testing.T) {
	tests := []struct {
		name       string
		a, b, c, d Point
		wantT      float64
		wantU      float64
		wantAt     Point
		wantOK     bool
	}{
		{
			name: "plus sign crossing",
			a:    Pt(-100, 0), b: Pt(100, 0),
			c: Pt(0, -100), d: Pt(0, 100),
			wantT: 0.5, wantU: 0.5, wantAt: Pt(0, 0), wantOK: true,
		},
		{
			name: "touching at endpoint",
			a:    Pt(0, 0), b: Pt(100, 0),
			c: Pt(100, -50), d: Pt(100, 50),
			wantT: 1, wantU: 0.5, wantAt: Pt(100, 0), wantOK: true,
		},
		{
			name: "segments too short to meet",
			a:    Pt(0, 0), b: Pt(100, 0),
			c: Pt(50, 10), d: Pt(50, 100),
			wantOK: false,
		},
		{
			name: "parallel segments",
			a:    Pt(0, 0), b: Pt(100, 0),
			c: Pt(0, 1), d: Pt(100, 1),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotT, gotU, gotAt, ok := IntersectSegments(tt.a, tt.b, tt.c, tt.d)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if math.Abs(gotT-tt.wantT) > 1e-9 {
				t.Errorf("t = %v, want %v", gotT, tt.wantT)
			}
			if math.Abs(gotU-tt.wantU) > 1e-9 {
				t.Errorf("u = %v, want %v", gotU, tt.wantU)
			}
			if !gotAt.Approx(tt.wantAt, 1e-6) {
				t.Errorf("at = %v, want %v", gotAt, tt.wantAt)
			}
		})
	}
}
