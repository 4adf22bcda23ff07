package leveler

import (
	"testing"
)

func TestPlanBlocksLayout(t *testing.T) {
	plan, err := PlanBlocks(100, 10, 2, 0.6)
	if err != nil {
		t.Fatalf("PlanBlocks: %v", err)
	}
	if plan.BlockSize != 20 || plan.FadeSize != 12 {
		t.Fatalf("block/fade = %d/%d, want 20/12", plan.BlockSize, plan.FadeSize)
	}
	want := []BlockWindow{
		{Start: 0, Stop: 20, FadeIn: 0},
		{Start: 8, Stop: 40, FadeIn: 12},
		{Start: 28, Stop: 60, FadeIn: 12},
		{Start: 48, Stop: 80, FadeIn: 12},
		{Start: 68, Stop: 100, FadeIn: 12},
	}
	if len(plan.Windows) != len(want) {
		t.Fatalf("got %d windows, want %d", len(plan.Windows), len(want))
	}
	for i, w := range want {
		if plan.Windows[i] != w {
			t.Fatalf("window %d = %+v, want %+v", i, plan.Windows[i], w)
		}
	}
}

func TestPlanBlocksLastWindowAbsorbsRemainder(t *testing.T) {
	plan, err := PlanBlocks(105, 10, 2, 0.6)
	if err != nil {
		t.Fatalf("PlanBlocks: %v", err)
	}
	if len(plan.Windows) != 6 {
		t.Fatalf("got %d windows, want ceil(105/20)=6", len(plan.Windows))
	}
	last := plan.Windows[len(plan.Windows)-1]
	if last.Start != 88 || last.Stop != 105 {
		t.Fatalf("last window = %+v, want [88,105)", last)
	}
}

func TestPlanBlocksShortBuffer(t *testing.T) {
	plan, err := PlanBlocks(7, 10, 2, 0.5)
	if err != nil {
		t.Fatalf("PlanBlocks: %v", err)
	}
	if len(plan.Windows) != 1 || plan.Windows[0] != (BlockWindow{Start: 0, Stop: 7}) {
		t.Fatalf("unexpected plan for short buffer: %+v", plan.Windows)
	}
}

func TestPlanBlocksInvariants(t *testing.T) {
	for _, frames := range []int{1, 19, 20, 21, 99, 100, 101, 257, 1000} {
		for _, xf := range []float64{0.05, 0.3, 0.6, 0.95} {
			plan, err := PlanBlocks(frames, 10, 2, xf)
			if err != nil {
				t.Fatalf("PlanBlocks(%d, %g): %v", frames, xf, err)
			}
			ws := plan.Windows
			if ws[0].FadeIn != 0 || ws[0].Start != 0 {
				t.Fatalf("first window must start at 0 without fade: %+v", ws[0])
			}
			if ws[len(ws)-1].Stop != frames {
				t.Fatalf("last window must end at %d: %+v", frames, ws[len(ws)-1])
			}
			covered := 0
			for i, w := range ws {
				if w.Start < 0 || w.Start >= w.Stop || w.Stop > frames {
					t.Fatalf("window %d out of range: %+v (frames=%d)", i, w, frames)
				}
				if w.FadeIn > w.Len() {
					t.Fatalf("window %d fade longer than window: %+v", i, w)
				}
				if i > 0 && w.Start != ws[i-1].Stop-w.FadeIn {
					t.Fatalf("window %d does not overlap its predecessor by the fade: %+v after %+v", i, w, ws[i-1])
				}
				covered += w.Len() - w.FadeIn
			}
			if covered != frames {
				t.Fatalf("windows cover %d frames, want %d", covered, frames)
			}
		}
	}
}

func TestPlanBlocksRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name    string
		frames  int
		sr      int
		seconds int
		xf      float64
	}{
		{"empty", 0, 10, 2, 0.6},
		{"zero crossfade", 100, 10, 2, 0},
		{"full crossfade", 100, 10, 2, 1},
		{"zero rate", 100, 0, 2, 0.6},
		{"zero seconds", 100, 10, 0, 0.6},
	}
	for _, tc := range cases {
		if _, err := PlanBlocks(tc.frames, tc.sr, tc.seconds, tc.xf); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}
