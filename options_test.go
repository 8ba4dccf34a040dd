package hui

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestDefaultRendererOptions(t *testing.T) {
	o := defaultRendererOptions()

	if o.maxRectangles != defaultMaxRectangles {
		t.Errorf("maxRectangles = %d, want %d", o.maxRectangles, defaultMaxRectangles)
	}
	if o.depthOps != nil {
		t.Error("depth enabled by default")
	}
	if o.colorOps.Load != gputypes.LoadOpClear {
		t.Errorf("default color load = %v, want clear", o.colorOps.Load)
	}
	if o.colorOps.Store != gputypes.StoreOpStore {
		t.Errorf("default color store = %v, want store", o.colorOps.Store)
	}
	if o.colorOps.Clear != (gputypes.Color{}) {
		t.Errorf("default clear color = %v, want transparent black", o.colorOps.Clear)
	}
}

func TestWithMaxRectangles(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"positive", 64, 64},
		{"zero falls back", 0, defaultMaxRectangles},
		{"negative falls back", -5, defaultMaxRectangles},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultRendererOptions()
			WithMaxRectangles(tt.n)(&o)
			if o.maxRectangles != tt.want {
				t.Errorf("maxRectangles = %d, want %d", o.maxRectangles, tt.want)
			}
		})
	}
}

func TestWithDepthOps(t *testing.T) {
	o := defaultRendererOptions()
	WithDepthOps(DepthOps{
		Load:  gputypes.LoadOpClear,
		Store: gputypes.StoreOpDiscard,
		Clear: 1.0,
	})(&o)

	if o.depthOps == nil {
		t.Fatal("depthOps not set")
	}
	if o.depthOps.Clear != 1.0 {
		t.Errorf("depth clear = %v, want 1.0", o.depthOps.Clear)
	}
}
