package compositor

import (
	"testing"
	"time"

	"github.com/AvengeMedia/DankMaterialShell/core/pkg/go-wayland/wayland/client"

	"github.com/glintclock/glint/internal/placement"
	"github.com/glintclock/glint/internal/proto/wlr_layer_shell"
	"github.com/glintclock/glint/internal/topology"
)

func TestLayerValue(t *testing.T) {
	cases := map[string]uint32{
		"background": 0,
		"bottom":     1,
		"top":        2,
		"overlay":    3,
		"bogus":      2, // unknown falls back to top
	}
	for in, want := range cases {
		if got := layerValue(in); got != want {
			t.Errorf("layerValue(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestAnchorBits(t *testing.T) {
	got := anchorBits(placement.ParseAnchor("top right"))
	want := uint32(wlr_layer_shell.ZwlrLayerSurfaceV1AnchorTop | wlr_layer_shell.ZwlrLayerSurfaceV1AnchorRight)
	if got != want {
		t.Errorf("anchorBits = %#x, want %#x", got, want)
	}

	if anchorBits(placement.Anchor{}) != 0 {
		t.Error("empty anchor must map to no bits")
	}
}

func TestEmitDropsOnlyPointerMotion(t *testing.T) {
	w := &Wayland{events: make(chan Event, 1)}

	w.emit(PointerMotionEvent{X: 1})
	w.emit(PointerMotionEvent{X: 2}) // queue full: dropped, must not block

	delivered := make(chan struct{})
	go func() {
		w.emit(ConfigureEvent{Serial: 9})
		close(delivered)
	}()

	if ev, ok := (<-w.events).(PointerMotionEvent); !ok || ev.X != 1 {
		t.Fatalf("first event = %#v, want the first motion", ev)
	}
	select {
	case ev := <-w.events:
		cfg, ok := ev.(ConfigureEvent)
		if !ok || cfg.Serial != 9 {
			t.Fatalf("second event = %#v, want the configure", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("configure event never delivered under backpressure")
	}
	<-delivered
}

// Registry handlers run on the dispatch goroutine while surface creation
// reads the output table from the daemon loop; both must go through the
// same lock.
func TestOutputTableConcurrentAccess(t *testing.T) {
	w := &Wayland{
		outputs: make(map[uint32]*boundOutput),
		events:  make(chan Event, 1024),
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := uint32(1); i <= 500; i++ {
			w.outputsMu.Lock()
			w.outputs[i] = &boundOutput{info: topology.Output{ID: i}}
			w.outputsMu.Unlock()
		}
	}()
	for i := uint32(1); i <= 500; i++ {
		w.outputID(&client.Output{})
		w.handleGlobalRemove(client.RegistryGlobalRemoveEvent{Name: i})
	}
	<-done

	w.outputsMu.Lock()
	defer w.outputsMu.Unlock()
	for id := range w.outputs {
		if id > 500 {
			t.Fatalf("unexpected output id %d", id)
		}
	}
}
