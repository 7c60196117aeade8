package noise

import (
	"sync"
	"testing"
	"time"
)

func openTestHandle(t *testing.T) *Handle {
	t.Helper()
	st := DefaultSettings()
	st.Volume = 0.8
	h, err := Open(Config{SampleRate: 48000, Seed: 7, Settings: &st})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return h
}

// TestHandle_ConcurrentUpdateRender stresses the control-surface/render
// race. The test has no assertions - the race detector is the oracle.
// Run with: go test -race -run TestHandle_ConcurrentUpdateRender
func TestHandle_ConcurrentUpdateRender(t *testing.T) {
	h := openTestHandle(t)

	var wg sync.WaitGroup
	stop := make(chan struct{})

	// Control surface: hammers every setter.
	wg.Go(func() {
		i := 0
		for {
			select {
			case <-stop:
				return
			default:
			}
			h.SetVolume(float32(i%100) / 100)
			h.SetBandGain(BandID(i%NumBands), float32(i%20)/20)
			if i%7 == 0 {
				h.SetStyle(Style(i % 2))
			}
			if i%11 == 0 {
				h.SetMode(Mode(i % 2))
			}
			_ = h.Snapshot()
			i++
		}
	})

	// Audio callback: renders blocks back to back.
	wg.Go(func() {
		buf := make([]float32, 256*2)
		for {
			select {
			case <-stop:
				return
			default:
			}
			h.RenderInto(buf, 2)
		}
	})

	time.Sleep(100 * time.Millisecond)
	close(stop)
	wg.Wait()
}

func TestHandleClampsOutOfRangeUpdates(t *testing.T) {
	h := openTestHandle(t)

	h.SetVolume(2.5)
	if v := h.Snapshot().Volume; v != 1 {
		t.Fatalf("volume not clamped up: %g", v)
	}
	h.SetVolume(-0.5)
	if v := h.Snapshot().Volume; v != 0 {
		t.Fatalf("volume not clamped down: %g", v)
	}

	h.SetBandGain(Air, 5)
	if g := h.Snapshot().BandGains[Air]; g != 1 {
		t.Fatalf("gain not clamped: %g", g)
	}

	// Unknown band identities are ignored, never a panic.
	h.SetBandGain(BandID(-3), 0.5)
	h.SetBandGain(BandID(42), 0.5)
}

func TestShutdownIsIdempotentAndSilences(t *testing.T) {
	h := openTestHandle(t)
	if !h.Running() {
		t.Fatal("handle should start running")
	}

	h.Shutdown()
	h.Shutdown()
	if h.Running() {
		t.Fatal("handle still running after shutdown")
	}

	for i, s := range h.RenderBlock(256, 2) {
		if s != 0 {
			t.Fatalf("sample %d not silent after shutdown: %g", i, s)
		}
	}
}

func TestSnapshotReflectsUpdates(t *testing.T) {
	h := openTestHandle(t)

	h.SetStyle(Rain)
	h.SetMode(PerceptualMode)
	h.SetBandGain(Bass, 0.25)

	st := h.Snapshot()
	if st.Style != Rain || st.Mode != PerceptualMode {
		t.Fatalf("snapshot stale: %v %v", st.Style, st.Mode)
	}
	if st.BandGains[Bass] != 0.25 {
		t.Fatalf("snapshot gain stale: %g", st.BandGains[Bass])
	}

	st.BandGains[Bass] = 0.9 // copies must not alias engine state
	if h.Snapshot().BandGains[Bass] != 0.25 {
		t.Fatal("snapshot aliases engine state")
	}
}
