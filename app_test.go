package raylib

import (
	"errors"
	"testing"
)

type countingApp struct {
	inits, renders, updates, closes int
	frames                          int
}

func (a *countingApp) Init(*Handle, *Thread) error { a.inits++; return nil }
func (a *countingApp) IsRunning() bool             { return a.updates < a.frames }
func (a *countingApp) Render(*DrawHandle) error    { a.renders++; return nil }
func (a *countingApp) Update(*Handle, *Thread) error {
	a.updates++
	return nil
}
func (a *countingApp) Close() error { a.closes++; return nil }

func TestRunRequiresFreeWindowSlot(t *testing.T) {
	if testHandle == nil {
		t.Skip("no window available")
	}
	app := &countingApp{frames: 1}
	var err error
	onMain(t, func(*Handle, *Thread) {
		err = Run(Init(), app)
	})
	if !errors.Is(err, ErrAlreadyInitialized) {
		t.Errorf("Run() error = %v, want ErrAlreadyInitialized", err)
	}
	if app.inits != 0 || app.closes != 0 {
		t.Errorf("app was initialized without a window: %+v", app)
	}
}

func TestRunDrivesFrames(t *testing.T) {
	if testHandle == nil {
		t.Skip("no window available")
	}
	app := &countingApp{frames: 3}
	var err error
	onMain(t, func(h *Handle, th *Thread) {
		// Hand the window slot over to Run and take it back afterwards.
		if err = h.Close(); err != nil {
			return
		}
		err = Run(Init().Size(160, 120).Title("run test").Hidden().TraceLogLevel(LogWarning), app)
		nh, nth, buildErr := Init().Size(320, 240).Title("raylib-go test").TraceLogLevel(LogWarning).Build()
		if buildErr != nil {
			panic(buildErr)
		}
		testHandle, testThread = nh, nth
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if app.inits != 1 || app.closes != 1 {
		t.Errorf("inits=%d closes=%d, want 1 and 1", app.inits, app.closes)
	}
	if app.renders != 3 || app.updates != 3 {
		t.Errorf("renders=%d updates=%d, want 3 and 3", app.renders, app.updates)
	}
}
