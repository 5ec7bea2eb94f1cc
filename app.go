package raylib

// App is driven frame by frame by Run.
type App interface {
	Init(h *Handle, th *Thread) error
	IsRunning() bool
	Render(d *DrawHandle) error
	Update(h *Handle, th *Thread) error
	Close() error
}

// Run opens a window from b and drives app until it stops running or the
// window is asked to close. It must be called from the main goroutine.
func Run(b *Builder, app App) error {
	h, th, err := b.Build()
	if err != nil {
		return err
	}
	defer h.Close()
	if err := app.Init(h, th); err != nil {
		return err
	}
	defer app.Close()
	for app.IsRunning() && !h.WindowShouldClose() {
		var renderErr error
		if err := h.Draw(th, func(d *DrawHandle) {
			renderErr = app.Render(d)
		}); err != nil {
			return err
		}
		if renderErr != nil {
			return renderErr
		}
		if err := app.Update(h, th); err != nil {
			return err
		}
	}
	return nil
}
