// Package raylib is a safe Go binding to raylib (https://www.raylib.com/),
// a C library for videogames programming.
//
// Start with Init, which returns a Builder for the window settings. Build
// opens the window and returns a Handle and a Thread token:
//
//	h, th, err := raylib.Init().Size(640, 480).Title("Hello, World").Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer h.Close()
//	for !h.WindowShouldClose() {
//		h.Draw(th, func(d *raylib.DrawHandle) {
//			d.ClearBackground(raylib.White)
//			d.DrawText("Hello, world!", 12, 12, 20, raylib.Black)
//		})
//	}
//
// Only one Handle can be live at a time, and it must be used from the OS
// thread that built it. The package locks the main goroutine to the main
// thread at init, so building from main is enough.
//
// Strings passed to raylib are copied into C memory for the duration of the
// call and must not contain NUL bytes. Text returned by raylib is copied
// into Go memory and released right away. Images are the exception: an
// Image keeps raylib's pixel buffer and must be released with Close.
//
// The package logs nothing until SetLogger is called; raylib's own trace
// messages go to the same logger.
package raylib
