package raylib

/*
void rlgoInstallTraceLog(void);
*/
import "C"

import "context"

// raylib's TraceLog output goes to Logger() from the first raylib call on,
// whether or not a window exists.
func init() {
	C.rlgoInstallTraceLog()
}

//export rlgoTraceLog
func rlgoTraceLog(level C.int, text *C.char) {
	traceLog(TraceLogLevel(level), C.GoString(text))
}

func traceLog(level TraceLogLevel, msg string) {
	Logger().Log(context.Background(), level.slogLevel(), msg, "source", "raylib")
}
