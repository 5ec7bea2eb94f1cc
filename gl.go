package raylib

import (
	"fmt"
	"sync"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// GraphicsInfo describes the OpenGL context raylib created for the window.
type GraphicsInfo struct {
	Vendor                 string
	Renderer               string
	Version                string
	ShadingLanguageVersion string
	MaxTextureSize         int32
}

var (
	glOnce    sync.Once
	glInitErr error
)

// GraphicsInfo queries the driver through the GL context owned by h. The
// GL entry points are loaded on first use.
func (h *Handle) GraphicsInfo(th *Thread) (GraphicsInfo, error) {
	if err := h.check(th); err != nil {
		return GraphicsInfo{}, err
	}
	glOnce.Do(func() {
		glInitErr = gl.Init()
	})
	if glInitErr != nil {
		return GraphicsInfo{}, fmt.Errorf("raylib: load GL entry points: %w", glInitErr)
	}
	var maxTex int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &maxTex)
	return GraphicsInfo{
		Vendor:                 glString(gl.VENDOR),
		Renderer:               glString(gl.RENDERER),
		Version:                glString(gl.VERSION),
		ShadingLanguageVersion: glString(gl.SHADING_LANGUAGE_VERSION),
		MaxTextureSize:         maxTex,
	}, nil
}

func glString(name uint32) string {
	s := gl.GetString(name)
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}

func (gi GraphicsInfo) String() string {
	return fmt.Sprintf("%s / %s / GL %s / GLSL %s / max texture %d",
		gi.Vendor, gi.Renderer, gi.Version, gi.ShadingLanguageVersion, gi.MaxTextureSize)
}
