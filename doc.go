// Package hui provides a minimal GPU-accelerated rectangle layer for UI
// toolkits, built on gogpu/wgpu.
//
// # Overview
//
// hui renders batches of styled rectangles (fill, border, rounded corners,
// drop shadow) through an instanced render pipeline. Rectangles are drawn
// into an offscreen texture which is then composited onto the caller's
// surface, so the expensive rectangle pass only runs when something
// actually changed.
//
// # Quick Start
//
//	import "github.com/gogpu/hui"
//
//	r, err := hui.NewRenderer(device, queue, hui.SurfaceConfig{
//	    Width:  800,
//	    Height: 600,
//	    Format: gputypes.TextureFormatBGRA8Unorm,
//	})
//	if err != nil {
//	    // handle error
//	}
//	defer r.Destroy()
//
//	id, _ := r.AddRectangle(rect)
//	// each frame:
//	err = r.Render(encoder, surfaceView)
//
// # Architecture
//
// The library is organized around a few cooperating pieces:
//   - Renderer: orchestrates the offscreen pass and the composite pass
//   - instance store: generation-checked rectangle slots with dirty tracking
//   - rectangle pass: instanced quad pipeline (one draw call per frame)
//   - composite pass: full-screen triangle sampling the offscreen texture
//   - Block / PositionedBlock: two-phase widget primitive on top of Renderer
//   - InputState: pointer position and button tracking for UI consumers
//
// # Coordinate System
//
// Rectangle transforms are ordinary model-view-projection matrices; the
// caller chooses the projection. Block helpers assume X increases right and
// Y increases with the caller's view-projection convention.
package hui

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
