package renderer

import (
	"runtime"
	"sync"
	"time"

	"github.com/maxplugins/InfoTexture/infotex"
	"github.com/maxplugins/InfoTexture/log"
	"github.com/maxplugins/InfoTexture/scene"
	"github.com/maxplugins/InfoTexture/types"
)

type Renderer interface {
	// Render a single info pass using the given shading mode.
	RenderPass(mode PassMode) (*infotex.Pass, error)

	// Get render statistics for the most recent pass.
	Stats() FrameStats
}

type defaultRenderer struct {
	logger log.Logger

	sc    *scene.Scene
	opts  Options
	stats FrameStats
}

// Create a renderer that traces one primary ray per pixel through the scene
// camera frustrum and encodes the nearest intersection into an info pass.
// All passes rendered by one instance share the same camera and frame
// dimensions, which is what the decoder requires of a pass pair.
func NewDefault(sc *scene.Scene, opts Options) (Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if sc.Camera == nil {
		return nil, ErrCameraNotDefined
	}
	if opts.FrameW == 0 || opts.FrameH == 0 {
		return nil, ErrInvalidDimensions
	}
	for _, node := range sc.Nodes {
		if uint64(len(node.Mesh.Faces)) > infotex.MaxFaceIndex+1 {
			return nil, ErrTooManyFaces
		}
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = runtime.NumCPU()
	}

	sc.Camera.SetupProjection(float32(opts.FrameW) / float32(opts.FrameH))
	sc.Build()

	return &defaultRenderer{
		logger: log.New("renderer"),
		sc:     sc,
		opts:   opts,
	}, nil
}

// Render a single info pass. The frame is split into contiguous row blocks
// that are rendered in parallel; each block worker only writes to its own
// rows so no synchronization of the pass data is needed.
func (r *defaultRenderer) RenderPass(mode PassMode) (*infotex.Pass, error) {
	switch mode {
	case FaceIndexPass, BaryCoordPass:
	default:
		return nil, ErrUnsupportedMode
	}

	pass := infotex.NewPass(r.opts.FrameW, r.opts.FrameH)

	numWorkers := r.opts.NumWorkers
	if uint32(numWorkers) > r.opts.FrameH {
		numWorkers = int(r.opts.FrameH)
	}
	blockH := r.opts.FrameH / uint32(numWorkers)
	remainder := r.opts.FrameH % uint32(numWorkers)

	var wg sync.WaitGroup
	blockStats := make([]BlockStat, numWorkers)

	start := time.Now()
	var blockY uint32
	for worker := 0; worker < numWorkers; worker++ {
		h := blockH
		if uint32(worker) < remainder {
			h++
		}

		wg.Add(1)
		go func(worker int, blockY, blockH uint32) {
			defer wg.Done()
			blockStart := time.Now()
			r.renderBlock(pass, mode, blockY, blockH)
			blockStats[worker] = BlockStat{
				BlockY:     blockY,
				BlockH:     blockH,
				RenderTime: time.Since(blockStart),
			}
		}(worker, blockY, h)
		blockY += h
	}
	wg.Wait()

	r.stats = FrameStats{
		Blocks:     blockStats,
		RenderTime: time.Since(start),
	}
	r.logger.Debugf("rendered %s pass (%dx%d) in %s", mode, r.opts.FrameW, r.opts.FrameH, r.stats.RenderTime)
	return pass, nil
}

// Get render statistics for the most recent pass.
func (r *defaultRenderer) Stats() FrameStats {
	return r.stats
}

// Render a contiguous block of rows into the pass. Pixels that no geometry
// covers are left fully transparent, which is how the decoder detects a
// miss.
func (r *defaultRenderer) renderBlock(pass *infotex.Pass, mode PassMode, blockY, blockH uint32) {
	cam := r.sc.Camera

	// Pixel coordinates are normalized by (dim - 1) so that the decoder's
	// screen point -> pixel mapping lands on the pixel the ray was traced
	// through.
	var stepX, stepY float32
	if r.opts.FrameW > 1 {
		stepX = 1.0 / float32(r.opts.FrameW-1)
	}
	if r.opts.FrameH > 1 {
		stepY = 1.0 / float32(r.opts.FrameH-1)
	}

	for y := blockY; y < blockY+blockH; y++ {
		v := float32(y) * stepY
		for x := uint32(0); x < r.opts.FrameW; x++ {
			u := float32(x) * stepX

			hit, ok := r.sc.Intersect(cam.RayThrough(types.Vec2{u, v}))
			if !ok {
				continue
			}

			switch mode {
			case FaceIndexPass:
				// Encoded zero-based; face indices are validated
				// against the 24-bit range when the renderer is
				// created.
				cr, cg, cb, _ := infotex.EncodeFaceIndex(hit.FaceIndex - 1)
				pass.SetPixel(x, y, cr, cg, cb, 0xff, hit.Node)
			case BaryCoordPass:
				cr, cg, cb := infotex.EncodeBary(hit.Bary)
				pass.SetPixel(x, y, cr, cg, cb, 0xff, hit.Node)
			}
		}
	}
}
