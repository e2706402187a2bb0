package renderer

import "time"

type BlockStat struct {
	// Block start row and height.
	BlockY uint32
	BlockH uint32

	// Render time for the assigned block.
	RenderTime time.Duration
}

type FrameStats struct {
	// Individual block stats for the most recent pass.
	Blocks []BlockStat

	// Total render time for the entire pass.
	RenderTime time.Duration
}
