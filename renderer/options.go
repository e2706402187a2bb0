package renderer

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Number of parallel block workers. Defaults to runtime.NumCPU() when
	// zero or negative.
	NumWorkers int
}
