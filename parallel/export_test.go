package parallel

// NewParallelWithChunk lets tests push tiny inputs through the fan-out path.
func NewParallelWithChunk(workers, chunk int) *Parallel {
	p := NewParallel(workers)
	p.chunkMin = chunk

	return p
}
