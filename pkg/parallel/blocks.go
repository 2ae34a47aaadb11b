package parallel

// Block is a half-open range [Lo, Hi) of item indices
type Block struct {
	Lo int
	Hi int
}

// Len returns the number of items in the block
func (b Block) Len() int {
	return b.Hi - b.Lo
}

// Blocks splits n items into at most parts contiguous blocks whose sizes
// differ by at most one. The split depends only on n and parts.
func Blocks(n, parts int) []Block {
	if n <= 0 {
		return nil
	}
	if parts < 1 {
		parts = 1
	}
	if parts > n {
		parts = n
	}

	blocks := make([]Block, parts)
	size, extra := n/parts, n%parts
	lo := 0
	for i := range blocks {
		hi := lo + size
		if i < extra {
			hi++
		}
		blocks[i] = Block{Lo: lo, Hi: hi}
		lo = hi
	}
	return blocks
}

// ForEachBlock splits n items into blocks and runs fn once per block on a
// WorkerPool with one worker per block. fn receives the block's position so
// callers can keep per-block results and combine them in block order.
// It returns the first error in block order, or a recovered panic.
func ForEachBlock(n, workers int, fn func(i int, b Block) error) error {
	blocks := Blocks(n, workers)
	if len(blocks) <= 1 {
		for i, b := range blocks {
			if err := fn(i, b); err != nil {
				return err
			}
		}
		return nil
	}

	pool, err := NewWorkerPool(len(blocks))
	if err != nil {
		return err
	}

	errs := make([]error, len(blocks))
	for i, b := range blocks {
		i, b := i, b
		pool.Submit(func() {
			errs[i] = fn(i, b)
		})
	}
	pool.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return pool.Err()
}
