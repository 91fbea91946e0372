package export

import "metashare/pkg/domain"

// DefaultChunkSize bounds how many explicit items are resolved and serialized
// as one unit when no size is configured. Chunking exists to limit peak
// memory for very large packages, not for correctness.
const DefaultChunkSize = 1000

// chunkItems splits items into contiguous sub-slices of at most size elements
// each. Concatenating the result reconstructs the input exactly, in order.
// The sub-slices alias the input; they are never written to.
func chunkItems(items []domain.Item, size int) [][]domain.Item {
	if size <= 0 {
		size = DefaultChunkSize
	}

	chunks := make([][]domain.Item, 0, (len(items)+size-1)/size)
	for from := 0; from < len(items); from += size {
		to := min(from+size, len(items))
		chunks = append(chunks, items[from:to:to])
	}

	return chunks
}
