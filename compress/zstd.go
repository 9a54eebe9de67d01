package compress

// ZstdCompressor compresses with Zstandard. It gives the best ratio of the
// built-in codecs and is the usual choice for long-term storage of dumps.
//
// The implementation is pure Go (klauspost/compress) unless built with the
// gozstd tag, which switches to the cgo binding valyala/gozstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstandard codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
