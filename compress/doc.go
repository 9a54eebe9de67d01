// Package compress provides the codecs used to archive extracted coverage
// containers.
//
// A container is written uncompressed on the target: the bytes must be readable
// straight out of a memory dump. Once extracted, a host may store or ship many
// dumps, and counter-heavy gcda payloads compress very well (mostly zero high
// halves and repeated tags). The sink package uses these codecs to write
// compressed archives, and the gcovsplit CLI uses them to read them back.
//
// # Algorithms
//
//   - None (format.CompressionNone): pass-through
//   - Zstd (format.CompressionZstd): best ratio; pure Go via klauspost/compress,
//     or cgo via valyala/gozstd when built with the gozstd tag
//   - S2 (format.CompressionS2): balanced speed and ratio
//   - LZ4 (format.CompressionLZ4): fastest decompression
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	archived, err := codec.Compress(containerBytes)
//
// All built-in codecs are stateless values and safe for concurrent use; pooled
// encoder state is managed internally.
package compress
