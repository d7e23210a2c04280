package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/wav"
	"github.com/rs/zerolog/log"
	linfit "github.com/tphakala/go-linear-fit"
)

var errTooFewFrames = errors.New("too few frames")

// wavInputInfo holds validated input file information.
type wavInputInfo struct {
	file     *os.File
	decoder  *wav.Decoder
	rate     int
	channels int
	bitDepth int
}

// openWAVInput opens and validates a WAV file, returning format information.
func openWAVInput(path string) (*wavInputInfo, error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	info := &wavInputInfo{
		file:     inputFile,
		decoder:  decoder,
		rate:     format.SampleRate,
		channels: format.NumChannels,
		bitDepth: int(decoder.BitDepth),
	}

	log.Debug().
		Int("rate", info.rate).
		Int("channels", info.channels).
		Int("bit_depth", info.bitDepth).
		Msg("input format")

	return info, nil
}

// Close closes the input file.
func (w *wavInputInfo) Close() error {
	return w.file.Close()
}

// frameSet holds eight normalized frames, one slice of channel values each.
type frameSet struct {
	values [linfit.PointCount][]float32
}

// channel returns the values of channel ch across the eight frames.
func (f *frameSet) channel(ch int) linfit.Samples {
	var s linfit.Samples
	for i := range s {
		s[i] = f.values[i][ch]
	}
	return s
}

// readFrames decodes the whole file and keeps eight evenly spaced frames.
func (w *wavInputInfo) readFrames() (*frameSet, error) {
	buf, err := w.decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode PCM data: %w", err)
	}
	if w.channels <= 0 {
		return nil, fmt.Errorf("invalid channel count %d", w.channels)
	}

	numFrames := len(buf.Data) / w.channels
	indices, err := pickFrames(numFrames)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("frames", numFrames).Ints("picked", indices[:]).Msg("frames selected")

	return extractFrames(buf.Data, w.channels, indices, getScale(w.bitDepth)), nil
}

// pickFrames spreads PointCount frame indices evenly over [0, numFrames).
func pickFrames(numFrames int) ([linfit.PointCount]int, error) {
	var idx [linfit.PointCount]int
	if numFrames < linfit.PointCount {
		return idx, fmt.Errorf("%w: need %d, file has %d", errTooFewFrames, linfit.PointCount, numFrames)
	}
	last := numFrames - 1
	for i := range idx {
		idx[i] = i * last / (linfit.PointCount - 1)
	}
	return idx, nil
}

// sampleScale maps decoded integer samples onto [-1, 1].
type sampleScale struct {
	offset float64
	maxVal float64
}

// extractFrames copies the selected interleaved frames, normalized by sc.
func extractFrames(data []int, channels int, indices [linfit.PointCount]int, sc sampleScale) *frameSet {
	fs := &frameSet{}
	invMaxVal := 1.0 / sc.maxVal
	for i, frame := range indices {
		vals := make([]float32, channels)
		base := frame * channels
		for ch := range channels {
			vals[ch] = float32((float64(data[base+ch]) - sc.offset) * invMaxVal)
		}
		fs.values[i] = vals
	}
	return fs
}

// getScale returns the normalization for a bit depth. 8-bit PCM decodes
// as unsigned 0..255 centred on 128; wider depths are signed.
func getScale(bitDepth int) sampleScale {
	switch bitDepth {
	case bitsPerSample8:
		return sampleScale{offset: midUint8, maxVal: midUint8}
	case bitsPerSample16:
		return sampleScale{maxVal: maxInt16}
	case bitsPerSample24:
		return sampleScale{maxVal: maxInt24}
	case bitsPerSample32:
		return sampleScale{maxVal: maxInt32}
	default:
		return sampleScale{maxVal: maxInt16}
	}
}
