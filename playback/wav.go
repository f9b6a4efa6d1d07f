package playback

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-wavelab/stats"
)

const (
	wavBitDepth  = 16
	wavChannels  = 1
	wavFormatPCM = 1
	wavPeakValue = 32767.0
)

// WriteWAV encodes the clip as 16-bit mono PCM and writes the complete file
// to w. The samples are peak normalized to full scale first, so quiet and
// clipping inputs both come out at the same level.
func (c *Clip) WriteWAV(w io.Writer) error {
	buf := &seekBuffer{}
	rate := int(math.Round(c.rate))
	enc := wav.NewEncoder(buf, rate, wavBitDepth, wavChannels, wavFormatPCM)

	intBuf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: wavChannels,
			SampleRate:  rate,
		},
		Data:           make([]int, len(c.samples)),
		SourceBitDepth: wavBitDepth,
	}

	scale := wavPeakValue
	if peak := stats.Peak(c.samples); peak > 0 {
		scale = wavPeakValue / peak
	}
	for i, v := range c.samples {
		intBuf.Data[i] = int(v * scale)
	}

	if err := enc.Write(intBuf); err != nil {
		return fmt.Errorf("playback: encode wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("playback: finalize wav: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("playback: write wav: %w", err)
	}
	return nil
}

// WAVBytes encodes the clip as 16-bit mono PCM and returns the file bytes.
func (c *Clip) WAVBytes() ([]byte, error) {
	var b bytes.Buffer
	if err := c.WriteWAV(&b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// seekBuffer is an in-memory io.WriteSeeker. The wav encoder needs one
// because it seeks back to patch chunk sizes into the RIFF header after the
// sample data is written.
type seekBuffer struct {
	data []byte
	pos  int
}

func (b *seekBuffer) Write(p []byte) (int, error) {
	if need := b.pos + len(p); need > len(b.data) {
		grown := make([]byte, need)
		copy(grown, b.data)
		b.data = grown
	}
	copy(b.data[b.pos:], p)
	b.pos += len(p)
	return len(p), nil
}

func (b *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = int64(b.pos) + offset
	case io.SeekEnd:
		pos = int64(len(b.data)) + offset
	default:
		return 0, fmt.Errorf("playback: invalid seek whence %d", whence)
	}
	if pos < 0 {
		return 0, fmt.Errorf("playback: negative seek position %d", pos)
	}
	b.pos = int(pos)
	return pos, nil
}

func (b *seekBuffer) Bytes() []byte {
	return b.data
}
