// Package wavio reads and writes the stereo WAV files processed by the
// leveler.
package wavio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/wav"
	"github.com/go-audio/audio"

	"github.com/cwbudde/algo-leveler/leveler"
)

// OutputBitDepth is the PCM resolution of written files.
const OutputBitDepth = 24

var (
	// ErrInputNotFound is returned when the input path does not exist.
	ErrInputNotFound = errors.New("input file does not exist")
	// ErrUnsupportedChannels is returned for anything other than stereo.
	ErrUnsupportedChannels = errors.New("unsupported channel layout")
)

// ReadStereo decodes a stereo WAV file into interleaved float64 samples.
func ReadStereo(path string) (leveler.Buffer, error) {
	st, err := os.Stat(path)
	if err != nil || st.IsDir() {
		return leveler.Buffer{}, fmt.Errorf("%s: %w", path, ErrInputNotFound)
	}
	f, err := os.Open(path)
	if err != nil {
		return leveler.Buffer{}, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return leveler.Buffer{}, fmt.Errorf("invalid wav file: %s", path)
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return leveler.Buffer{}, err
	}
	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 {
		return leveler.Buffer{}, fmt.Errorf("invalid wav buffer: %s", path)
	}
	switch ch := buf.Format.NumChannels; {
	case ch == 1:
		return leveler.Buffer{}, fmt.Errorf("%s: mono files are not supported: %w", path, ErrUnsupportedChannels)
	case ch > leveler.Channels:
		return leveler.Buffer{}, fmt.Errorf("%s: %d channels, only stereo is supported: %w", path, ch, ErrUnsupportedChannels)
	}
	if buf.Format.SampleRate <= 0 {
		return leveler.Buffer{}, fmt.Errorf("invalid wav sample-rate: %d", buf.Format.SampleRate)
	}

	frames := len(buf.Data) / leveler.Channels
	if frames == 0 {
		return leveler.Buffer{}, fmt.Errorf("empty wav data: %s", path)
	}
	out := make([]float64, frames*leveler.Channels)
	for i := range out {
		out[i] = float64(buf.Data[i])
	}
	return leveler.NewBuffer(out, buf.Format.SampleRate)
}

// OutputPath replaces the extension of in with "_new.wav".
func OutputPath(in string) string {
	return strings.TrimSuffix(in, filepath.Ext(in)) + "_new.wav"
}

// WriteStereo24 encodes b as 24-bit PCM. The file is written next to path
// under a temporary name and renamed into place, so a failed run never
// leaves a partial file behind. Samples outside [-1, 1] are passed to the
// encoder as-is.
func WriteStereo24(path string, b leveler.Buffer) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".leveler-*.wav")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	data := make([]float32, len(b.Samples))
	for i, v := range b.Samples {
		data[i] = float32(v)
	}

	enc := wav.NewEncoder(f, b.SampleRate, OutputBitDepth, leveler.Channels, 1)
	buf := &audio.Float32Buffer{
		Format: &audio.Format{
			SampleRate:  b.SampleRate,
			NumChannels: leveler.Channels,
		},
		Data:           data,
		SourceBitDepth: OutputBitDepth,
	}
	if err = enc.Write(buf); err != nil {
		return err
	}
	if err = enc.Close(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// WriteWAV writes interleaved float samples with the given channel count
// and bit depth. It is used to produce fixtures, including layouts that
// ReadStereo rejects.
func WriteWAV(path string, samples []float32, channels int, sampleRate int, bitDepth int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := wav.NewEncoder(f, sampleRate, bitDepth, channels, 1)
	defer enc.Close()

	buf := &audio.Float32Buffer{
		Format: &audio.Format{
			SampleRate:  sampleRate,
			NumChannels: channels,
		},
		Data:           samples,
		SourceBitDepth: bitDepth,
	}
	return enc.Write(buf)
}
