package fretwav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"path/filepath"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/google/renameio/v2"
)

const (
	bitDepth     = 16
	numChannels  = 1
	wavFormatPCM = 1
	filePerm     = 0644
)

// EncodeWav writes a 16-bit mono PCM .wav file, header and samples, to w.
func EncodeWav(w io.WriteSeeker, sampleRate int, samples []int16) error {
	data := make([]int, len(samples))
	for i, v := range samples {
		data[i] = int(v)
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChannels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	enc := wav.NewEncoder(w, sampleRate, bitDepth, numChannels, wavFormatPCM)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("could not encode samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("could not finish wav header: %w", err)
	}
	return nil
}

// WriteWav writes the samples to a .wav file at path. The file is first
// written under a temporary name in the same directory and renamed into place
// only once complete, so a failed write never leaves a partial file at path.
func WriteWav(path string, sampleRate int, samples []int16) error {
	f, err := renameio.NewPendingFile(path, renameio.WithTempDir(filepath.Dir(path)), renameio.WithPermissions(filePerm))
	if err != nil {
		return fmt.Errorf("%w: could not create %v: %w", ErrIO, path, err)
	}
	defer f.Cleanup()
	if err := EncodeWav(f, sampleRate, samples); err != nil {
		return fmt.Errorf("%w: could not write %v: %w", ErrIO, path, err)
	}
	if err := f.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("%w: could not move file into place at %v: %w", ErrIO, path, err)
	}
	return nil
}

// Raw returns the samples as headerless little-endian 16-bit PCM.
func Raw(samples []int16) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, samples); err != nil {
		return nil, fmt.Errorf("could not binary write data to binary buffer: %v", err)
	}
	return buf.Bytes(), nil
}

// WriteFile writes contents to path with the same guarantees as WriteWav.
func WriteFile(path string, contents []byte) error {
	if err := renameio.WriteFile(path, contents, filePerm, renameio.WithTempDir(filepath.Dir(path))); err != nil {
		return fmt.Errorf("%w: could not write %v: %w", ErrIO, path, err)
	}
	return nil
}
