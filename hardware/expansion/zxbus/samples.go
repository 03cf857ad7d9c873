// This file is part of Orchid.
//
// Orchid is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Orchid is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Orchid.  If not, see <https://www.gnu.org/licenses/>.

package zxbus

import (
	"bytes"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/orchid/curated"
	"github.com/jetsetilly/orchid/logger"
)

// Sentinal error patterns.
const (
	UnsupportedSample = "neogs: %s: unsupported sample format"
	SampleRAMFull     = "neogs: %s: sample ram full (%d bytes needed, %d available)"
)

// Sample is a sound sample that has been loaded into sample memory. Samples
// are unsigned 8-bit mono.
type Sample struct {
	Name       string
	Offset     int
	Length     int
	SampleRate int
}

// Samples returns the list of samples in sample memory.
func (gs *NeoGS) Samples() []Sample {
	return gs.samples
}

// SampleData returns the data of a sample. The returned slice refers to
// sample memory.
func (gs *NeoGS) SampleData(idx int) []uint8 {
	if idx < 0 || idx >= len(gs.samples) {
		return nil
	}
	s := gs.samples[idx]
	return gs.ram[s.Offset : s.Offset+s.Length]
}

// Free returns the number of unused bytes in sample memory.
func (gs *NeoGS) Free() int {
	return len(gs.ram) - gs.used
}

// LoadSample decodes a WAV or MP3 file into sample memory. The format is
// detected from the data. Returns the index of the new sample.
func (gs *NeoGS) LoadSample(name string, r io.ReadSeeker) (int, error) {
	var hdr [12]byte
	n, _ := io.ReadFull(r, hdr[:])
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return 0, curated.Errorf("neogs: %s: %v", name, err)
	}

	var data []uint8
	var rate int
	var err error

	switch {
	case n >= 12 && bytes.Equal(hdr[0:4], []byte("RIFF")) && bytes.Equal(hdr[8:12], []byte("WAVE")):
		data, rate, err = decodeWAV(r)
	case n >= 3 && bytes.Equal(hdr[0:3], []byte("ID3")):
		data, rate, err = decodeMP3(r)
	case n >= 2 && hdr[0] == 0xff && hdr[1]&0xe0 == 0xe0:
		data, rate, err = decodeMP3(r)
	default:
		return 0, curated.Errorf(UnsupportedSample, name)
	}
	if err != nil {
		return 0, curated.Errorf("neogs: %s: %v", name, err)
	}

	if len(data) > gs.Free() {
		return 0, curated.Errorf(SampleRAMFull, name, len(data), gs.Free())
	}

	s := Sample{
		Name:       name,
		Offset:     gs.used,
		Length:     len(data),
		SampleRate: rate,
	}
	copy(gs.ram[gs.used:], data)
	gs.used += len(data)
	gs.samples = append(gs.samples, s)

	logger.Logf(gs.perm, gs.ID(), "loaded %s: %d bytes at %d (%dHz)", name, s.Length, s.Offset, s.SampleRate)

	return len(gs.samples) - 1, nil
}

func decodeWAV(r io.ReadSeeker) ([]uint8, int, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, 0, curated.Errorf("wav: not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, curated.Errorf("wav: %v", err)
	}

	chans := int(dec.NumChans)
	if chans < 1 {
		return nil, 0, curated.Errorf("wav: no channels")
	}

	return unsigned8(buf, chans, int(dec.BitDepth)), int(dec.SampleRate), nil
}

// unsigned8 mixes the channels of the buffer and converts each sample to
// unsigned 8-bit. wav data of 8 bits or less is already unsigned
func unsigned8(buf *audio.IntBuffer, chans int, depth int) []uint8 {
	out := make([]uint8, 0, len(buf.Data)/chans)
	for i := 0; i+chans <= len(buf.Data); i += chans {
		var sum int
		for c := range chans {
			sum += buf.Data[i+c]
		}
		v := sum / chans
		if depth <= 8 {
			out = append(out, uint8(v))
		} else {
			out = append(out, uint8((v>>(depth-8))+128))
		}
	}
	return out
}

// the decoded stream is always 16bit little endian stereo. only the left
// channel is used
func decodeMP3(r io.Reader) ([]uint8, int, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, 0, curated.Errorf("mp3: %v", err)
	}

	pcm, err := io.ReadAll(dec)
	if err != nil {
		return nil, 0, curated.Errorf("mp3: %v", err)
	}

	out := make([]uint8, 0, len(pcm)/4)
	for i := 0; i+1 < len(pcm); i += 4 {
		v := int16(uint16(pcm[i]) | uint16(pcm[i+1])<<8)
		out = append(out, uint8((int(v)>>8)+128))
	}

	return out, dec.SampleRate(), nil
}
