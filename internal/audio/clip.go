// Package audio models the capture side of voice translation: a scoped
// microphone and the clips it produces.
package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrEmptyClip is returned when a listen produced no audio.
	ErrEmptyClip = errors.New("empty audio clip")
	// ErrMalformed is returned for a RIFF/WAVE clip whose header cannot be read.
	ErrMalformed = errors.New("malformed wav clip")
)

// Content types reported for clips.
const (
	ContentTypeWAV  = "audio/wav"
	ContentTypeMPEG = "audio/mpeg"
)

// CompressedByteRate bounds non-WAV clips: 256 kbit/s.
const CompressedByteRate = 32 * 1024

// Upper bounds on WAV header fields. Anything beyond them is not a recording.
const (
	maxSampleRate    = 384000
	maxChannels      = 32
	maxBitsPerSample = 64
)

// SilenceThreshold is the RMS energy below which a PCM clip counts as silence.
const SilenceThreshold = 0.005

// Clip is one bounded recording.
type Clip struct {
	Data        []byte
	ContentType string
	Filename    string
	// Truncated is set when the recording ran past the listen limit.
	Truncated bool
	// Duration is known only for WAV clips.
	Duration time.Duration
}

// Format describes 16-bit style PCM parameters of a WAV clip.
type Format struct {
	AudioFormat   int
	Channels      int
	SampleRate    int
	BitsPerSample int
}

// ByteRate is the number of bytes per second of PCM data.
func (f Format) ByteRate() int {
	return f.SampleRate * f.Channels * f.BitsPerSample / 8
}

func (f Format) blockAlign() int {
	a := f.Channels * f.BitsPerSample / 8
	if a <= 0 {
		return 1
	}
	return a
}

// IsWAV reports whether data starts with a RIFF/WAVE header.
func IsWAV(data []byte) bool {
	return len(data) >= 12 && bytes.Equal(data[0:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WAVE"))
}

// ParseWAV returns the format and PCM payload of a WAV clip. The data chunk
// may be shorter than its header claims when the upload was cut short.
func ParseWAV(data []byte) (Format, []byte, error) {
	if !IsWAV(data) {
		return Format{}, nil, ErrMalformed
	}

	var (
		format  Format
		haveFmt bool
	)
	pos := 12
	for pos+8 <= len(data) {
		id := string(data[pos : pos+4])
		size := int(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
		body := pos + 8
		switch id {
		case "fmt ":
			if size < 16 || body+16 > len(data) {
				return Format{}, nil, fmt.Errorf("%w: short fmt chunk", ErrMalformed)
			}
			format = Format{
				AudioFormat:   int(binary.LittleEndian.Uint16(data[body : body+2])),
				Channels:      int(binary.LittleEndian.Uint16(data[body+2 : body+4])),
				SampleRate:    int(binary.LittleEndian.Uint32(data[body+4 : body+8])),
				BitsPerSample: int(binary.LittleEndian.Uint16(data[body+14 : body+16])),
			}
			if format.Channels == 0 || format.SampleRate == 0 || format.BitsPerSample == 0 {
				return Format{}, nil, fmt.Errorf("%w: zero format field", ErrMalformed)
			}
			if format.SampleRate > maxSampleRate || format.Channels > maxChannels || format.BitsPerSample > maxBitsPerSample {
				return Format{}, nil, fmt.Errorf("%w: format out of range", ErrMalformed)
			}
			if format.ByteRate() == 0 {
				return Format{}, nil, fmt.Errorf("%w: zero byte rate", ErrMalformed)
			}
			haveFmt = true
		case "data":
			if !haveFmt {
				return Format{}, nil, fmt.Errorf("%w: data before fmt", ErrMalformed)
			}
			end := body + size
			if end > len(data) || end < body {
				end = len(data)
			}
			return format, data[body:end], nil
		}
		// chunks are word aligned
		pos = body + size + size%2
	}
	return Format{}, nil, fmt.Errorf("%w: no data chunk", ErrMalformed)
}

// EncodeWAV wraps PCM data with a canonical 44-byte header.
func EncodeWAV(pcm []byte, f Format) []byte {
	if f.AudioFormat == 0 {
		f.AudioFormat = 1
	}
	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(36+len(pcm)))
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], uint16(f.AudioFormat))
	binary.LittleEndian.PutUint16(header[22:24], uint16(f.Channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(f.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(f.ByteRate()))
	binary.LittleEndian.PutUint16(header[32:34], uint16(f.blockAlign()))
	binary.LittleEndian.PutUint16(header[34:36], uint16(f.BitsPerSample))
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(len(pcm)))
	return append(header, pcm...)
}

// bound cuts a raw recording to maxDuration and builds the clip.
func bound(data []byte, filename, contentType string, maxDuration time.Duration) (Clip, error) {
	if len(data) == 0 {
		return Clip{}, ErrEmptyClip
	}

	if IsWAV(data) {
		format, pcm, err := ParseWAV(data)
		if err != nil {
			return Clip{}, err
		}
		limit := int(int64(format.ByteRate()) * int64(maxDuration) / int64(time.Second))
		limit -= limit % format.blockAlign()
		truncated := false
		if maxDuration > 0 && limit >= 0 && len(pcm) > limit {
			pcm = pcm[:limit]
			truncated = true
		}
		if len(pcm) == 0 {
			return Clip{}, ErrEmptyClip
		}
		return Clip{
			Data:        EncodeWAV(pcm, format),
			ContentType: ContentTypeWAV,
			Filename:    filename,
			Truncated:   truncated,
			Duration:    time.Duration(int64(len(pcm)) * int64(time.Second) / int64(format.ByteRate())),
		}, nil
	}

	truncated := false
	if limit := maxCompressedBytes(maxDuration); limit > 0 && len(data) > limit {
		data = data[:limit]
		truncated = true
	}
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = ContentTypeMPEG
	}
	return Clip{Data: data, ContentType: contentType, Filename: filename, Truncated: truncated}, nil
}

func maxCompressedBytes(maxDuration time.Duration) int {
	if maxDuration <= 0 {
		return 0
	}
	return int(int64(CompressedByteRate) * int64(maxDuration) / int64(time.Second))
}

// RMSEnergy computes the root-mean-square energy of 16-bit little-endian PCM,
// normalised to [0, 1].
func RMSEnergy(pcm []byte) float64 {
	samples := len(pcm) / 2
	if samples == 0 {
		return 0
	}

	var sum float64
	for i := 0; i < len(pcm)-1; i += 2 {
		sample := int16(pcm[i]) | int16(pcm[i+1])<<8
		normalized := float64(sample) / 32768.0
		sum += normalized * normalized
	}
	return math.Sqrt(sum / float64(samples))
}

// IsSilent reports whether a 16-bit PCM WAV clip carries no speech energy.
// Compressed clips cannot be inspected and are never reported silent.
func (c Clip) IsSilent() bool {
	if !IsWAV(c.Data) {
		return false
	}
	format, pcm, err := ParseWAV(c.Data)
	if err != nil || format.BitsPerSample != 16 {
		return false
	}
	return RMSEnergy(pcm) < SilenceThreshold
}
