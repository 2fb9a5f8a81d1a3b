package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/logger"
)

// DefaultMaxListenDuration bounds a single listen.
const DefaultMaxListenDuration = 5 * time.Second

// MaxUploadBytes caps how much of a source is read before bounding.
const MaxUploadBytes = 25 << 20

// ErrDeviceBusy is returned when the microphone could not be acquired before
// the context ended.
var ErrDeviceBusy = errors.New("microphone busy")

// Microphone is the process-wide capture device. At most one listen holds it.
type Microphone struct {
	slot        chan struct{}
	maxDuration time.Duration
	held        atomic.Bool
}

// NewMicrophone creates a device that bounds every listen to maxDuration.
func NewMicrophone(maxDuration time.Duration) *Microphone {
	if maxDuration <= 0 {
		maxDuration = DefaultMaxListenDuration
	}
	return &Microphone{
		slot:        make(chan struct{}, 1),
		maxDuration: maxDuration,
	}
}

// Acquire blocks until the device is free or ctx is done. The returned release
// func is idempotent and must be called on every path.
func (m *Microphone) Acquire(ctx context.Context) (func(), error) {
	select {
	case m.slot <- struct{}{}:
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrDeviceBusy, ctx.Err())
	}
	m.held.Store(true)

	var once atomic.Bool
	return func() {
		if once.CompareAndSwap(false, true) {
			m.held.Store(false)
			<-m.slot
		}
	}, nil
}

// InUse reports whether a listen currently holds the device.
func (m *Microphone) InUse() bool {
	return m.held.Load()
}

// Listen holds the device for exactly the read of src and returns the clip
// bounded to the listen duration.
func (m *Microphone) Listen(ctx context.Context, src io.Reader, filename, contentType string) (Clip, error) {
	release, err := m.Acquire(ctx)
	if err != nil {
		return Clip{}, err
	}
	defer release()

	data, err := readAll(ctx, io.LimitReader(src, MaxUploadBytes))
	if err != nil {
		return Clip{}, fmt.Errorf("read audio: %w", err)
	}

	clip, err := bound(data, filename, contentType, m.maxDuration)
	if err != nil {
		return Clip{}, err
	}
	if clip.Truncated {
		logger.Info("audio clip truncated", "module", "audio", "action", "listen", "resource", "microphone", "result", "truncated", "limit", m.maxDuration.String())
	}
	return clip, nil
}

func readAll(ctx context.Context, r io.Reader) ([]byte, error) {
	buf := make([]byte, 0, 64*1024)
	chunk := make([]byte, 32*1024)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, err := r.Read(chunk)
		buf = append(buf, chunk[:n]...)
		if errors.Is(err, io.EOF) {
			return buf, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
