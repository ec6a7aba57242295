// Package audio turns simulation events into synthesized sound effects
// played through the beep speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"lasthuman/internal/sim"
)

const sampleRate beep.SampleRate = 48000

// Sink plays a sound for each event it receives. It satisfies
// sim.EventSink. A Sink whose speaker failed to start stays silent.
type Sink struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	volume  float64
	enabled bool
	last    [soundCount]time.Time
	now     func() time.Time
	log     *zap.Logger
}

// New returns a silent sink; call Init to open the speaker.
func New(volume float64, log *zap.Logger) *Sink {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sink{
		mixer:  &beep.Mixer{},
		volume: volume,
		now:    time.Now,
		log:    log.Named("audio"),
	}
}

// Init opens the speaker and starts the mixer. On error the sink keeps
// working as a no-op.
func (s *Sink) Init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(s.mixer)

	s.mu.Lock()
	s.enabled = true
	s.mu.Unlock()
	s.log.Debug("speaker ready", zap.Int("rate", int(sampleRate)))
	return nil
}

// SetVolume changes the gain of sounds started after the call.
func (s *Sink) SetVolume(v float64) {
	s.mu.Lock()
	s.volume = v
	s.mu.Unlock()
}

func (s *Sink) Emit(e sim.Event) {
	snd := SoundFor(e.Kind)
	if snd == SoundNone {
		return
	}

	s.mu.Lock()
	ok := s.enabled && s.volume > 0 && s.allow(snd, s.now())
	vol := s.volume
	s.mu.Unlock()
	if !ok {
		return
	}

	stream := withGain(Synthesize(snd, sampleRate), vol)
	speaker.Lock()
	s.mixer.Add(stream)
	speaker.Unlock()
}

// allow reports whether snd may start at now and records it if so.
func (s *Sink) allow(snd Sound, now time.Time) bool {
	if gap := minGap[snd]; gap > 0 && now.Sub(s.last[snd]) < gap {
		return false
	}
	s.last[snd] = now
	return true
}

// Close stops playback. The sink stays silent afterwards.
func (s *Sink) Close() {
	s.mu.Lock()
	was := s.enabled
	s.enabled = false
	s.mu.Unlock()
	if was {
		speaker.Lock()
		s.mixer.Clear()
		speaker.Unlock()
		speaker.Close()
	}
}

var _ sim.EventSink = (*Sink)(nil)
