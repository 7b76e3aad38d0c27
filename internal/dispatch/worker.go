package dispatch

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/obiente/scribed/internal/audio"
	"github.com/obiente/scribed/internal/engine"
)

// work is the worker loop. It is the only goroutine that touches the
// engine, so the model handle needs no locking. The loop survives any
// per-job engine failure and exits only once the queue is closed and
// drained.
func (d *Dispatcher) work(eng engine.Engine) {
	defer close(d.stopped)

	started := time.Now()
	if _, err := eng.Transcribe(audio.SilentChunk()); err != nil {
		log.Warn().Err(err).Msg("warm-up inference failed")
	} else {
		log.Info().Dur("took", time.Since(started)).Msg("transcription worker warmed up")
	}

	for j := range d.jobs {
		text, err := eng.Transcribe(j.samples)
		if err != nil {
			j.reply <- result{err: &TranscriptionError{Detail: err.Error()}}
			continue
		}
		j.reply <- result{text: text}
	}
	log.Info().Msg("transcription worker stopped")
}
