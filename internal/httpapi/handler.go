package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/obiente/scribed/internal/audio"
	"github.com/obiente/scribed/internal/config"
	"github.com/obiente/scribed/internal/dispatch"
)

type handler struct {
	cfg        config.Config
	dispatcher *dispatch.Dispatcher
}

type transcribeResponse struct {
	Text string `json:"text"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Engine    string `json:"engine"`
	ModelPath string `json:"model_path"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Engine:    h.cfg.Engine,
		ModelPath: h.cfg.ModelPath,
	})
}

func (h *handler) transcribe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	started := time.Now()

	// Content-Type is decided before touching the body, so a bad type
	// answers 415 even when the payload is oversized.
	ct := r.Header.Get("Content-Type")
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	switch ct {
	case "application/octet-stream", "audio/wav", "audio/x-wav":
	default:
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/octet-stream or audio/wav")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, int64(h.cfg.MaxBytes)))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "read body: "+err.Error())
		return
	}

	var samples []float32
	switch ct {
	case "application/octet-stream":
		samples, err = audio.DecodePCM16LE(body)
	default: // audio/wav, audio/x-wav
		var rate int
		samples, rate, err = audio.DecodeWAV(body)
		if err == nil && rate != audio.SampleRate {
			samples = audio.ResampleLinear(samples, rate, audio.SampleRate)
		}
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(samples) == 0 {
		writeError(w, http.StatusBadRequest, "no audio samples found")
		return
	}

	log.Info().Int("bytes", len(body)).Int("samples", len(samples)).Msg("received audio")

	text, err := h.dispatcher.Submit(r.Context(), samples)
	if err != nil {
		log.Warn().Err(err).Msg("transcription failed")
		writeError(w, statusFor(err), err.Error())
		return
	}

	w.Header().Set("Connection", "keep-alive")
	writeJSON(w, http.StatusOK, transcribeResponse{Text: text})
	log.Info().Dur("took", time.Since(started)).Msg("transcription completed")
}

// statusFor distinguishes retryable capacity problems (503) from
// per-job processing failures (500) so clients can choose between
// retry-with-backoff and giving up.
func statusFor(err error) int {
	if errors.Is(err, dispatch.ErrQueueFull) || errors.Is(err, dispatch.ErrWorkerUnavailable) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
