package pipeline

import (
	"github.com/rs/zerolog"

	pkgerrors "github.com/Conte777/audio-tldr/pkg/errors"
)

// optional marks a remote result that may be absent
type optional[T any] struct {
	value T
	ok    bool
}

// logErr turns a remote call result into an optional. A failure is logged
// at error level, counted, and returned as a RemoteServiceError so the caller
// can keep it on the outcome.
func logErr[T any](uc *UseCase, log zerolog.Logger, service string, value T, err error) (optional[T], error) {
	if err == nil {
		return optional[T]{value: value, ok: true}, nil
	}

	if !pkgerrors.IsRemoteServiceError(err) {
		err = pkgerrors.NewRemoteServiceError(service+" failed", err)
	}

	uc.metrics.RecordRemoteFailure(service)
	log.Error().Err(err).Str("service", service).Msg("Remote service call failed")

	return optional[T]{}, err
}
