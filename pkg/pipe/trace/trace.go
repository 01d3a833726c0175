package trace

import (
	"time"

	"github.com/rs/zerolog"
)

// Tap returns a pass-through stage that debug-logs the value flowing past
// the named point.
func Tap[T any](log zerolog.Logger, stage string) func(T) T {
	return func(value T) T {
		log.Debug().Str("stage", stage).Interface("value", value).Msg("pass")
		return value
	}
}

// Stage wraps fn, debug-logging the stage name and elapsed time on every
// call. The wrapped stage is otherwise unchanged.
func Stage[In, Out any](log zerolog.Logger, name string, fn func(In) Out) func(In) Out {
	return func(in In) Out {
		start := time.Now()
		out := fn(in)
		log.Debug().Str("stage", name).Dur("elapsed", time.Since(start)).Msg("done")
		return out
	}
}

// Recover returns a TryCatch handler that logs the failure at warn level
// and substitutes fallback.
func Recover[In, Out any](log zerolog.Logger, stage string, fallback Out) func(error, In) Out {
	return func(err error, input In) Out {
		log.Warn().Str("stage", stage).Err(err).Interface("input", input).Msg("recovered")
		return fallback
	}
}
