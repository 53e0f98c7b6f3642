// Package obslog provides the structured-logging sink used by the tree
// builder to report recoverable problems (unresolved SAN, skipped
// variations) without aborting the build.
package obslog

import (
	"io"

	"github.com/rs/zerolog"
)

// logger discards everything until a caller installs a sink via SetOutput.
var logger = zerolog.New(io.Discard).With().Timestamp().Logger()

// SetOutput redirects log output, e.g. to os.Stderr.
func SetOutput(w io.Writer) {
	logger = zerolog.New(w).With().Timestamp().Logger()
}

// Disable silences all log output.
func Disable() {
	logger = logger.Level(zerolog.Disabled)
}

// WarnUnresolvedSAN logs a SAN token that could not be matched to any
// legal move while building a game tree.
func WarnUnresolvedSAN(san, fen string, moveNumber int, cause error) {
	logger.Warn().
		Str("san", san).
		Str("fen", fen).
		Int("move_number", moveNumber).
		Err(cause).
		Msg("unresolved SAN move")
}

// WarnMalformedTag logs a PGN tag pair line that failed to parse.
func WarnMalformedTag(line string, cause error) {
	logger.Warn().Str("line", line).Err(cause).Msg("malformed tag pair")
}

// Debugf logs a low-level parse trace message.
func Debugf(format string, args ...interface{}) {
	logger.Debug().Msgf(format, args...)
}
