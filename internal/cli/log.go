package cli

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// maxVerbosity keeps -verbosity inside zapcore.Level's int8 range.
const maxVerbosity = 127

// newLogger returns a development-style zap logger writing to w, exposed as a
// logr.Logger. logr's V(n) maps to zap level -n, so verbosity n enables V(0..n).
func newLogger(w io.Writer, verbosity int) logr.Logger {
	if verbosity > maxVerbosity {
		verbosity = maxVerbosity
	}
	enc := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(zapcore.Level(-verbosity)),
	)

	return zapr.NewLogger(zap.New(core))
}
