package commands

import (
	"io"

	"github.com/go-logr/logr"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// newLogger returns a zap backed logger. Terminals get the console encoder,
// everything else JSON. Verbose enables debug level.
func newLogger(w io.Writer, verbose, terminal bool) logr.Logger {
	opts := []zap.Opts{
		zap.WriteTo(w),
		zap.UseDevMode(verbose),
	}
	if terminal {
		opts = append(opts, zap.ConsoleEncoder())
	} else {
		opts = append(opts, zap.JSONEncoder())
	}
	return zap.New(opts...)
}
