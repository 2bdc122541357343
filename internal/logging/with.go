package logging

import "log/slog"

func WithRun(logger *slog.Logger, id string, command string) *slog.Logger {
	return logger.With("run_id", id, "command", command)
}

func WithReader(logger *slog.Logger, path, kind, container string) *slog.Logger {
	return logger.With("path", path, "kind", kind, "container", container).WithGroup("reader")
}

func WithVocab(logger *slog.Logger, dir string) *slog.Logger {
	return logger.With("dir", dir).WithGroup("vocab")
}
