package store

import (
	"io"
	"log/slog"
)

// MutationKind labels the write operation reported to the observer.
type MutationKind string

const (
	MutationAdd     MutationKind = "add"
	MutationUpdate  MutationKind = "update"
	MutationDelete  MutationKind = "delete"
	MutationRestore MutationKind = "restore"
	MutationImport  MutationKind = "import"
	MutationRevert  MutationKind = "snapshot-restore"
)

// MutationObserver receives store mutation telemetry.
type MutationObserver interface {
	ObserveMutation(kind MutationKind, activityID string, fields map[string]any)
}

// NoopMutationObserver ignores all mutations.
type NoopMutationObserver struct{}

func (NoopMutationObserver) ObserveMutation(MutationKind, string, map[string]any) {}

type logMutationObserver struct {
	logger *slog.Logger
}

// NewLogMutationObserver writes mutation events to the provided writer.
func NewLogMutationObserver(w io.Writer) MutationObserver {
	if w == nil {
		return NoopMutationObserver{}
	}
	return &logMutationObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logMutationObserver) ObserveMutation(kind MutationKind, activityID string, fields map[string]any) {
	attrs := make([]any, 0, 4+len(fields)*2)
	attrs = append(attrs, "mutation", string(kind), "activity_id", activityID)
	for k, v := range fields {
		attrs = append(attrs, k, v)
	}
	o.logger.Info("store_mutation", attrs...)
}
