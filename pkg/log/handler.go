package log

import (
	"context"
	"log/slog"

	"github.com/YuminosukeSato/arules/pkg/errors"
	cerrors "github.com/cockroachdb/errors"
)

// ErrFmtHandler is a slog handler that expands an ErrAttr value into the
// failing pipeline stage, an error code and the cockroachdb/errors stacktrace.
type ErrFmtHandler struct {
	next slog.Handler
}

// WrapByErrFmtHandler wraps handler so records carrying ErrAttr gain StageKey,
// ErrorCodeKey and StacktraceAttrKey where they apply.
func WrapByErrFmtHandler(handler slog.Handler) slog.Handler {
	return &ErrFmtHandler{next: handler}
}

func (h *ErrFmtHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return h.next.Enabled(ctx, l)
}

func (h *ErrFmtHandler) Handle(ctx context.Context, r slog.Record) error {
	var err error
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key != ErrAttrKey {
			return true
		}
		err, _ = attr.Value.Any().(error)
		return false
	})
	if err != nil {
		r.AddAttrs(errorAttrs(err)...)
	}
	return h.next.Handle(ctx, r)
}

func (h *ErrFmtHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ErrFmtHandler{next: h.next.WithAttrs(attrs)}
}

func (h *ErrFmtHandler) WithGroup(g string) slog.Handler {
	return &ErrFmtHandler{next: h.next.WithGroup(g)}
}

func errorAttrs(err error) []slog.Attr {
	var attrs []slog.Attr
	var se *errors.StageError
	if errors.As(err, &se) {
		attrs = append(attrs, slog.String(StageKey, se.Stage))
	}
	if code := errorCode(err); code != "" {
		attrs = append(attrs, slog.String(ErrorCodeKey, code))
	}
	if st := stacktrace(err); st != "" {
		attrs = append(attrs, slog.String(StacktraceAttrKey, st))
	}
	return attrs
}

// errorCode maps the error taxonomy onto the Error* attribute values.
func errorCode(err error) string {
	var ce *errors.ConfigurationError
	switch {
	case errors.As(err, &ce):
		return ErrorInvalidConfig
	case errors.Is(err, errors.ErrEmptyData):
		return ErrorEmptyData
	case errors.IsInvariantViolation(err):
		return ErrorInvariant
	default:
		return ""
	}
}

func stacktrace(err error) string {
	safeDetails := cerrors.GetSafeDetails(err).SafeDetails
	if len(safeDetails) > 0 {
		return safeDetails[0]
	}
	return ""
}
