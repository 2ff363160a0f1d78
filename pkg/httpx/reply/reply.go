package reply

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"djtracker/pkg/contextx"
	"djtracker/pkg/errcodes"
	"djtracker/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
}

type coder interface {
	ErrorCode() failure.ErrorCode
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

// Error writes err as an error body. Client errors are logged at warn level,
// everything else at error level. Uncategorised errors are reported as 500
// without leaking their text.
func Error(ctx context.Context, w http.ResponseWriter, err error) {
	status, defaultCode := classify(err)

	level := slog.LevelError
	if status < http.StatusInternalServerError {
		level = slog.LevelWarn
	}

	logger(ctx).Log(ctx, level, "request failed", slog.Int(logx.FieldResponseStatus, status), logx.Error(err))

	response := errorResponse{
		Code:      failure.Code(err).String(),
		Message:   failure.Description(err),
		SupportID: supportID(ctx),
	}

	var c coder
	if response.Code == "" && errors.As(err, &c) {
		response.Code = c.ErrorCode().String()
	}

	if response.Code == "" {
		response.Code = defaultCode.String()
	}

	JSON(ctx, w, status, response)
}

// NotFound answers unknown routes with the regular error body.
func NotFound(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	JSON(ctx, w, http.StatusNotFound, errorResponse{
		Code:      errcodes.NotFound.String(),
		Message:   "route not found",
		SupportID: supportID(ctx),
	})
}

func classify(err error) (int, failure.ErrorCode) {
	switch {
	case failure.IsInvalidArgumentError(err):
		return http.StatusBadRequest, errcodes.ValidationError
	case failure.IsNotFoundError(err):
		return http.StatusNotFound, errcodes.NotFound
	case failure.IsUnprocessableEntityError(err):
		return http.StatusUnprocessableEntity, ""
	default:
		return http.StatusInternalServerError, errcodes.InternalServerError
	}
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
