package resolver

import (
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
)

//encore:middleware target=tag:requestlog
func RequestLog(req middleware.Request, next middleware.Next) middleware.Response {
	start := time.Now()
	resp := next(req)
	logRequest(req.Data().Path, time.Since(start), resp.Err)
	return resp
}

func logRequest(path string, took time.Duration, err error) {
	if err == nil {
		rlog.Info("request served", "path", path, "took_ms", took.Milliseconds())
		return
	}

	code := errs.Code(err)
	switch code {
	case errs.InvalidArgument, errs.NotFound:
		rlog.Warn("request rejected", "path", path, "code", code.String(), "took_ms", took.Milliseconds(), "error", err)
	default:
		rlog.Error("request failed", "path", path, "code", code.String(), "took_ms", took.Milliseconds(), "error", err)
	}
}
