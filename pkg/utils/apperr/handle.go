package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/visastat/pkg/domain/model"
)

// Handle logs err. Errors caused by user input are logged at warn level.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	logger := ctxlog.From(ctx)
	if goerr.HasTag(err, model.ErrTagValidation) {
		logger.Warn("rejected input", "error", err)
		return
	}
	logger.Error("application error", "error", err)
}
