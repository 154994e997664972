// Package production provides production integrations for the state
// container: structured transition logging and trace export.
package production

import (
	"go.uber.org/zap"

	"github.com/comalice/reducerx/internal/core"
)

// ZapObserver is an Observer that logs every committed transition through a
// zap logger. States are logged with zap.Any, so anything the encoder can
// reflect over works; keep states small if this observer is on a hot path.
type ZapObserver[S, A any] struct {
	logger *zap.Logger
}

// NewZapObserver creates a ZapObserver writing to logger.
func NewZapObserver[S, A any](logger *zap.Logger) *ZapObserver[S, A] {
	return &ZapObserver[S, A]{logger: logger}
}

// OnCommit logs the transition at info level.
func (o *ZapObserver[S, A]) OnCommit(action A, prev, next S) {
	o.logger.Info("state committed",
		zap.String("action", core.Describe(action)),
		zap.Any("prev", prev),
		zap.Any("next", next),
	)
}

var _ core.Observer[int, int] = (*ZapObserver[int, int])(nil)
