package middlewares

import (
	"context"
	"net/http"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/jylee2/record-api/internal/logger"
)

// TxMiddleware wraps an HTTP handler with a database transaction.
// The transaction is committed when the handler responds with a
// non-5xx status and rolled back otherwise, so a failed mutation
// never leaves partial writes behind.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			hooks := &postCommitHooks{}
			ctx := setTxToContext(r.Context(), tx)
			ctx = context.WithValue(ctx, postCommitKey{}, hooks)
			r = r.WithContext(ctx)

			next.ServeHTTP(rw, r)

			if rw.statusCode >= http.StatusInternalServerError {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			hooks.run()
		})
	}
}

type txKey struct{}

type postCommitKey struct{}

// postCommitHooks collects callbacks to run once the request
// transaction has committed.
type postCommitHooks struct {
	mu  sync.Mutex
	fns []func()
}

func (h *postCommitHooks) add(fn func()) {
	h.mu.Lock()
	h.fns = append(h.fns, fn)
	h.mu.Unlock()
}

func (h *postCommitHooks) run() {
	h.mu.Lock()
	fns := h.fns
	h.fns = nil
	h.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// RunAfterCommit schedules fn to run after the request transaction
// commits. Hooks are skipped when the transaction rolls back. Outside
// a transactional request this is a no-op.
func RunAfterCommit(ctx context.Context, fn func()) {
	hooks, _ := ctx.Value(postCommitKey{}).(*postCommitHooks)
	if hooks == nil {
		return
	}
	hooks.add(fn)
}

// setTxToContext stores a transaction in the context.
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetTxFromContext retrieves the transaction from the context.
// Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey{}).(*sqlx.Tx)
	return tx
}
