// Package http はHTTPサーバーの生成と停止処理を提供します。
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// NewServer はAPI提供用に設定されたHTTPサーバーを作成します。
//
// 設定:
//   - ReadHeaderTimeout: ヘッダー受信の最大時間（Slowloris対策）
//   - ReadTimeout / WriteTimeout: リクエスト全体の読み書きの上限
//   - IdleTimeout: keep-alive接続の維持期間
//
// 注意:
//   - http.ListenAndServeはタイムアウトを持たないため、常にこのサーバーを使用すること
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}
}

// Run はctxがキャンセルされるまでsrvを提供し、その後shutdownTimeout以内に停止します。
func Run(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
