package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// TxPoolInterface はトランザクションを開始できる接続プール。
type TxPoolInterface interface {
	PoolInterface
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// txWrapper はpgx.TxをPoolInterfaceとして扱い、DAOをトランザクション内で再利用する。
type txWrapper struct {
	tx pgx.Tx
}

func (w *txWrapper) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return w.tx.Exec(ctx, sql, arguments...)
}

func (w *txWrapper) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return w.tx.QueryRow(ctx, sql, args...)
}

func (w *txWrapper) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return w.tx.Query(ctx, sql, args...)
}

// Close はno-op。終了はCommit/Rollbackで行う。
func (w *txWrapper) Close() {}

// TransactionManager は権限設定の全置換やリポジトリ削除を
// 単一トランザクションとして実行するためのヘルパー。
type TransactionManager struct {
	pool TxPoolInterface
}

func NewTransactionManager(pool TxPoolInterface) *TransactionManager {
	return &TransactionManager{pool: pool}
}

// WithTransaction はfnをトランザクション内で実行する。
// fnがエラーを返すかpanicした場合はロールバックし、正常終了時はコミットする。
func (tm *TransactionManager) WithTransaction(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx PoolInterface) error) error {
	tx, err := tm.pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("トランザクションの開始に失敗しました: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(ctx, &txWrapper{tx: tx}); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("ロールバックに失敗しました: %w (元のエラー: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("コミットに失敗しました: %w", err)
	}
	return nil
}

// DefaultTxOptions はpgxの既定分離レベル(ReadCommitted)を使う。
func DefaultTxOptions() pgx.TxOptions {
	return pgx.TxOptions{}
}
