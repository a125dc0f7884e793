// Package tr передаёт объект транзакции через контекст запроса:
// usecase открывает транзакцию, репозитории достают её из контекста.
package tr

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/nutricart-tech/go-backend/pkg/e"
)

// TxKey — ключ контекста, под которым usecase-слой кладёт pgx.Tx.
const TxKey = "tx"

// TxFromCtx извлекает объект транзакции (pgx.Tx) из контекста.
// Вызов вне транзакции — ошибка программирования, не условие среды.
func TxFromCtx(ctx context.Context) (pgx.Tx, error) {
	tx, ok := ctx.Value(TxKey).(pgx.Tx)
	if !ok {
		return nil, e.ErrTransactionNotFound
	}

	return tx, nil
}
