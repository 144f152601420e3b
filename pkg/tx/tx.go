package tx

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// Manager выполняет функцию в транзакции; вложенные вызовы переиспользуют
// транзакцию из контекста.
type Manager struct {
	internal *manager.Manager
}

func New(db pgxv5.Transactional) *Manager {
	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
	}
}

// Do - serializable. Нужен там, где инвариант держится на чтении
// (не больше одной активной смены на пару водитель-связь).
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.do(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

// DoReadCommitted для изменений, которые сами берут блокировку строки (SELECT ... FOR UPDATE).
func (m *Manager) DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.do(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (m *Manager) do(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context) error) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(options),
	)
	return m.internal.DoWithSettings(ctx, txSettings, fn)
}
