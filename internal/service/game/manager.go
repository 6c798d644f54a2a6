package game

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Rayou-Ryan/Puissance-4/internal/domain"
	"github.com/Rayou-Ryan/Puissance-4/internal/locale"
	"github.com/Rayou-Ryan/Puissance-4/pkg/uid"
)

// TableManager keeps the tables opened through the HTTP adapter.
type TableManager struct {
	tables   map[string]*Table // tableID → Table
	mu       sync.RWMutex
	notifier Notifier
	logger   *zap.Logger
	newID    func() string
	now      func() time.Time
}

func NewTableManager(notifier Notifier, logger *zap.Logger) *TableManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TableManager{
		tables:   make(map[string]*Table),
		notifier: notifier,
		logger:   logger.Named("table"),
		newID:    uid.GenerateTableID,
		now:      time.Now,
	}
}

// Create opens a table. A configuration error is returned as is and no
// table is registered.
func (m *TableManager) Create(cfg domain.GameConfig, tr *locale.Translator) (*Table, error) {
	table, err := newTable(m.newID(), cfg, tr, m.notifier, m.logger, m.now)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.tables[table.ID] = table
	m.mu.Unlock()

	cfg = table.Config()
	m.logger.Info("table created",
		zap.String("table_id", table.ID),
		zap.Int("rows", cfg.Rows),
		zap.Int("cols", cfg.Cols),
	)
	return table, nil
}

func (m *TableManager) Get(tableID string) (*Table, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	table, exists := m.tables[tableID]
	return table, exists
}

func (m *TableManager) Remove(tableID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.removeTableLocked(tableID)
}

// removeTableLocked removes a table without acquiring the lock (caller must hold it)
func (m *TableManager) removeTableLocked(tableID string) error {
	if _, exists := m.tables[tableID]; !exists {
		return ErrTableNotFound
	}

	delete(m.tables, tableID)
	if m.notifier != nil {
		m.notifier.CloseTable(tableID)
	}
	m.logger.Info("table removed", zap.String("table_id", tableID))
	return nil
}

func (m *TableManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tables)
}

// CleanupIdle drops the tables nobody touched for longer than maxIdle.
func (m *TableManager) CleanupIdle(maxIdle time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	now := m.now()
	for tableID, table := range m.tables {
		if now.Sub(table.LastActivity()) > maxIdle {
			if err := m.removeTableLocked(tableID); err == nil {
				count++
			}
		}
	}

	if count > 0 {
		m.logger.Info("idle tables removed", zap.Int("count", count))
	}
	return count
}
