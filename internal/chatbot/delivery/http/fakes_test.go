package http

import (
	"context"
	"fmt"
	"sync"

	"finance-chatbot/internal/chatbot/repository"
	"finance-chatbot/internal/entity"
)

type fakeAIRepository struct {
	reply string
	err   error
	calls int
}

func (f *fakeAIRepository) Generate(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.reply, f.err
}

type memChatLogRepository struct {
	mu   sync.Mutex
	logs []entity.ChatLog
	err  error
}

func (r *memChatLogRepository) Create(_ context.Context, chat *entity.ChatLog) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, *chat)
	return nil
}

type fakeYahooFinanceRepository struct {
	snapshots map[string]*entity.StockSnapshot
	err       error
	requested []string
}

func (f *fakeYahooFinanceRepository) GetLatest(_ context.Context, symbol string) (*entity.StockSnapshot, error) {
	f.requested = append(f.requested, symbol)
	if f.err != nil {
		return nil, f.err
	}
	snapshot, ok := f.snapshots[symbol]
	if !ok {
		return nil, fmt.Errorf("fake: unexpected symbol %s", symbol)
	}
	return snapshot, nil
}

type memStockLogRepository struct {
	mu        sync.Mutex
	snapshots []entity.StockSnapshot
}

func (r *memStockLogRepository) Create(_ context.Context, snapshot *entity.StockSnapshot) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots = append(r.snapshots, *snapshot)
	return fmt.Sprintf("%024x", len(r.snapshots)), nil
}

type memWatchlistRepository struct {
	mu      sync.Mutex
	entries []entity.WatchlistEntry
}

func (r *memWatchlistRepository) EnsureIndexes(context.Context) error { return nil }

func (r *memWatchlistRepository) Exists(_ context.Context, symbol string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.indexOf(symbol) >= 0, nil
}

func (r *memWatchlistRepository) Create(_ context.Context, entry *entity.WatchlistEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(entry.Symbol) >= 0 {
		return repository.ErrDuplicateSymbol
	}
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *memWatchlistRepository) FindAll(context.Context) ([]entity.WatchlistEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.WatchlistEntry(nil), r.entries...), nil
}

func (r *memWatchlistRepository) count(symbol string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.entries {
		if e.Symbol == symbol {
			n++
		}
	}
	return n
}

func (r *memWatchlistRepository) indexOf(symbol string) int {
	for i, e := range r.entries {
		if e.Symbol == symbol {
			return i
		}
	}
	return -1
}
