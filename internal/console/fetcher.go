package console

import (
	"context"

	"go.uber.org/zap"

	"salestrack/internal/feed"
	"salestrack/internal/logger"
	"salestrack/internal/remote"
)

// UnknownOwnerName replaces an owner name the server could not resolve,
// typically because the salesperson was deleted after the row was written.
const UnknownOwnerName = "Desconocido"

// Fetcher refreshes the store's replicas from the remote API. Transport
// failures never propagate to callers: the previous replica stays on screen
// and the failure goes to the log, each collection independent of the rest.
type Fetcher struct {
	store  *Store
	remote remote.Store
}

func NewFetcher(store *Store, remoteStore remote.Store) *Fetcher {
	return &Fetcher{store: store, remote: remoteStore}
}

func (f *Fetcher) FetchSalespeople(ctx context.Context) {
	seq := f.store.Begin(feed.CollectionSalespeople)
	rows, err := f.remote.ListSalespeople(ctx)
	if err != nil {
		logger.Error("Failed to fetch salespeople", zap.Error(err))
		return
	}
	f.store.ReplaceSalespeople(seq, rows)
}

func (f *Fetcher) FetchVisits(ctx context.Context, salespersonID uint) {
	seq := f.store.Begin(feed.CollectionVisits)
	rows, err := f.remote.ListVisits(ctx, salespersonID)
	if err != nil {
		logger.Error("Failed to fetch visits", zap.Error(err))
		return
	}
	for i := range rows {
		if rows[i].SalespersonName == "" {
			rows[i].SalespersonName = UnknownOwnerName
		}
	}
	f.store.ReplaceVisits(seq, rows)
}

func (f *Fetcher) FetchOrders(ctx context.Context, salespersonID uint) {
	seq := f.store.Begin(feed.CollectionOrders)
	rows, err := f.remote.ListOrders(ctx, salespersonID)
	if err != nil {
		logger.Error("Failed to fetch orders", zap.Error(err))
		return
	}
	for i := range rows {
		if rows[i].SalespersonName == "" {
			rows[i].SalespersonName = UnknownOwnerName
		}
	}
	f.store.ReplaceOrders(seq, rows)
}

func (f *Fetcher) FetchClients(ctx context.Context) {
	seq := f.store.Begin(feed.CollectionClients)
	rows, err := f.remote.ListClients(ctx)
	if err != nil {
		logger.Error("Failed to fetch clients", zap.Error(err))
		return
	}
	for i := range rows {
		if rows[i].SalespersonName == "" {
			rows[i].SalespersonName = UnknownOwnerName
		}
	}
	f.store.ReplaceClients(seq, rows)
}

// FetchAll refreshes every collection. A failing collection only skips its
// own replacement.
func (f *Fetcher) FetchAll(ctx context.Context) {
	f.FetchSalespeople(ctx)
	f.FetchVisits(ctx, 0)
	f.FetchOrders(ctx, 0)
	f.FetchClients(ctx)
}
