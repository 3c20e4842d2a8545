package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"jarvis-backend/internal/memory/repository"
	"jarvis-backend/internal/model"
	pkgLog "jarvis-backend/pkg/log"
)

const (
	prefCacheSize = 1024
	prefCacheTTL  = 5 * time.Minute
)

type implProvider struct {
	l     pkgLog.Logger
	store repository.Store
	cache *expirable.LRU[string, map[string]string]
}

// New creates a new memory Provider instance backed by the given store.
func New(l pkgLog.Logger, store repository.Store) *implProvider {
	return &implProvider{
		l:     l,
		store: store,
		cache: expirable.NewLRU[string, map[string]string](prefCacheSize, nil, prefCacheTTL),
	}
}

// intentPrefKeys lists the preference keys relevant to each intent kind.
var intentPrefKeys = map[model.IntentKind][]string{
	model.IntentSetAlarm:      {model.PrefTimezone, model.PrefAlarmTone, model.PrefUsualWakeup},
	model.IntentDeleteAlarm:   {model.PrefTimezone},
	model.IntentSearchFlights: {model.PrefAirline, model.PrefMaxPrice, model.PrefSeat, model.PrefFlightType},
	model.IntentBookFlight:    {model.PrefAirline, model.PrefMaxPrice, model.PrefSeat, model.PrefFlightType},
}
