package searchsync

import (
	"sync"

	"gorm.io/gorm"
)

// StoreFactory returns the store for a visitor
type StoreFactory func(visitorID string) Store

// Hub hands out services that share one bus per visitor, so every page
// component and open tab of a visitor hears the same announcements.
type Hub struct {
	stores StoreFactory

	mu    sync.Mutex
	buses map[string]*Bus
}

// NewHub creates a hub using stores for persistence
func NewHub(stores StoreFactory) *Hub {
	return &Hub{
		stores: stores,
		buses:  make(map[string]*Bus),
	}
}

// NewGormHub creates a hub backed by the search_entries table
func NewGormHub(db *gorm.DB) *Hub {
	return NewHub(func(visitorID string) Store {
		return NewGormStore(db, visitorID)
	})
}

// Service returns the search-sync service for visitorID
func (h *Hub) Service(visitorID string) *Service {
	return NewService(h.stores(visitorID), visitorChannel{hub: h, visitorID: visitorID})
}

// Prune drops buses nobody is subscribed to and returns how many were removed.
// Buses are normally released on their last unsubscribe.
func (h *Hub) Prune() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	removed := 0
	for id, bus := range h.buses {
		if bus.Len() == 0 {
			delete(h.buses, id)
			removed++
		}
	}
	return removed
}

// Subscribers returns the number of live subscriptions for visitorID
func (h *Hub) Subscribers(visitorID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	if bus, ok := h.buses[visitorID]; ok {
		return bus.Len()
	}
	return 0
}

// visitorChannel resolves the visitor's bus on every call so Prune can never
// detach a subscriber from the bus publishers use.
type visitorChannel struct {
	hub       *Hub
	visitorID string
}

func (c visitorChannel) Subscribe(handler Handler) Unsubscribe {
	c.hub.mu.Lock()
	defer c.hub.mu.Unlock()

	bus, ok := c.hub.buses[c.visitorID]
	if !ok {
		bus = NewBus()
		c.hub.buses[c.visitorID] = bus
	}
	unsubscribe := bus.Subscribe(handler)

	var once sync.Once
	return func() {
		once.Do(func() {
			unsubscribe()
			c.hub.release(c.visitorID, bus)
		})
	}
}

// release drops the visitor's bus once its last subscriber has left
func (h *Hub) release(visitorID string, bus *Bus) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.buses[visitorID] == bus && bus.Len() == 0 {
		delete(h.buses, visitorID)
	}
}

func (c visitorChannel) Publish(msg Message) {
	c.hub.mu.Lock()
	bus, ok := c.hub.buses[c.visitorID]
	c.hub.mu.Unlock()

	if ok {
		bus.Publish(msg)
	}
}
