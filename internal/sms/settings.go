// Package sms is the alerting collaborator: it delivers a short SMS to the
// configured administrator whenever a ticket is created. Delivery is
// best-effort and never affects ticket persistence.
package sms

import (
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/helpdesk/internal/storage"
)

// Settings is the administrator-configured alert channel plus the delivery
// history, persisted as its own snapshot.
type Settings struct {
	Enabled     bool     `json:"smsEnabled"`
	AdminMobile string   `json:"adminMobile"`
	APIKey      string   `json:"smsApiKey"`
	History     []Record `json:"smsHistory,omitempty"`
}

// Record is one delivered alert, kept for the admin's SMS history view.
type Record struct {
	ID        string    `json:"id"`
	To        string    `json:"to"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
	Type      string    `json:"type"`
	TicketID  string    `json:"ticketId"`
}

// SettingsStore owns the settings snapshot.
type SettingsStore struct {
	mu       sync.Mutex
	storage  storage.Store
	settings Settings
}

// NewSettingsStore loads the settings snapshot (if present).
func NewSettingsStore(st storage.Store) (*SettingsStore, error) {
	s := &SettingsStore{storage: st}
	if _, err := st.Load(storage.SettingsSnapshot, &s.settings); err != nil {
		return nil, fmt.Errorf("load settings snapshot: %w", err)
	}
	return s, nil
}

// Get returns a copy of the current settings.
func (s *SettingsStore) Get() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.settings
	out.History = append([]Record(nil), s.settings.History...)
	return out
}

// Update replaces the channel configuration, keeping the history, and
// persists the snapshot.
func (s *SettingsStore) Update(enabled bool, adminMobile, apiKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prior := s.settings
	s.settings.Enabled = enabled
	s.settings.AdminMobile = adminMobile
	s.settings.APIKey = apiKey
	if err := s.storage.Save(storage.SettingsSnapshot, s.settings); err != nil {
		s.settings = prior
		return err
	}
	return nil
}

// AppendHistory records a delivered alert and persists the snapshot.
func (s *SettingsStore) AppendHistory(r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.History = append(s.settings.History, r)
	if err := s.storage.Save(storage.SettingsSnapshot, s.settings); err != nil {
		s.settings.History = s.settings.History[:len(s.settings.History)-1]
		return err
	}
	return nil
}
