// Package cart persists each user's staged purchases and saved-template
// library through the key-value store.
package cart

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"celora/internal/account"
	"celora/internal/domain"
	"celora/internal/kv"
)

// Service owns cart and library state for all users. State is read-after-write
// consistent within one store.
type Service struct {
	store  kv.Store
	logger zerolog.Logger
}

// NewService wires a Service over the key-value store.
func NewService(store kv.Store, logger zerolog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Cart loads a user's cart. A corrupted blob degrades to an empty cart and
// the entry is cleared.
func (s *Service) Cart(userID string) (domain.Cart, error) {
	key := account.CartKey(userID)
	raw, ok, err := s.store.Get(key)
	if err != nil {
		return domain.Cart{}, err
	}
	if !ok {
		return domain.Cart{}, nil
	}
	var cart domain.Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		s.logger.Warn().Str("user_id", userID).Msg("clearing corrupted cart blob")
		_ = s.store.Remove(key)
		return domain.Cart{}, nil
	}
	return cart, nil
}

// Add stages an item. Adding an item already in the cart is a no-op.
func (s *Service) Add(userID string, item domain.CartItem) (domain.Cart, error) {
	cart, err := s.Cart(userID)
	if err != nil {
		return domain.Cart{}, err
	}
	if cart.Contains(item.ID) {
		return cart, nil
	}
	cart.Items = append(cart.Items, item)
	return cart, s.save(userID, cart)
}

// Remove drops an item by ID. Removing an absent item is a no-op.
func (s *Service) Remove(userID, itemID string) (domain.Cart, error) {
	cart, err := s.Cart(userID)
	if err != nil {
		return domain.Cart{}, err
	}
	items := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ID != itemID {
			items = append(items, item)
		}
	}
	cart.Items = items
	return cart, s.save(userID, cart)
}

// Clear removes all staged items.
func (s *Service) Clear(userID string) error {
	return s.store.Remove(account.CartKey(userID))
}

func (s *Service) save(userID string, cart domain.Cart) error {
	blob, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.store.Set(account.CartKey(userID), string(blob))
}

// Library returns the user's saved template IDs in save order.
func (s *Service) Library(userID string) ([]string, error) {
	key := account.LibraryKey(userID)
	raw, ok, err := s.store.Get(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		s.logger.Warn().Str("user_id", userID).Msg("clearing corrupted library blob")
		_ = s.store.Remove(key)
		return nil, nil
	}
	return ids, nil
}

// SaveToLibrary records a template ID. Saving twice is a no-op.
func (s *Service) SaveToLibrary(userID, templateID string) error {
	ids, err := s.Library(userID)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == templateID {
			return nil
		}
	}
	ids = append(ids, templateID)
	return s.saveLibrary(userID, ids)
}

// RemoveFromLibrary drops a saved template ID.
func (s *Service) RemoveFromLibrary(userID, templateID string) error {
	ids, err := s.Library(userID)
	if err != nil {
		return err
	}
	out := ids[:0]
	for _, id := range ids {
		if id != templateID {
			out = append(out, id)
		}
	}
	return s.saveLibrary(userID, out)
}

// InLibrary reports whether the template is saved.
func (s *Service) InLibrary(userID, templateID string) (bool, error) {
	ids, err := s.Library(userID)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == templateID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Service) saveLibrary(userID string, ids []string) error {
	blob, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return s.store.Set(account.LibraryKey(userID), string(blob))
}
