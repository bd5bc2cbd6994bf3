package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/nikolayk812/storefront-client/internal/domain"
	"github.com/nikolayk812/storefront-client/internal/dto"
	"github.com/nikolayk812/storefront-client/internal/port"
	"golang.org/x/sync/errgroup"
)

// State maps the client state onto individual keys of a KeyValueStore.
type State struct {
	kv port.KeyValueStore
}

var _ port.StateRepository = (*State)(nil)

func NewState(kv port.KeyValueStore) (*State, error) {
	if kv == nil {
		return nil, fmt.Errorf("kv is nil")
	}

	return &State{kv: kv}, nil
}

// Load reads every key in parallel. Absent keys and values that fail to
// decode leave the field at its default; the latter are reported in the
// joined error while the returned state stays usable.
func (r *State) Load(ctx context.Context) (domain.AppState, error) {
	state := domain.DefaultAppState()

	var (
		g    errgroup.Group
		errs = make([]error, 6)
	)

	g.Go(func() error {
		errs[0] = r.read(ctx, KeyTheme, func(v string) error {
			theme, err := domain.ParseTheme(v)
			if err != nil {
				return err
			}
			state.Theme = theme
			return nil
		})
		return nil
	})

	g.Go(func() error {
		errs[1] = r.read(ctx, KeySession, func(v string) error {
			session, err := decodeSession(v)
			if err != nil {
				return err
			}
			state.Session = session
			return nil
		})
		return nil
	})

	g.Go(func() error {
		errs[2] = r.read(ctx, KeyCartItems, func(v string) error {
			var records []dto.CartLine
			if err := json.Unmarshal([]byte(v), &records); err != nil {
				return fmt.Errorf("json.Unmarshal: %w", err)
			}
			lines, err := dto.CartLinesToDomain(records)
			if err != nil {
				return fmt.Errorf("dto.CartLinesToDomain: %w", err)
			}
			state.Cart.Lines = lines
			return nil
		})
		return nil
	})

	g.Go(func() error {
		errs[3] = r.read(ctx, KeyShippingAddress, func(v string) error {
			var record dto.Address
			if err := json.Unmarshal([]byte(v), &record); err != nil {
				return fmt.Errorf("json.Unmarshal: %w", err)
			}
			state.Cart.ShippingAddress = record.ToDomain()
			return nil
		})
		return nil
	})

	g.Go(func() error {
		errs[4] = r.read(ctx, KeyPaymentMethod, func(v string) error {
			state.Cart.PaymentMethod = dto.DecodePaymentMethod(v)
			return nil
		})
		return nil
	})

	g.Go(func() error {
		errs[5] = r.read(ctx, KeySavedAddresses, func(v string) error {
			var records []dto.Address
			if err := json.Unmarshal([]byte(v), &records); err != nil {
				return fmt.Errorf("json.Unmarshal: %w", err)
			}
			state.SavedAddresses = dto.AddressesToDomain(records)
			return nil
		})
		return nil
	})

	_ = g.Wait()

	return state, errors.Join(errs...)
}

func (r *State) read(ctx context.Context, key string, apply func(string) error) error {
	value, ok, err := r.kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("kv.Get[%s]: %w", key, err)
	}
	if !ok {
		return nil
	}

	if err := apply(value); err != nil {
		return fmt.Errorf("key[%s]: %w", key, err)
	}

	return nil
}

func decodeSession(v string) (*domain.Session, error) {
	if v == "null" {
		return nil, nil
	}

	var record dto.Session
	if err := json.Unmarshal([]byte(v), &record); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	session := record.ToDomain()
	return &session, nil
}

func (r *State) SaveTheme(ctx context.Context, theme domain.Theme) error {
	if err := r.kv.Set(ctx, KeyTheme, string(theme)); err != nil {
		return fmt.Errorf("kv.Set[%s]: %w", KeyTheme, err)
	}
	return nil
}

func (r *State) SaveSession(ctx context.Context, session domain.Session) error {
	return r.setJSON(ctx, KeySession, dto.SessionFromDomain(session))
}

func (r *State) SaveCartLines(ctx context.Context, lines []domain.CartLine) error {
	return r.setJSON(ctx, KeyCartItems, dto.CartLinesFromDomain(lines))
}

func (r *State) SaveShippingAddress(ctx context.Context, addr domain.ShippingAddress) error {
	return r.setJSON(ctx, KeyShippingAddress, dto.AddressFromDomain(addr))
}

func (r *State) SaveSavedAddresses(ctx context.Context, addrs []domain.ShippingAddress) error {
	return r.setJSON(ctx, KeySavedAddresses, dto.AddressesFromDomain(addrs))
}

// SavePaymentMethod removes the key when no method is chosen.
func (r *State) SavePaymentMethod(ctx context.Context, pm domain.PaymentMethod) error {
	value, err := dto.EncodePaymentMethod(pm)
	if err != nil {
		return fmt.Errorf("dto.EncodePaymentMethod: %w", err)
	}

	if value == "" {
		if err := r.kv.Remove(ctx, KeyPaymentMethod); err != nil {
			return fmt.Errorf("kv.Remove[%s]: %w", KeyPaymentMethod, err)
		}
		return nil
	}

	if err := r.kv.Set(ctx, KeyPaymentMethod, value); err != nil {
		return fmt.Errorf("kv.Set[%s]: %w", KeyPaymentMethod, err)
	}
	return nil
}

func (r *State) PurgeSession(ctx context.Context) error {
	if err := r.kv.RemoveMany(ctx, slices.Clone(SessionKeys)); err != nil {
		return fmt.Errorf("kv.RemoveMany: %w", err)
	}
	return nil
}

func (r *State) setJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("json.Marshal[%s]: %w", key, err)
	}

	if err := r.kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("kv.Set[%s]: %w", key, err)
	}
	return nil
}
