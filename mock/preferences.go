package mock

import (
	"context"

	"github.com/fwojciec/pagesum"
)

var (
	_ pagesum.KeyValueStore     = (*KeyValueStore)(nil)
	_ pagesum.PreferenceService = (*PreferenceService)(nil)
)

// KeyValueStore is a mock implementation of pagesum.KeyValueStore.
type KeyValueStore struct {
	GetFn    func(ctx context.Context, key string) (string, bool, error)
	SetFn    func(ctx context.Context, key, value string) error
	DeleteFn func(ctx context.Context, key string) error
}

func (s *KeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	return s.GetFn(ctx, key)
}

func (s *KeyValueStore) Set(ctx context.Context, key, value string) error {
	return s.SetFn(ctx, key, value)
}

func (s *KeyValueStore) Delete(ctx context.Context, key string) error {
	return s.DeleteFn(ctx, key)
}

// PreferenceService is a mock implementation of pagesum.PreferenceService.
type PreferenceService struct {
	SelectedProviderFn func(ctx context.Context) (pagesum.Provider, error)
	SelectProviderFn   func(ctx context.Context, provider pagesum.Provider) error
	CredentialFn       func(ctx context.Context, provider pagesum.Provider) (string, error)
	SetCredentialFn    func(ctx context.Context, provider pagesum.Provider, credential string) error
}

func (s *PreferenceService) SelectedProvider(ctx context.Context) (pagesum.Provider, error) {
	return s.SelectedProviderFn(ctx)
}

func (s *PreferenceService) SelectProvider(ctx context.Context, provider pagesum.Provider) error {
	return s.SelectProviderFn(ctx, provider)
}

func (s *PreferenceService) Credential(ctx context.Context, provider pagesum.Provider) (string, error) {
	return s.CredentialFn(ctx, provider)
}

func (s *PreferenceService) SetCredential(ctx context.Context, provider pagesum.Provider, credential string) error {
	return s.SetCredentialFn(ctx, provider, credential)
}
