package pagesum

import (
	"context"
	"strings"
)

// Storage keys. The names match the ones used by earlier releases so
// existing preference data keeps working.
const (
	keySelectedProvider = "selectedModel"
	keyCredentialSuffix = "ApiKey"
)

// KeyValueStore persists string values by key.
type KeyValueStore interface {
	// Get returns the value stored under key and whether it exists.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any existing value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// PreferenceService reads and writes user preferences.
type PreferenceService interface {
	// SelectedProvider returns the last selected provider, or DefaultProvider
	// if none was selected or the stored value names an unsupported provider.
	SelectedProvider(ctx context.Context) (Provider, error)

	// SelectProvider persists provider as the selected provider.
	SelectProvider(ctx context.Context, provider Provider) error

	// Credential returns the stored credential for provider.
	// An empty string means no credential is stored.
	Credential(ctx context.Context, provider Provider) (string, error)

	// SetCredential stores credential for provider. Surrounding whitespace
	// is trimmed; an empty credential deletes the stored one.
	SetCredential(ctx context.Context, provider Provider, credential string) error
}

var _ PreferenceService = (*Preferences)(nil)

// Preferences implements PreferenceService on top of a KeyValueStore.
type Preferences struct {
	store KeyValueStore
}

// NewPreferences creates Preferences backed by store.
func NewPreferences(store KeyValueStore) *Preferences {
	return &Preferences{store: store}
}

// SelectedProvider returns the last selected provider.
// Values left behind by retired providers (such as "perplexity") are
// ignored and left in place until the user selects a provider.
func (p *Preferences) SelectedProvider(ctx context.Context) (Provider, error) {
	v, ok, err := p.store.Get(ctx, keySelectedProvider)
	if err != nil {
		return ProviderUnknown, err
	}
	if !ok {
		return DefaultProvider, nil
	}
	if provider := Provider(v); provider.Valid() {
		return provider, nil
	}
	return DefaultProvider, nil
}

// SelectProvider persists provider as the selected provider.
func (p *Preferences) SelectProvider(ctx context.Context, provider Provider) error {
	if !provider.Valid() {
		return Errorf(EINVALID, "unknown provider %q", provider)
	}
	return p.store.Set(ctx, keySelectedProvider, string(provider))
}

// Credential returns the stored credential for provider.
func (p *Preferences) Credential(ctx context.Context, provider Provider) (string, error) {
	if !provider.Valid() {
		return "", Errorf(EINVALID, "unknown provider %q", provider)
	}
	v, _, err := p.store.Get(ctx, credentialKey(provider))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(v), nil
}

// SetCredential stores credential for provider.
func (p *Preferences) SetCredential(ctx context.Context, provider Provider, credential string) error {
	if !provider.Valid() {
		return Errorf(EINVALID, "unknown provider %q", provider)
	}
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return p.store.Delete(ctx, credentialKey(provider))
	}
	return p.store.Set(ctx, credentialKey(provider), credential)
}

// credentialKey returns the storage key for a provider credential,
// e.g. "geminiApiKey".
func credentialKey(provider Provider) string {
	return string(provider) + keyCredentialSuffix
}

// MaskCredential returns credential with all but the last four characters
// replaced, for display.
func MaskCredential(credential string) string {
	r := []rune(credential)
	if len(r) <= 4 {
		return strings.Repeat("*", len(r))
	}
	return strings.Repeat("*", len(r)-4) + string(r[len(r)-4:])
}
