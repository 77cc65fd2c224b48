package provider

import (
	"fmt"

	"donation-gateway/config"
	"donation-gateway/internal/core/domain"
	"donation-gateway/internal/core/ports"
)

// Registry is the static lookup from donation method to adapter. Built
// once at startup, never mutated afterwards.
type Registry struct {
	adapters map[domain.DonationMethod]ports.ProviderAdapter
}

// NewRegistry builds adapters for every enumerated method from the
// donation configuration.
func NewRegistry(cfg config.DonationConfig) *Registry {
	r := &Registry{adapters: make(map[domain.DonationMethod]ports.ProviderAdapter, len(domain.AllMethods))}
	for _, a := range []ports.ProviderAdapter{
		NewBuyMeACoffee(cfg.WebhookSecret(string(domain.MethodBuyMeACoffee))),
		NewPayPal(cfg.WebhookSecret(string(domain.MethodPayPal))),
		NewStripe(cfg.WebhookSecret(string(domain.MethodStripe))),
		NewMpesa(cfg.WebhookSecret(string(domain.MethodMpesa))),
		NewAirtm(cfg.WebhookSecret(string(domain.MethodAirtm))),
		NewBank(cfg.WebhookSecret(string(domain.MethodBank))),
	} {
		r.adapters[a.Method()] = a
	}
	return r
}

// Get returns the adapter for a method, ok=false for unknown methods.
func (r *Registry) Get(method domain.DonationMethod) (ports.ProviderAdapter, bool) {
	a, ok := r.adapters[method]
	return a, ok
}

// MustGet returns the adapter for a method and panics on a miss. Every
// enumerated method has an adapter registered at startup, so a miss is a
// programming error, not a request error.
func (r *Registry) MustGet(method domain.DonationMethod) ports.ProviderAdapter {
	a, ok := r.adapters[method]
	if !ok {
		panic(fmt.Sprintf("provider: no adapter registered for method %q", method))
	}
	return a
}
