package service

import (
	"net/url"
	"strings"
	"sync"

	"donation-gateway/config"
	"donation-gateway/internal/core/domain"

	"github.com/rs/zerolog"
)

// hostedHostAllowList pins the hosts a configured checkout URL may point
// at, per method. Methods without an entry (bank, mpesa) never validate
// a hosted URL: bank is manual-flow-only and M-Pesa is API-only.
var hostedHostAllowList = map[domain.DonationMethod][]string{
	domain.MethodBuyMeACoffee: {"buymeacoffee.com", "www.buymeacoffee.com"},
	domain.MethodPayPal:       {"paypal.com", "www.paypal.com", "paypal.me", "www.paypal.me"},
	domain.MethodStripe:       {"buy.stripe.com", "checkout.stripe.com"},
	domain.MethodAirtm:        {"airtm.com", "www.airtm.com", "app.airtm.com"},
}

var methodLabels = map[domain.DonationMethod]string{
	domain.MethodBuyMeACoffee: "Buy Me a Coffee",
	domain.MethodPayPal:       "PayPal",
	domain.MethodStripe:       "Stripe",
	domain.MethodMpesa:        "M-Pesa",
	domain.MethodAirtm:        "Airtm",
	domain.MethodBank:         "Bank Transfer",
}

var methodDescriptions = map[domain.DonationMethod]string{
	domain.MethodBuyMeACoffee: "One-off support via a hosted Buy Me a Coffee page.",
	domain.MethodPayPal:       "Donate with a PayPal account or card.",
	domain.MethodStripe:       "Card payment through a Stripe payment link.",
	domain.MethodMpesa:        "Mobile money via M-Pesa (coming soon).",
	domain.MethodAirtm:        "Cross-border transfer via Airtm (coming soon).",
	domain.MethodBank:         "Direct bank transfer with manual proof of payment.",
}

// IsValidDonationURL reports whether raw is an https URL whose host is on
// the method's allow-list. Methods without an allow-list always fail.
func IsValidDonationURL(method domain.DonationMethod, raw string) bool {
	hosts, ok := hostedHostAllowList[method]
	if !ok {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "https" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, allowed := range hosts {
		if host == allowed {
			return true
		}
	}
	return false
}

// MethodServiceImpl implements ports.MethodService. Availability is
// recomputed on every read from the donation configuration; the only
// state held is the warn-once set for invalid configured URLs, kept here
// explicitly so tests can construct a fresh instance to reset it.
type MethodServiceImpl struct {
	cfg config.DonationConfig
	log zerolog.Logger

	mu     sync.Mutex
	warned map[string]struct{}
}

// NewMethodService creates a new MethodServiceImpl.
func NewMethodService(cfg config.DonationConfig, log zerolog.Logger) *MethodServiceImpl {
	return &MethodServiceImpl{
		cfg:    cfg,
		log:    log,
		warned: make(map[string]struct{}),
	}
}

// Mode returns the global donation mode. Only "api" (any case) switches
// away from the hosted default; unknown values fall back to hosted.
func (s *MethodServiceImpl) Mode() string {
	if strings.EqualFold(strings.TrimSpace(s.cfg.Mode), "api") {
		return "api"
	}
	return "hosted"
}

// hostedURLFor resolves the validated checkout URL for a method, nil
// when unset or rejected by the allow-list.
func (s *MethodServiceImpl) hostedURLFor(method domain.DonationMethod) *string {
	raw := s.cfg.HostedURL(string(method))
	if raw == "" {
		return nil
	}
	if !IsValidDonationURL(method, raw) {
		s.warnOnce(method, raw)
		return nil
	}
	return &raw
}

// warnOnce logs an invalid configured URL a single time per distinct
// value for the process lifetime.
func (s *MethodServiceImpl) warnOnce(method domain.DonationMethod, raw string) {
	key := string(method) + "|" + raw
	s.mu.Lock()
	_, already := s.warned[key]
	if !already {
		s.warned[key] = struct{}{}
	}
	s.mu.Unlock()
	if !already {
		s.log.Warn().
			Str("method", string(method)).
			Str("url", raw).
			Msg("configured donation URL rejected: must be https with an allow-listed host; method disabled")
	}
}

// ConfigFor resolves the availability config for one method.
func (s *MethodServiceImpl) ConfigFor(method domain.DonationMethod) (domain.DonationMethodConfig, bool) {
	label, known := methodLabels[method]
	if !known {
		return domain.DonationMethodConfig{}, false
	}

	cfg := domain.DonationMethodConfig{
		Method:      method,
		Label:       label,
		Description: methodDescriptions[method],
		HostedURL:   s.hostedURLFor(method),
	}

	switch method {
	case domain.MethodBank:
		// Manual flow is always available.
		cfg.Enabled = true
	case domain.MethodMpesa, domain.MethodAirtm:
		// Disabled until a live integration exists.
		cfg.Enabled = false
	default:
		cfg.Enabled = cfg.HostedURL != nil
	}
	return cfg, true
}

// MethodConfigs resolves availability for every method.
func (s *MethodServiceImpl) MethodConfigs() []domain.DonationMethodConfig {
	configs := make([]domain.DonationMethodConfig, 0, len(domain.AllMethods))
	for _, m := range domain.AllMethods {
		if cfg, ok := s.ConfigFor(m); ok {
			configs = append(configs, cfg)
		}
	}
	return configs
}

// HasAnyEnabled reports whether any donation method is currently usable.
func (s *MethodServiceImpl) HasAnyEnabled() bool {
	for _, cfg := range s.MethodConfigs() {
		if cfg.Enabled {
			return true
		}
	}
	return false
}

// BankInstructions returns the configured manual transfer details.
func (s *MethodServiceImpl) BankInstructions() domain.BankInstructions {
	return domain.BankInstructions{
		BankName:      s.cfg.Bank.BankName,
		AccountName:   s.cfg.Bank.AccountName,
		AccountNumber: s.cfg.Bank.AccountNumber,
		SwiftCode:     s.cfg.Bank.SwiftCode,
		ReferenceNote: s.cfg.Bank.ReferenceNote,
	}
}
