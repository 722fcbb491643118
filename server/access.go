package server

import "github.com/muratfirtina/teklif-sistemi-sub002/models"

// AccessDeniedMessage is shown to the user after a denied page request.
const AccessDeniedMessage = "access denied for this page"

// AccessDecision is the outcome of a page access check. When Allowed is
// false, RedirectTo names the role's home page and Message the flash text
// for the next render.
type AccessDecision struct {
	Allowed    bool
	RedirectTo string
	Message    string
}

// RolePolicy maps role names to the pages they may open. Roles without an
// entry are unrestricted; a restricted role may only open the pages in
// its allowlist. The policy is built once at startup and read-only after.
type RolePolicy struct {
	allowedPages map[string]map[string]struct{}
	homePages    map[string]string
}

func NewRolePolicy() *RolePolicy {
	return &RolePolicy{
		allowedPages: make(map[string]map[string]struct{}),
		homePages:    make(map[string]string),
	}
}

// Restrict limits role to the given pages and records its home page as
// the redirect target for denied requests.
func (p *RolePolicy) Restrict(role, homePage string, pages ...string) {
	set := make(map[string]struct{}, len(pages))
	for _, page := range pages {
		set[page] = struct{}{}
	}
	p.allowedPages[role] = set
	p.homePages[role] = homePage
}

// Check decides whether role may open page.
func (p *RolePolicy) Check(role, page string) AccessDecision {
	allowed, restricted := p.allowedPages[role]
	if !restricted {
		return AccessDecision{Allowed: true}
	}
	if _, ok := allowed[page]; ok {
		return AccessDecision{Allowed: true}
	}
	return AccessDecision{
		Allowed:    false,
		RedirectTo: p.homePages[role],
		Message:    AccessDeniedMessage,
	}
}

// DefaultPolicy restricts the production role to the production pages.
// Admin and regular users pass unrestricted.
func DefaultPolicy() *RolePolicy {
	policy := NewRolePolicy()
	policy.Restrict(models.RoleProduction, "/production-orders",
		PageProductionOrders,
		PageNotifications,
		PageProfile,
	)
	return policy
}

// Page identifiers used by the route table and the access policy.
const (
	PageCustomers        = "customers"
	PageProducts         = "products"
	PageQuotations       = "quotations"
	PageProductionOrders = "production-orders"
	PageInvoices         = "invoices"
	PageSettings         = "settings"
	PageUsers            = "users"
	PageNotifications    = "notifications"
	PageProfile          = "profile"
)
