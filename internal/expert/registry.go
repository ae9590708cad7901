package expert

// Registry resolves experts by display name or by role name through the
// static bidirectional mapping derived at construction. It is populated once
// at startup and never mutated afterwards, so it is safe for any number of
// concurrent readers without locking.
type Registry struct {
	order      []string // display names in registration order
	byName     map[string]Expert
	roleToName map[string]string
}

// NewRegistry builds a registry over the given experts. Later registrations
// with a duplicate display name are ignored; the first wins.
func NewRegistry(experts ...Expert) *Registry {
	r := &Registry{
		byName:     make(map[string]Expert, len(experts)),
		roleToName: make(map[string]string, len(experts)),
	}
	for _, e := range experts {
		id := e.Identity()
		if _, exists := r.byName[id.Name]; exists {
			continue
		}
		r.byName[id.Name] = e
		r.roleToName[id.Role] = id.Name
		r.order = append(r.order, id.Name)
	}
	return r
}

// Default builds the full twelve-member panel in catalogue order, starting
// with the mandatory context specialist.
func Default() *Registry {
	return NewRegistry(
		NewContextSpecialist(),
		New(DesignTheoryProfile()),
		New(ColorTheoryProfile()),
		New(CopywritingProfile()),
		New(ArtHistoryProfile()),
		New(BrandStrategyProfile()),
		New(UXUsabilityProfile()),
		New(TechnicalProfile()),
		New(CulturalContextProfile()),
		New(MarketResearchProfile()),
		New(AccessibilityProfile()),
		New(PerformanceProfile()),
	)
}

// Resolve looks an expert up by display name first, then by role name.
// Lookups are exact, case-sensitive matches; fuzzy matching is exclusively a
// command parser concern. Returns nil when the name resolves to nothing.
func (r *Registry) Resolve(name string) Expert {
	if e, ok := r.byName[name]; ok {
		return e
	}
	if display, ok := r.roleToName[name]; ok {
		return r.byName[display]
	}
	return nil
}

// AlwaysActive returns the first registered expert declared always-active,
// or nil when the registry has none.
func (r *Registry) AlwaysActive() Expert {
	for _, name := range r.order {
		if r.byName[name].Identity().Triggers.AlwaysActive {
			return r.byName[name]
		}
	}
	return nil
}

// Has reports whether name resolves to a registered expert.
func (r *Registry) Has(name string) bool {
	return r.Resolve(name) != nil
}

// List returns the identities of all registered experts in registration order.
func (r *Registry) List() []Identity {
	ids := make([]Identity, 0, len(r.order))
	for _, name := range r.order {
		ids = append(ids, r.byName[name].Identity())
	}
	return ids
}

// Len returns the number of registered experts.
func (r *Registry) Len() int {
	return len(r.order)
}
