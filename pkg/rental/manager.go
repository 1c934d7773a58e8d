package rental

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Manager holds a rental portfolio's properties, units, tenants, and
// leases in memory for the caller and derives the reports: rent roll,
// vacancy, lease expirations, NOI, cash-flow projections, and rent
// comparables.
type Manager struct {
	properties map[string]Property
	units      map[string]Unit
	tenants    map[string]Tenant
	leases     []Lease
	logger     *slog.Logger
}

// Option adjusts the Manager configuration at construction time.
type Option func(*Manager)

// WithLogger sets a custom logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// New builds an empty Manager.
func New(opts ...Option) *Manager {
	m := &Manager{
		properties: make(map[string]Property),
		units:      make(map[string]Unit),
		tenants:    make(map[string]Tenant),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddProperty registers a property, assigning an ID when the caller
// left it empty. Returns the ID.
func (m *Manager) AddProperty(p Property) string {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	m.properties[p.ID] = p
	return p.ID
}

// Property looks up a registered property.
func (m *Manager) Property(id string) (Property, bool) {
	p, ok := m.properties[id]
	return p, ok
}

// AddUnit registers a unit under an existing property. Returns the
// unit ID.
func (m *Manager) AddUnit(u Unit) (string, error) {
	if _, ok := m.properties[u.PropertyID]; !ok {
		return "", fmt.Errorf("%w: %s", ErrPropertyNotFound, u.PropertyID)
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	m.units[u.ID] = u
	return u.ID, nil
}

// Unit looks up a registered unit.
func (m *Manager) Unit(id string) (Unit, bool) {
	u, ok := m.units[id]
	return u, ok
}

// AddTenant registers a tenant, assigning an ID when empty. Returns
// the ID.
func (m *Manager) AddTenant(t Tenant) string {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	m.tenants[t.ID] = t
	return t.ID
}

// AddLease records a lease against an existing unit and tenant,
// assigning an ID when empty, defaulting the status to pending and the
// escalation frequency to annually. Returns the lease ID.
func (m *Manager) AddLease(l Lease) (string, error) {
	if _, ok := m.units[l.UnitID]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnitNotFound, l.UnitID)
	}
	if _, ok := m.tenants[l.TenantID]; !ok {
		return "", fmt.Errorf("%w: %s", ErrTenantNotFound, l.TenantID)
	}
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.Status == "" {
		l.Status = LeasePending
	}
	if l.EscalationFrequency == "" {
		l.EscalationFrequency = EscalateAnnually
	}
	m.leases = append(m.leases, l)

	m.logger.Info("lease recorded",
		slog.String("lease_id", l.ID),
		slog.String("unit_id", l.UnitID),
		slog.Float64("monthly_rent", l.MonthlyRent),
		slog.String("status", string(l.Status)))
	return l.ID, nil
}

// Lease looks up a recorded lease by ID.
func (m *Manager) Lease(id string) (Lease, bool) {
	for _, l := range m.leases {
		if l.ID == id {
			return l, true
		}
	}
	return Lease{}, false
}

// SetLeaseStatus moves a lease to a new lifecycle status.
func (m *Manager) SetLeaseStatus(leaseID string, status LeaseStatus) error {
	for i := range m.leases {
		if m.leases[i].ID != leaseID {
			continue
		}
		from := m.leases[i].Status
		m.leases[i].Status = status
		m.logger.Info("lease status changed",
			slog.String("lease_id", leaseID),
			slog.String("from", string(from)),
			slog.String("to", string(status)))
		return nil
	}
	return fmt.Errorf("%w: %s", ErrLeaseNotFound, leaseID)
}

// propertyUnits returns the property's units sorted by unit number.
func (m *Manager) propertyUnits(propertyID string) []Unit {
	var units []Unit
	for _, u := range m.units {
		if u.PropertyID == propertyID {
			units = append(units, u)
		}
	}
	sort.Slice(units, func(i, j int) bool { return units[i].Number < units[j].Number })
	return units
}

// activeLease finds the active lease covering a unit on a date.
func (m *Manager) activeLease(unitID string, on time.Time) (Lease, bool) {
	for _, l := range m.leases {
		if l.UnitID == unitID && l.Status == LeaseActive && covers(l, on) {
			return l, true
		}
	}
	return Lease{}, false
}

// covers reports whether on falls inside the lease term, inclusive.
func covers(l Lease, on time.Time) bool {
	return !on.Before(l.Start) && !on.After(l.End)
}
