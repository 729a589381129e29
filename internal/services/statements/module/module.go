// Package module wires the statements service into the API
package module

import (
	"ledgerdesk/internal/modkit"
	"ledgerdesk/internal/modkit/httpkit"
	"ledgerdesk/internal/services/statements/domain"
	stmthttp "ledgerdesk/internal/services/statements/http"
	"ledgerdesk/internal/services/statements/repo"
	"ledgerdesk/internal/services/statements/schema"
	"ledgerdesk/internal/services/statements/service"
)

// Ports exposed by the statements module
type Ports struct {
	Ingester   domain.IngesterPort
	Query      domain.QueryPort
	Reconciler domain.ReconcilerPort
}

// Module implements the statements service module
type Module struct {
	deps     modkit.Deps
	ports    Ports
	handlers *stmthttp.Handlers
}

// New constructs a new statements module.
// Panics when a registered table and its write record disagree on arity,
// which would corrupt every COPY stream for that type
func New(deps modkit.Deps) *Module {
	mustAlign()
	opts := FromConfig(deps.Cfg)

	binder := repo.NewPG()
	svc := service.New(deps.PG, binder, service.Config{
		MaxBatch: opts.MaxBatch,
	})

	m := &Module{deps: deps}
	m.ports = Ports{
		Ingester:   svc,
		Query:      svc,
		Reconciler: svc,
	}
	m.handlers = stmthttp.New(svc, svc, svc)
	return m
}

func mustAlign() {
	for _, typ := range schema.Types() {
		s, err := schema.Lookup(typ)
		if err != nil {
			panic("statements: lookup failed for registered type " + typ)
		}
		vals, ok := domain.WirePrototype(domain.StatementType(typ))
		if !ok {
			panic("statements: no write record for registered type " + typ)
		}
		if len(vals) != len(s.Staging.Columns) {
			panic("statements: write record and staging table disagree on arity for " + typ)
		}
	}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "statements" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.handlers.Register(r)
}
