// Package http mounts the statements REST surface
package http

import (
	stdhttp "net/http"
	"time"

	"ledgerdesk/internal/modkit/httpkit"
	perr "ledgerdesk/internal/platform/errors"
	"ledgerdesk/internal/platform/net/http/bind"
	"ledgerdesk/internal/services/statements/domain"
	"ledgerdesk/internal/services/statements/schema"
)

// Handlers adapts the statements ports to HTTP
type Handlers struct {
	ing domain.IngesterPort
	qry domain.QueryPort
	rec domain.ReconcilerPort
}

// New constructs the statements handlers
func New(ing domain.IngesterPort, qry domain.QueryPort, rec domain.ReconcilerPort) *Handlers {
	return &Handlers{ing: ing, qry: qry, rec: rec}
}

// Register mounts the statements routes.
// The static registeredpatients route is mounted before the {type} wildcard;
// chi resolves static segments first either way
func (h *Handlers) Register(r httpkit.Router) {
	httpkit.Get(r, "/statements/registeredpatients", h.getRegisteredPatients)
	httpkit.Get(r, "/statements/{type}", h.getStatements)
	r.Post("/statements/{type}/update", httpkit.Handle(h.postUpdate))
	httpkit.Get(r, "/reconciliations/mpesa/{date}", h.getReconciliation)
}

func (h *Handlers) getStatements(r *stdhttp.Request) (any, error) {
	typ := domain.StatementType(httpkit.Param(r, "type"))
	return h.qry.FetchAll(r.Context(), typ)
}

func (h *Handlers) getRegisteredPatients(r *stdhttp.Request) (any, error) {
	return h.qry.RegisteredPatients(r.Context())
}

func (h *Handlers) postUpdate(r *stdhttp.Request) httpkit.Response {
	typ := domain.StatementType(httpkit.Param(r, "type"))
	recs, err := parseBatch(r, typ)
	if err != nil {
		return httpkit.Error(err)
	}
	res, err := h.ing.Ingest(r.Context(), typ, recs)
	if err != nil {
		return httpkit.Error(err)
	}
	return httpkit.OK(res)
}

func (h *Handlers) getReconciliation(r *stdhttp.Request) (any, error) {
	raw := httpkit.Param(r, "date")
	day, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, perr.InvalidArgf("date %q is not a calendar date, want YYYY-MM-DD", raw)
	}
	return h.rec.ReconcileMpesa(r.Context(), day)
}

// parseBatch binds the request body to the write shape of typ.
// One switch selects the element type; everything downstream is generic
func parseBatch(r *stdhttp.Request, typ domain.StatementType) ([]schema.Record, error) {
	switch typ {
	case domain.TypeMpesa:
		return toRecords(bind.ParseJSON[[]domain.MpesaWrite](r))
	case domain.TypeCollectionDetails:
		return toRecords(bind.ParseJSON[[]domain.CollectionWrite](r))
	case domain.TypeBillDetails:
		return toRecords(bind.ParseJSON[[]domain.BillWrite](r))
	case domain.TypeLabVisits:
		return toRecords(bind.ParseJSON[[]domain.LabVisitWrite](r))
	case domain.TypeMtiba:
		return toRecords(bind.ParseJSON[[]domain.MtibaWrite](r))
	case domain.TypeAbsa:
		return toRecords(bind.ParseJSON[[]domain.AbsaWrite](r))
	case domain.TypePdq:
		return toRecords(bind.ParseJSON[[]domain.PdqWrite](r))
	case domain.TypeSidian:
		return toRecords(bind.ParseJSON[[]domain.SidianWrite](r))
	case domain.TypeCfc:
		return toRecords(bind.ParseJSON[[]domain.CfcWrite](r))
	default:
		return nil, perr.UnknownSchemaf("no schema registered for statement type %q", typ)
	}
}

func toRecords[T schema.Record](xs []T, err error) ([]schema.Record, error) {
	if err != nil {
		return nil, err
	}
	out := make([]schema.Record, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out, nil
}
