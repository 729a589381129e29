package repokit

import (
	"context"
	"errors"
	"testing"

	"ledgerdesk/internal/platform/store"
	kit "ledgerdesk/internal/platform/testkit"
)

type nopQueryer struct{}

func (nopQueryer) Exec(context.Context, string, ...any) (store.CommandTag, error) {
	return nil, errors.New("unused")
}
func (nopQueryer) Query(context.Context, string, ...any) (store.Rows, error) {
	return nil, errors.New("unused")
}
func (nopQueryer) QueryRow(context.Context, string, ...any) store.Row { return nil }

type repoStub struct{ q Queryer }

func TestBindFunc(t *testing.T) {
	b := BindFunc[repoStub](func(q Queryer) repoStub { return repoStub{q: q} })

	q := nopQueryer{}
	got := b.Bind(q)
	if got.q == nil {
		t.Fatalf("queryer not passed through")
	}
}

func TestMustBind(t *testing.T) {
	b := BindFunc[repoStub](func(q Queryer) repoStub { return repoStub{q: q} })

	kit.MustNotPanic(t, func() { _ = MustBind[repoStub](b, nopQueryer{}) })
	kit.MustPanic(t, func() { _ = MustBind[repoStub](b, nil) })
}

func TestRequireQueryer(t *testing.T) {
	q := nopQueryer{}
	if got := RequireQueryer(q); got == nil {
		t.Fatalf("RequireQueryer returned nil for valid queryer")
	}
	kit.MustPanic(t, func() { _ = RequireQueryer(nil) })
}
