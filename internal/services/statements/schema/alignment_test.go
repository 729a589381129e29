package schema_test

import (
	"testing"

	"ledgerdesk/internal/services/statements/domain"
	"ledgerdesk/internal/services/statements/schema"
)

// Every write record must carry exactly one value per staging column, in
// declaration order. A drift here would corrupt whole batches silently, so
// the registry and the domain types are pinned to each other
func TestWriteRecordsAlignWithStagingTables(t *testing.T) {
	for _, typ := range schema.Types() {
		vals, ok := domain.WirePrototype(domain.StatementType(typ))
		if !ok {
			t.Fatalf("no write record declared for registered type %q", typ)
		}
		sch, err := schema.Lookup(typ)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := len(vals), len(sch.Staging.Columns); got != want {
			t.Fatalf("%q: record carries %d values, staging declares %d columns", typ, got, want)
		}
	}

	if _, ok := domain.WirePrototype("equity"); ok {
		t.Fatal("prototype resolved for an unregistered type")
	}
}
