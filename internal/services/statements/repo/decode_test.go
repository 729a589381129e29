package repo

import (
	"math"
	"testing"
	"time"

	perr "ledgerdesk/internal/platform/errors"
)

func mpesaVals() []any {
	at := time.Date(2024, 5, 2, 9, 15, 0, 0, time.UTC)
	return []any{
		"SFA1B2C3", at, at, "Pay Bill", "Completed", 1500.0, nil, 20500.0,
		true, "Pay Utility", "254700000000 - JANE DOE", nil, "1002003",
	}
}

func TestDecodeMpesaRow(t *testing.T) {
	r, err := decodeMpesaRow(mpesaVals())
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if r.ReceiptNo != "SFA1B2C3" || r.Balance != 20500.0 || !r.BalanceConfirmed {
		t.Fatalf("row decoded wrong: %+v", r)
	}
	if r.PaidIn == nil || *r.PaidIn != 1500.0 {
		t.Fatalf("paid_in = %v", r.PaidIn)
	}
	if r.Withdrawn != nil || r.LinkedTransactionID != nil {
		t.Fatalf("nulls not preserved: %+v", r)
	}
	if r.AcNo == nil || *r.AcNo != "1002003" {
		t.Fatalf("ac_no = %v", r.AcNo)
	}
}

func TestDecodeMpesaRowMissingRequired(t *testing.T) {
	vals := mpesaVals()
	vals[0] = nil // receipt_no
	_, err := decodeMpesaRow(vals)
	if !perr.IsCode(err, perr.ErrorCodeMissingRequiredField) {
		t.Fatalf("code = %v, want missing required field", perr.CodeOf(err))
	}
	e, _ := perr.As(err)
	if e.Field() != "receipt_no" {
		t.Fatalf("field = %q", e.Field())
	}
}

func TestDecodeMpesaRowTypeMismatch(t *testing.T) {
	vals := mpesaVals()
	vals[7] = "20500" // balance arrives as text
	_, err := decodeMpesaRow(vals)
	if !perr.IsCode(err, perr.ErrorCodeTypeMismatch) {
		t.Fatalf("code = %v, want type mismatch", perr.CodeOf(err))
	}
	e, _ := perr.As(err)
	if e.Field() != "balance" {
		t.Fatalf("field = %q", e.Field())
	}
}

func TestDecodeArityGuard(t *testing.T) {
	_, err := decodeMpesaRow([]any{"only", "four", "values", "here"})
	if !perr.IsCode(err, perr.ErrorCodeTypeMismatch) {
		t.Fatalf("code = %v, want type mismatch", perr.CodeOf(err))
	}
}

func TestDecodeIntWidths(t *testing.T) {
	at := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	base := []any{"S-1", "Jane", "A123", int32(30), "years", "F", nil, at, "Negative", nil}

	r, err := decodeLabVisitRow(base)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if r.Age != 30 {
		t.Fatalf("age = %d", r.Age)
	}

	// drivers hand back int8 columns as int64
	base[3] = int64(41)
	r, err = decodeLabVisitRow(base)
	if err != nil {
		t.Fatalf("decode of int64 age failed: %v", err)
	}
	if r.Age != 41 {
		t.Fatalf("age = %d", r.Age)
	}

	base[3] = 41.0
	if _, err := decodeLabVisitRow(base); !perr.IsCode(err, perr.ErrorCodeTypeMismatch) {
		t.Fatalf("float age code = %v, want type mismatch", perr.CodeOf(err))
	}

	// int64 values outside int32 must fail, never wrap
	for _, wide := range []int64{math.MaxInt32 + 1, math.MinInt32 - 1, 4294967303} {
		base[3] = wide
		if _, err := decodeLabVisitRow(base); !perr.IsCode(err, perr.ErrorCodeTypeMismatch) {
			t.Fatalf("age %d code = %v, want type mismatch", wide, perr.CodeOf(err))
		}
	}
}

func TestDecodePdqRowCarriesRetrievalRef(t *testing.T) {
	vals := make([]any, 22)
	vals[3] = "411111******1111"
	vals[19] = "RRN-000077"

	r, err := decodePdqRow(vals)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if r.CardNo != "411111******1111" {
		t.Fatalf("card_no = %q", r.CardNo)
	}
	if r.RetrievalRefNo == nil || *r.RetrievalRefNo != "RRN-000077" {
		t.Fatalf("retrieval_ref_no = %v", r.RetrievalRefNo)
	}
	if r.TipAmount != nil || r.CardPresent != nil {
		t.Fatalf("trailing nullable columns should stay nil")
	}
}

func TestDecodeSidianNullableRoundTrip(t *testing.T) {
	at := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	r, err := decodeSidianRow([]any{at, nil, nil, "opening balance", nil, nil, nil, 150000.0})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if r.ValueDate != nil || r.ChequeNumber != nil || r.Debit != nil {
		t.Fatalf("nulls not preserved: %+v", r)
	}
	if r.Narration == nil || *r.Narration != "opening balance" {
		t.Fatalf("narration = %v", r.Narration)
	}
	if r.Balance != 150000.0 {
		t.Fatalf("balance = %v", r.Balance)
	}
}

func TestDecodeReconciledMpesa(t *testing.T) {
	at := time.Date(2024, 7, 14, 10, 0, 0, 0, time.UTC)
	r, err := decodeReconciledMpesa([]any{
		"RCP-88", "cashier one", at, "John Doe", 2500.0, "SFA1B2C3", "Pay Bill",
	})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if r.BillingNumber != "RCP-88" || r.Mpesa != 2500.0 || r.TransactionCode != "SFA1B2C3" {
		t.Fatalf("row decoded wrong: %+v", r)
	}
}
