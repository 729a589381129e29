package repo

import (
	"strings"

	"ledgerdesk/internal/services/statements/schema"
)

// selectAll builds the full fetch statement for a declared table.
// Columns come from the registry so the select list and the decoders can
// never drift apart
func selectAll(tbl schema.Table) string {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	for i, c := range tbl.Columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.Name)
	}
	sb.WriteString(" FROM ")
	if tbl.Schema != "" {
		sb.WriteString(tbl.Schema)
		sb.WriteByte('.')
	}
	sb.WriteString(tbl.Name)
	return sb.String()
}

// reconcileMpesaSQL matches collection lines that carry an mpesa amount
// against the mpesa ledger by transaction reference, scoped to one calendar
// day of receipts. Unmatched collections drop out of the join
const reconcileMpesaSQL = `
	SELECT
		COALESCE(c.receipt_no, '') AS billing_number,
		COALESCE(c.employee_name, '') AS cashier,
		c.receipt_date,
		COALESCE(c.patient_name, '') AS patient_name,
		c.mpesa,
		c.transaction_no AS transaction_code,
		m.details AS comments
	FROM production.collection_details c
	JOIN production.mpesa_statement m ON m.receipt_no = c.transaction_no
	WHERE c.receipt_date::date = $1::date
		AND c.mpesa IS NOT NULL`
