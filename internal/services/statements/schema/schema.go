// Package schema declares the staging and production table shapes for every
// registered statement type. The registry is static and read-only after init;
// the codec in this package is the single gate between a decoded payload and
// the bulk write stream
package schema

import (
	"sort"

	perr "ledgerdesk/internal/platform/errors"
)

// WireType is the declared scalar type of one column on the wire
type WireType uint8

// Wire scalar types
const (
	WireText WireType = iota
	WireFloat8
	WireBool
	WireTimestamp
	WireInt4
)

// String names the wire type for fault messages
func (t WireType) String() string {
	switch t {
	case WireText:
		return "text"
	case WireFloat8:
		return "float8"
	case WireBool:
		return "bool"
	case WireTimestamp:
		return "timestamp"
	case WireInt4:
		return "int4"
	default:
		return "unknown"
	}
}

// Column is one declared column: name, wire type, nullability
type Column struct {
	Name     string
	Type     WireType
	Nullable bool
}

// Table is an ordered column list bound to a schema-qualified table
type Table struct {
	Schema  string
	Name    string
	Columns []Column
}

// Identifier returns the schema-qualified table name parts
func (t Table) Identifier() []string {
	if t.Schema == "" {
		return []string{t.Name}
	}
	return []string{t.Schema, t.Name}
}

// ColumnNames returns the declared column names in order
func (t Table) ColumnNames() []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.Name
	}
	return out
}

// Schema pairs the staging and production shapes of one statement type
type Schema struct {
	Type       string
	Staging    Table
	Production Table
}

// Lookup resolves a statement type tag to its registered schema
func Lookup(typ string) (Schema, error) {
	s, ok := registry[typ]
	if !ok {
		return Schema{}, perr.UnknownSchemaf("no schema registered for statement type %q", typ)
	}
	return s, nil
}

// Types returns all registered statement type tags, sorted
func Types() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// column constructors keep the registry declarations compact

func text(name string) Column     { return Column{Name: name, Type: WireText} }
func textNull(name string) Column { return Column{Name: name, Type: WireText, Nullable: true} }
func f8(name string) Column       { return Column{Name: name, Type: WireFloat8} }
func f8Null(name string) Column   { return Column{Name: name, Type: WireFloat8, Nullable: true} }
func boolean(name string) Column  { return Column{Name: name, Type: WireBool} }
func ts(name string) Column       { return Column{Name: name, Type: WireTimestamp} }
func tsNull(name string) Column   { return Column{Name: name, Type: WireTimestamp, Nullable: true} }
func i4Null(name string) Column   { return Column{Name: name, Type: WireInt4, Nullable: true} }
func i4(name string) Column       { return Column{Name: name, Type: WireInt4} }

var registry = map[string]Schema{
	"mpesa": {
		Type: "mpesa",
		Staging: Table{Schema: "staging", Name: "mpesa_statement", Columns: []Column{
			text("receipt_no"), text("completion_time"), text("initiation_time"),
			text("details"), text("transaction_status"), f8Null("paid_in"),
			f8Null("withdrawn"), f8Null("balance"), boolean("balance_confirmed"),
			text("reason_type"), text("other_party_info"),
			textNull("linked_transaction_id"), text("ac_no"),
		}},
		Production: Table{Schema: "production", Name: "mpesa_statement", Columns: []Column{
			text("receipt_no"), ts("completion_time"), ts("initiation_time"),
			text("details"), text("transaction_status"), f8Null("paid_in"),
			f8Null("withdrawn"), f8("balance"), boolean("balance_confirmed"),
			text("reason_type"), text("other_party_info"),
			textNull("linked_transaction_id"), textNull("ac_no"),
		}},
	},
	"collectiondetails": {
		Type: "collectiondetails",
		Staging: Table{Schema: "staging", Name: "collection_details", Columns: []Column{
			textNull("receipt_no"), text("receipt_date"), textNull("patient_name"),
			textNull("payee"), f8Null("cash"), f8Null("cheque"), f8Null("card"),
			f8Null("card_no"), f8Null("mpesa"), f8Null("e_transfer"),
			textNull("transaction_no"), f8Null("adv_used"),
			textNull("employee_name"), textNull("unit_name"),
		}},
		Production: Table{Schema: "production", Name: "collection_details", Columns: []Column{
			textNull("receipt_no"), ts("receipt_date"), textNull("patient_name"),
			textNull("payee"), f8Null("cash"), f8Null("cheque"), f8Null("card"),
			textNull("card_no"), f8Null("mpesa"), f8Null("e_transfer"),
			textNull("transaction_no"), f8Null("adv_used"),
			textNull("employee_name"), textNull("unit_name"),
		}},
	},
	"billdetails": {
		Type: "billdetails",
		Staging: Table{Schema: "staging", Name: "bill_details", Columns: []Column{
			text("bill_date"), textNull("bill_no"), textNull("skypeid"),
			textNull("uhid"), textNull("visit_type"), textNull("patient_name"),
			textNull("payee"), textNull("service_name"), f8Null("quantity"),
			f8Null("rate_per_unit"), f8Null("discount"), f8Null("gross"),
			f8Null("paid_amount"), f8Null("outstanding"), textNull("service_doc"),
			textNull("department"), textNull("consulting_dr"),
			textNull("referring_dr"), textNull("servicing_dr"),
			textNull("payment_mode"), text("unit"),
		}},
		Production: Table{Schema: "production", Name: "bill_details", Columns: []Column{
			ts("bill_date"), textNull("bill_no"), textNull("skypeid"),
			textNull("uhid"), textNull("visit"), textNull("patient_name"),
			textNull("payee"), textNull("service_name"), f8Null("quantity"),
			f8Null("rate_per_unit"), f8Null("discount"), f8Null("gross"),
			f8Null("paid_amount"), f8Null("outstanding"), textNull("service_doc"),
			textNull("department"), textNull("consulting_dr"),
			textNull("referring_dr"), textNull("servicing_dr"),
			textNull("payment_mode"),
		}},
	},
	"labvisits": {
		Type: "labvisits",
		Staging: Table{Schema: "staging", Name: "lab_visits", Columns: []Column{
			text("sample_number"), text("name"), textNull("id_passport_no"),
			f8("age"), text("age_unit"), text("gender"), textNull("phone_number"),
			text("sample_date"), text("result"), textNull("email_address"),
		}},
		Production: Table{Schema: "production", Name: "lab_visits", Columns: []Column{
			text("sample_number"), text("name"), text("id_passport_no"),
			i4("age"), text("age_unit"), text("gender"), textNull("phone_number"),
			ts("sample_date"), text("result"), textNull("email_address"),
		}},
	},
	"mtiba": {
		Type: "mtiba",
		Staging: Table{Schema: "staging", Name: "mtiba_statement", Columns: []Column{
			i4Null("transactionstateid"), i4Null("transactiontypeid"),
			text("facilityzohold"), text("facilityname"),
			text("fullreferencenumber"), text("phonenumber"), text("payername"),
			text("sendername"), text("medicalprogramname"),
			f8Null("amountfordisplay"), ts("transactiondate"), ts("paymentdate"),
			text("transactiontype"),
		}},
		Production: Table{Schema: "production", Name: "mtiba_statement", Columns: []Column{
			i4Null("transactionstateid"), i4Null("transactiontypeid"),
			text("facilityzohold"), text("facilityname"),
			text("fullreferencenumber"), text("phonenumber"), text("payername"),
			text("sendername"), text("medicalprogramname"),
			f8("amountfordisplay"), ts("transactiondate"), ts("paymentdate"),
			text("transactiontype"),
		}},
	},
	"absa": {
		Type: "absa",
		Staging: Table{Schema: "staging", Name: "absa_statement", Columns: []Column{
			text("transaction_date"), text("value_date"), text("description"),
			textNull("user_reference_number"), f8Null("cheque_number"),
			f8Null("debit_amount"), f8Null("credit_amount"),
			f8Null("running_balance"),
		}},
		Production: Table{Schema: "production", Name: "absa_statement", Columns: []Column{
			ts("transaction_date"), ts("value_date"), text("description"),
			textNull("user_reference_number"), i4Null("cheque_number"),
			f8Null("debit_amount"), f8Null("credit_amount"),
			f8Null("running_balance"),
		}},
	},
	"pdq": {
		Type: "pdq",
		Staging: Table{Schema: "staging", Name: "pdq_statement", Columns: []Column{
			f8Null("account_no"), f8Null("location_no"), textNull("legal_name"),
			text("card_no"), textNull("txn_date"), textNull("processing_date"),
			textNull("payment_date"), f8Null("terminal_id"), textNull("auth_id"),
			f8Null("amount"), f8Null("commission"), f8Null("net_amount"),
			textNull("trxn_type"), textNull("currency"), textNull("pmnt_type"),
			textNull("trxn_source"), textNull("scheme"),
			textNull("commercial_name"), textNull("arn_reference"),
			textNull("retrieval_ref_no"), f8Null("tip_amount"),
			textNull("card_present"),
		}},
		Production: Table{Schema: "production", Name: "pdq_statement", Columns: []Column{
			f8Null("account_no"), f8Null("location_no"), textNull("legal_name"),
			text("card_no"), tsNull("txn_date"), tsNull("processing_date"),
			tsNull("payment_date"), f8Null("terminal_id"), textNull("auth_id"),
			f8Null("amount"), f8Null("commission"), f8Null("net_amount"),
			textNull("trxn_type"), textNull("currency"), textNull("pmnt_type"),
			textNull("trxn_source"), textNull("scheme"),
			textNull("commercial_name"), textNull("arn_reference"),
			textNull("retrieval_ref_no"), f8Null("tip_amount"),
			textNull("card_present"),
		}},
	},
	"sidian": {
		Type: "sidian",
		Staging: Table{Schema: "staging", Name: "sidian_statement", Columns: []Column{
			text("date"), textNull("valuedate"), textNull("reference"),
			textNull("narration"), f8Null("chequenumber"), f8Null("debit"),
			f8Null("credit"), f8("balance"),
		}},
		Production: Table{Schema: "production", Name: "sidian_statement", Columns: []Column{
			ts("date"), tsNull("valuedate"), textNull("reference"),
			textNull("narration"), i4Null("chequenumber"), f8Null("debit"),
			f8Null("credit"), f8("balance"),
		}},
	},
	"cfc": {
		Type: "cfc",
		Staging: Table{Schema: "staging", Name: "cfc_statement", Columns: []Column{
			ts("date"), text("transaction"), ts("value_date"), f8Null("debit"),
			f8Null("credit"), f8Null("ledger_balance"),
			f8Null("available_balance"),
		}},
		Production: Table{Schema: "production", Name: "cfc_statement", Columns: []Column{
			ts("date"), text("transaction"), ts("value_date"), f8Null("debit"),
			f8Null("credit"), f8Null("ledger_balance"),
			f8Null("available_balance"),
		}},
	},
}

// RegisteredPatients is the read-only patient register, no staging counterpart
var RegisteredPatients = Table{Name: "registered_patients", Columns: []Column{
	text("uhid"), ts("date"), text("patient_name"), text("age"), text("gender"),
	textNull("address"), textNull("contact_no"),
}}
