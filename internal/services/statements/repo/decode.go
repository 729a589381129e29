package repo

import (
	"math"
	"time"

	perr "ledgerdesk/internal/platform/errors"
	"ledgerdesk/internal/services/statements/domain"
)

// positional field readers over raw row values
// nil means null; required columns fail with MissingRequiredField,
// unexpected dynamic types fail with TypeMismatch, both name the column

func arity(vals []any, want int) error {
	if len(vals) != want {
		return perr.Newf(perr.ErrorCodeTypeMismatch,
			"row has %d columns, decoder expects %d", len(vals), want)
	}
	return nil
}

func str(vals []any, i int, col string) (string, error) {
	v := vals[i]
	if v == nil {
		return "", perr.MissingFieldf(col)
	}
	s, ok := v.(string)
	if !ok {
		return "", perr.TypeMismatchf(col, v)
	}
	return s, nil
}

func strPtr(vals []any, i int, col string) (*string, error) {
	if vals[i] == nil {
		return nil, nil
	}
	s, err := str(vals, i, col)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func f64(vals []any, i int, col string) (float64, error) {
	v := vals[i]
	if v == nil {
		return 0, perr.MissingFieldf(col)
	}
	f, ok := v.(float64)
	if !ok {
		return 0, perr.TypeMismatchf(col, v)
	}
	return f, nil
}

func f64Ptr(vals []any, i int, col string) (*float64, error) {
	if vals[i] == nil {
		return nil, nil
	}
	f, err := f64(vals, i, col)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func boolean(vals []any, i int, col string) (bool, error) {
	v := vals[i]
	if v == nil {
		return false, perr.MissingFieldf(col)
	}
	b, ok := v.(bool)
	if !ok {
		return false, perr.TypeMismatchf(col, v)
	}
	return b, nil
}

func tstamp(vals []any, i int, col string) (time.Time, error) {
	v := vals[i]
	if v == nil {
		return time.Time{}, perr.MissingFieldf(col)
	}
	t, ok := v.(time.Time)
	if !ok {
		return time.Time{}, perr.TypeMismatchf(col, v)
	}
	return t, nil
}

func tstampPtr(vals []any, i int, col string) (*time.Time, error) {
	if vals[i] == nil {
		return nil, nil
	}
	t, err := tstamp(vals, i, col)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func i32(vals []any, i int, col string) (int32, error) {
	v := vals[i]
	if v == nil {
		return 0, perr.MissingFieldf(col)
	}
	switch n := v.(type) {
	case int32:
		return n, nil
	case int64:
		if n < math.MinInt32 || n > math.MaxInt32 {
			return 0, perr.TypeMismatchf(col, v)
		}
		return int32(n), nil
	default:
		return 0, perr.TypeMismatchf(col, v)
	}
}

func i32Ptr(vals []any, i int, col string) (*int32, error) {
	if vals[i] == nil {
		return nil, nil
	}
	n, err := i32(vals, i, col)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// row decoders, one per production shape, column order matches the registry

func decodeMpesaRow(vals []any) (domain.MpesaRow, error) {
	var r domain.MpesaRow
	if err := arity(vals, 13); err != nil {
		return r, err
	}
	var err error
	if r.ReceiptNo, err = str(vals, 0, "receipt_no"); err != nil {
		return r, err
	}
	if r.CompletionTime, err = tstamp(vals, 1, "completion_time"); err != nil {
		return r, err
	}
	if r.InitiationTime, err = tstamp(vals, 2, "initiation_time"); err != nil {
		return r, err
	}
	if r.Details, err = str(vals, 3, "details"); err != nil {
		return r, err
	}
	if r.TransactionStatus, err = str(vals, 4, "transaction_status"); err != nil {
		return r, err
	}
	if r.PaidIn, err = f64Ptr(vals, 5, "paid_in"); err != nil {
		return r, err
	}
	if r.Withdrawn, err = f64Ptr(vals, 6, "withdrawn"); err != nil {
		return r, err
	}
	if r.Balance, err = f64(vals, 7, "balance"); err != nil {
		return r, err
	}
	if r.BalanceConfirmed, err = boolean(vals, 8, "balance_confirmed"); err != nil {
		return r, err
	}
	if r.ReasonType, err = str(vals, 9, "reason_type"); err != nil {
		return r, err
	}
	if r.OtherPartyInfo, err = str(vals, 10, "other_party_info"); err != nil {
		return r, err
	}
	if r.LinkedTransactionID, err = strPtr(vals, 11, "linked_transaction_id"); err != nil {
		return r, err
	}
	if r.AcNo, err = strPtr(vals, 12, "ac_no"); err != nil {
		return r, err
	}
	return r, nil
}

func decodeCollectionRow(vals []any) (domain.CollectionRow, error) {
	var r domain.CollectionRow
	if err := arity(vals, 14); err != nil {
		return r, err
	}
	var err error
	if r.ReceiptNo, err = strPtr(vals, 0, "receipt_no"); err != nil {
		return r, err
	}
	if r.ReceiptDate, err = tstamp(vals, 1, "receipt_date"); err != nil {
		return r, err
	}
	if r.PatientName, err = strPtr(vals, 2, "patient_name"); err != nil {
		return r, err
	}
	if r.Payee, err = strPtr(vals, 3, "payee"); err != nil {
		return r, err
	}
	if r.Cash, err = f64Ptr(vals, 4, "cash"); err != nil {
		return r, err
	}
	if r.Cheque, err = f64Ptr(vals, 5, "cheque"); err != nil {
		return r, err
	}
	if r.Card, err = f64Ptr(vals, 6, "card"); err != nil {
		return r, err
	}
	if r.CardNo, err = strPtr(vals, 7, "card_no"); err != nil {
		return r, err
	}
	if r.Mpesa, err = f64Ptr(vals, 8, "mpesa"); err != nil {
		return r, err
	}
	if r.ETransfer, err = f64Ptr(vals, 9, "e_transfer"); err != nil {
		return r, err
	}
	if r.TransactionNo, err = strPtr(vals, 10, "transaction_no"); err != nil {
		return r, err
	}
	if r.AdvUsed, err = f64Ptr(vals, 11, "adv_used"); err != nil {
		return r, err
	}
	if r.EmployeeName, err = strPtr(vals, 12, "employee_name"); err != nil {
		return r, err
	}
	if r.UnitName, err = strPtr(vals, 13, "unit_name"); err != nil {
		return r, err
	}
	return r, nil
}

func decodeBillRow(vals []any) (domain.BillRow, error) {
	var r domain.BillRow
	if err := arity(vals, 20); err != nil {
		return r, err
	}
	var err error
	if r.BillDate, err = tstamp(vals, 0, "bill_date"); err != nil {
		return r, err
	}
	if r.BillNo, err = strPtr(vals, 1, "bill_no"); err != nil {
		return r, err
	}
	if r.SkypeID, err = strPtr(vals, 2, "skypeid"); err != nil {
		return r, err
	}
	if r.UHID, err = strPtr(vals, 3, "uhid"); err != nil {
		return r, err
	}
	if r.Visit, err = strPtr(vals, 4, "visit"); err != nil {
		return r, err
	}
	if r.PatientName, err = strPtr(vals, 5, "patient_name"); err != nil {
		return r, err
	}
	if r.Payee, err = strPtr(vals, 6, "payee"); err != nil {
		return r, err
	}
	if r.ServiceName, err = strPtr(vals, 7, "service_name"); err != nil {
		return r, err
	}
	if r.Quantity, err = f64Ptr(vals, 8, "quantity"); err != nil {
		return r, err
	}
	if r.RatePerUnit, err = f64Ptr(vals, 9, "rate_per_unit"); err != nil {
		return r, err
	}
	if r.Discount, err = f64Ptr(vals, 10, "discount"); err != nil {
		return r, err
	}
	if r.Gross, err = f64Ptr(vals, 11, "gross"); err != nil {
		return r, err
	}
	if r.PaidAmount, err = f64Ptr(vals, 12, "paid_amount"); err != nil {
		return r, err
	}
	if r.Outstanding, err = f64Ptr(vals, 13, "outstanding"); err != nil {
		return r, err
	}
	if r.ServiceDoc, err = strPtr(vals, 14, "service_doc"); err != nil {
		return r, err
	}
	if r.Department, err = strPtr(vals, 15, "department"); err != nil {
		return r, err
	}
	if r.ConsultingDr, err = strPtr(vals, 16, "consulting_dr"); err != nil {
		return r, err
	}
	if r.ReferringDr, err = strPtr(vals, 17, "referring_dr"); err != nil {
		return r, err
	}
	if r.ServicingDr, err = strPtr(vals, 18, "servicing_dr"); err != nil {
		return r, err
	}
	if r.PaymentMode, err = strPtr(vals, 19, "payment_mode"); err != nil {
		return r, err
	}
	return r, nil
}

func decodeLabVisitRow(vals []any) (domain.LabVisitRow, error) {
	var r domain.LabVisitRow
	if err := arity(vals, 10); err != nil {
		return r, err
	}
	var err error
	if r.SampleNumber, err = str(vals, 0, "sample_number"); err != nil {
		return r, err
	}
	if r.Name, err = str(vals, 1, "name"); err != nil {
		return r, err
	}
	if r.IDPassportNo, err = str(vals, 2, "id_passport_no"); err != nil {
		return r, err
	}
	if r.Age, err = i32(vals, 3, "age"); err != nil {
		return r, err
	}
	if r.AgeUnit, err = str(vals, 4, "age_unit"); err != nil {
		return r, err
	}
	if r.Gender, err = str(vals, 5, "gender"); err != nil {
		return r, err
	}
	if r.PhoneNumber, err = strPtr(vals, 6, "phone_number"); err != nil {
		return r, err
	}
	if r.SampleDate, err = tstamp(vals, 7, "sample_date"); err != nil {
		return r, err
	}
	if r.Result, err = str(vals, 8, "result"); err != nil {
		return r, err
	}
	if r.EmailAddress, err = strPtr(vals, 9, "email_address"); err != nil {
		return r, err
	}
	return r, nil
}

func decodeMtibaRow(vals []any) (domain.MtibaRow, error) {
	var r domain.MtibaRow
	if err := arity(vals, 13); err != nil {
		return r, err
	}
	var err error
	if r.TransactionStateID, err = i32Ptr(vals, 0, "transactionstateid"); err != nil {
		return r, err
	}
	if r.TransactionTypeID, err = i32Ptr(vals, 1, "transactiontypeid"); err != nil {
		return r, err
	}
	if r.FacilityZohold, err = str(vals, 2, "facilityzohold"); err != nil {
		return r, err
	}
	if r.FacilityName, err = str(vals, 3, "facilityname"); err != nil {
		return r, err
	}
	if r.FullReferenceNumber, err = str(vals, 4, "fullreferencenumber"); err != nil {
		return r, err
	}
	if r.PhoneNumber, err = str(vals, 5, "phonenumber"); err != nil {
		return r, err
	}
	if r.PayerName, err = str(vals, 6, "payername"); err != nil {
		return r, err
	}
	if r.SenderName, err = str(vals, 7, "sendername"); err != nil {
		return r, err
	}
	if r.MedicalProgramName, err = str(vals, 8, "medicalprogramname"); err != nil {
		return r, err
	}
	if r.AmountForDisplay, err = f64(vals, 9, "amountfordisplay"); err != nil {
		return r, err
	}
	if r.TransactionDate, err = tstamp(vals, 10, "transactiondate"); err != nil {
		return r, err
	}
	if r.PaymentDate, err = tstamp(vals, 11, "paymentdate"); err != nil {
		return r, err
	}
	if r.TransactionType, err = str(vals, 12, "transactiontype"); err != nil {
		return r, err
	}
	return r, nil
}

func decodeAbsaRow(vals []any) (domain.AbsaRow, error) {
	var r domain.AbsaRow
	if err := arity(vals, 8); err != nil {
		return r, err
	}
	var err error
	if r.TransactionDate, err = tstamp(vals, 0, "transaction_date"); err != nil {
		return r, err
	}
	if r.ValueDate, err = tstamp(vals, 1, "value_date"); err != nil {
		return r, err
	}
	if r.Description, err = str(vals, 2, "description"); err != nil {
		return r, err
	}
	if r.UserReferenceNumber, err = strPtr(vals, 3, "user_reference_number"); err != nil {
		return r, err
	}
	if r.ChequeNumber, err = i32Ptr(vals, 4, "cheque_number"); err != nil {
		return r, err
	}
	if r.DebitAmount, err = f64Ptr(vals, 5, "debit_amount"); err != nil {
		return r, err
	}
	if r.CreditAmount, err = f64Ptr(vals, 6, "credit_amount"); err != nil {
		return r, err
	}
	if r.RunningBalance, err = f64Ptr(vals, 7, "running_balance"); err != nil {
		return r, err
	}
	return r, nil
}

func decodePdqRow(vals []any) (domain.PdqRow, error) {
	var r domain.PdqRow
	if err := arity(vals, 22); err != nil {
		return r, err
	}
	var err error
	if r.AccountNo, err = f64Ptr(vals, 0, "account_no"); err != nil {
		return r, err
	}
	if r.LocationNo, err = f64Ptr(vals, 1, "location_no"); err != nil {
		return r, err
	}
	if r.LegalName, err = strPtr(vals, 2, "legal_name"); err != nil {
		return r, err
	}
	if r.CardNo, err = str(vals, 3, "card_no"); err != nil {
		return r, err
	}
	if r.TxnDate, err = tstampPtr(vals, 4, "txn_date"); err != nil {
		return r, err
	}
	if r.ProcessingDate, err = tstampPtr(vals, 5, "processing_date"); err != nil {
		return r, err
	}
	if r.PaymentDate, err = tstampPtr(vals, 6, "payment_date"); err != nil {
		return r, err
	}
	if r.TerminalID, err = f64Ptr(vals, 7, "terminal_id"); err != nil {
		return r, err
	}
	if r.AuthID, err = strPtr(vals, 8, "auth_id"); err != nil {
		return r, err
	}
	if r.Amount, err = f64Ptr(vals, 9, "amount"); err != nil {
		return r, err
	}
	if r.Commission, err = f64Ptr(vals, 10, "commission"); err != nil {
		return r, err
	}
	if r.NetAmount, err = f64Ptr(vals, 11, "net_amount"); err != nil {
		return r, err
	}
	if r.TrxnType, err = strPtr(vals, 12, "trxn_type"); err != nil {
		return r, err
	}
	if r.Currency, err = strPtr(vals, 13, "currency"); err != nil {
		return r, err
	}
	if r.PmntType, err = strPtr(vals, 14, "pmnt_type"); err != nil {
		return r, err
	}
	if r.TrxnSource, err = strPtr(vals, 15, "trxn_source"); err != nil {
		return r, err
	}
	if r.Scheme, err = strPtr(vals, 16, "scheme"); err != nil {
		return r, err
	}
	if r.CommercialName, err = strPtr(vals, 17, "commercial_name"); err != nil {
		return r, err
	}
	if r.ArnReference, err = strPtr(vals, 18, "arn_reference"); err != nil {
		return r, err
	}
	if r.RetrievalRefNo, err = strPtr(vals, 19, "retrieval_ref_no"); err != nil {
		return r, err
	}
	if r.TipAmount, err = f64Ptr(vals, 20, "tip_amount"); err != nil {
		return r, err
	}
	if r.CardPresent, err = strPtr(vals, 21, "card_present"); err != nil {
		return r, err
	}
	return r, nil
}

func decodeSidianRow(vals []any) (domain.SidianRow, error) {
	var r domain.SidianRow
	if err := arity(vals, 8); err != nil {
		return r, err
	}
	var err error
	if r.Date, err = tstamp(vals, 0, "date"); err != nil {
		return r, err
	}
	if r.ValueDate, err = tstampPtr(vals, 1, "valuedate"); err != nil {
		return r, err
	}
	if r.Reference, err = strPtr(vals, 2, "reference"); err != nil {
		return r, err
	}
	if r.Narration, err = strPtr(vals, 3, "narration"); err != nil {
		return r, err
	}
	if r.ChequeNumber, err = i32Ptr(vals, 4, "chequenumber"); err != nil {
		return r, err
	}
	if r.Debit, err = f64Ptr(vals, 5, "debit"); err != nil {
		return r, err
	}
	if r.Credit, err = f64Ptr(vals, 6, "credit"); err != nil {
		return r, err
	}
	if r.Balance, err = f64(vals, 7, "balance"); err != nil {
		return r, err
	}
	return r, nil
}

func decodeCfcRow(vals []any) (domain.CfcRow, error) {
	var r domain.CfcRow
	if err := arity(vals, 7); err != nil {
		return r, err
	}
	var err error
	if r.Date, err = tstamp(vals, 0, "date"); err != nil {
		return r, err
	}
	if r.Transaction, err = str(vals, 1, "transaction"); err != nil {
		return r, err
	}
	if r.ValueDate, err = tstamp(vals, 2, "value_date"); err != nil {
		return r, err
	}
	if r.Debit, err = f64Ptr(vals, 3, "debit"); err != nil {
		return r, err
	}
	if r.Credit, err = f64Ptr(vals, 4, "credit"); err != nil {
		return r, err
	}
	if r.LedgerBalance, err = f64Ptr(vals, 5, "ledger_balance"); err != nil {
		return r, err
	}
	if r.AvailableBalance, err = f64Ptr(vals, 6, "available_balance"); err != nil {
		return r, err
	}
	return r, nil
}

func decodeRegisteredPatient(vals []any) (domain.RegisteredPatient, error) {
	var r domain.RegisteredPatient
	if err := arity(vals, 7); err != nil {
		return r, err
	}
	var err error
	if r.UHID, err = str(vals, 0, "uhid"); err != nil {
		return r, err
	}
	if r.Date, err = tstamp(vals, 1, "date"); err != nil {
		return r, err
	}
	if r.PatientName, err = str(vals, 2, "patient_name"); err != nil {
		return r, err
	}
	if r.Age, err = str(vals, 3, "age"); err != nil {
		return r, err
	}
	if r.Gender, err = str(vals, 4, "gender"); err != nil {
		return r, err
	}
	if r.Address, err = strPtr(vals, 5, "address"); err != nil {
		return r, err
	}
	if r.ContactNo, err = strPtr(vals, 6, "contact_no"); err != nil {
		return r, err
	}
	return r, nil
}

func decodeReconciledMpesa(vals []any) (domain.ReconciledMpesa, error) {
	var r domain.ReconciledMpesa
	if err := arity(vals, 7); err != nil {
		return r, err
	}
	var err error
	if r.BillingNumber, err = str(vals, 0, "billing_number"); err != nil {
		return r, err
	}
	if r.Cashier, err = str(vals, 1, "cashier"); err != nil {
		return r, err
	}
	if r.ReceiptDate, err = tstamp(vals, 2, "receipt_date"); err != nil {
		return r, err
	}
	if r.PatientName, err = str(vals, 3, "patient_name"); err != nil {
		return r, err
	}
	if r.Mpesa, err = f64(vals, 4, "mpesa"); err != nil {
		return r, err
	}
	if r.TransactionCode, err = str(vals, 5, "transaction_code"); err != nil {
		return r, err
	}
	if r.Comments, err = str(vals, 6, "comments"); err != nil {
		return r, err
	}
	return r, nil
}
