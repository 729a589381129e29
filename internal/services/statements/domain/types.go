// Package domain holds the statement record types served and ingested by the API
package domain

import "time"

// StatementType tags a registered statement family, the URL segment form
type StatementType string

// Registered statement families
const (
	TypeMpesa             StatementType = "mpesa"
	TypeCollectionDetails StatementType = "collectiondetails"
	TypeBillDetails       StatementType = "billdetails"
	TypeLabVisits         StatementType = "labvisits"
	TypeMtiba             StatementType = "mtiba"
	TypeAbsa              StatementType = "absa"
	TypePdq               StatementType = "pdq"
	TypeSidian            StatementType = "sidian"
	TypeCfc               StatementType = "cfc"
)

// IngestResult reports a committed batch
type IngestResult struct {
	IngestID string        `json:"ingest_id"`
	Type     StatementType `json:"type"`
	Count    int64         `json:"count"`
}

// opt lowers a pointer field to a wire value, nil marks a null
func opt[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

//
// Write records, the staging-bound shapes accepted on ingest.
// Field order mirrors the staging column order exactly
//

// MpesaWrite is one M-Pesa ledger line bound for staging
type MpesaWrite struct {
	ReceiptNo           string   `json:"receipt_no" validate:"required"`
	CompletionTime      string   `json:"completion_time"`
	InitiationTime      string   `json:"initiation_time"`
	Details             string   `json:"details"`
	TransactionStatus   string   `json:"transaction_status"`
	PaidIn              *float64 `json:"paid_in"`
	Withdrawn           *float64 `json:"withdrawn"`
	Balance             *float64 `json:"balance"`
	BalanceConfirmed    bool     `json:"balance_confirmed"`
	ReasonType          string   `json:"reason_type"`
	OtherPartyInfo      string   `json:"other_party_info"`
	LinkedTransactionID *string  `json:"linked_transaction_id"`
	AcNo                string   `json:"ac_no"`
}

// WireValues returns the record as positional wire values in staging column order
func (m MpesaWrite) WireValues() []any {
	return []any{
		m.ReceiptNo, m.CompletionTime, m.InitiationTime, m.Details,
		m.TransactionStatus, opt(m.PaidIn), opt(m.Withdrawn), opt(m.Balance),
		m.BalanceConfirmed, m.ReasonType, m.OtherPartyInfo,
		opt(m.LinkedTransactionID), m.AcNo,
	}
}

// CollectionWrite is one cashier collection line bound for staging
type CollectionWrite struct {
	ReceiptNo     *string  `json:"receipt_no"`
	ReceiptDate   string   `json:"receipt_date" validate:"required"`
	PatientName   *string  `json:"patient_name"`
	Payee         *string  `json:"payee"`
	Cash          *float64 `json:"cash"`
	Cheque        *float64 `json:"cheque"`
	Card          *float64 `json:"card"`
	CardNo        *float64 `json:"card_no"`
	Mpesa         *float64 `json:"mpesa"`
	ETransfer     *float64 `json:"e_transfer"`
	TransactionNo *string  `json:"transaction_no"`
	AdvUsed       *float64 `json:"adv_used"`
	EmployeeName  *string  `json:"employee_name"`
	UnitName      *string  `json:"unit_name"`
}

// WireValues returns the record as positional wire values in staging column order
func (c CollectionWrite) WireValues() []any {
	return []any{
		opt(c.ReceiptNo), c.ReceiptDate, opt(c.PatientName), opt(c.Payee),
		opt(c.Cash), opt(c.Cheque), opt(c.Card), opt(c.CardNo), opt(c.Mpesa),
		opt(c.ETransfer), opt(c.TransactionNo), opt(c.AdvUsed),
		opt(c.EmployeeName), opt(c.UnitName),
	}
}

// BillWrite is one billed service line bound for staging
type BillWrite struct {
	BillDate     string   `json:"bill_date" validate:"required"`
	BillNo       *string  `json:"bill_no"`
	SkypeID      *string  `json:"skypeid"`
	UHID         *string  `json:"uhid"`
	VisitType    *string  `json:"visit_type"`
	PatientName  *string  `json:"patient_name"`
	Payee        *string  `json:"payee"`
	ServiceName  *string  `json:"service_name"`
	Quantity     *float64 `json:"quantity"`
	RatePerUnit  *float64 `json:"rate_per_unit"`
	Discount     *float64 `json:"discount"`
	Gross        *float64 `json:"gross"`
	PaidAmount   *float64 `json:"paid_amount"`
	Outstanding  *float64 `json:"outstanding"`
	ServiceDoc   *string  `json:"service_doc"`
	Department   *string  `json:"department"`
	ConsultingDr *string  `json:"consulting_dr"`
	ReferringDr  *string  `json:"referring_dr"`
	ServicingDr  *string  `json:"servicing_dr"`
	PaymentMode  *string  `json:"payment_mode"`
	Unit         string   `json:"unit"`
}

// WireValues returns the record as positional wire values in staging column order
func (b BillWrite) WireValues() []any {
	return []any{
		b.BillDate, opt(b.BillNo), opt(b.SkypeID), opt(b.UHID),
		opt(b.VisitType), opt(b.PatientName), opt(b.Payee), opt(b.ServiceName),
		opt(b.Quantity), opt(b.RatePerUnit), opt(b.Discount), opt(b.Gross),
		opt(b.PaidAmount), opt(b.Outstanding), opt(b.ServiceDoc),
		opt(b.Department), opt(b.ConsultingDr), opt(b.ReferringDr),
		opt(b.ServicingDr), opt(b.PaymentMode), b.Unit,
	}
}

// LabVisitWrite is one lab sample intake line bound for staging
type LabVisitWrite struct {
	SampleNumber   string   `json:"sample_number" validate:"required"`
	Name           string   `json:"name"`
	IDPassportNo   *string  `json:"id_passport_no"`
	Age            float64  `json:"age"`
	AgeUnit        string   `json:"age_unit"`
	Gender         string   `json:"gender"`
	PhoneNumber    *string  `json:"phone_number"`
	SampleDate     string   `json:"sample_date" validate:"required"`
	Result         string   `json:"result"`
	EmailAddress   *string  `json:"email_address"`
}

// WireValues returns the record as positional wire values in staging column order
func (l LabVisitWrite) WireValues() []any {
	return []any{
		l.SampleNumber, l.Name, opt(l.IDPassportNo), l.Age, l.AgeUnit,
		l.Gender, opt(l.PhoneNumber), l.SampleDate, l.Result,
		opt(l.EmailAddress),
	}
}

// MtibaWrite is one MTIBA wallet transaction bound for staging
type MtibaWrite struct {
	TransactionStateID  *int32    `json:"transactionstateid"`
	TransactionTypeID   *int32    `json:"transactiontypeid"`
	FacilityZohold      string    `json:"facilityzohold"`
	FacilityName        string    `json:"facilityname"`
	FullReferenceNumber string    `json:"fullreferencenumber" validate:"required"`
	PhoneNumber         string    `json:"phonenumber"`
	PayerName           string    `json:"payername"`
	SenderName          string    `json:"sendername"`
	MedicalProgramName  string    `json:"medicalprogramname"`
	AmountForDisplay    *float64  `json:"amountfordisplay"`
	TransactionDate     time.Time `json:"transactiondate" validate:"required"`
	PaymentDate         time.Time `json:"paymentdate" validate:"required"`
	TransactionType     string    `json:"transactiontype"`
}

// WireValues returns the record as positional wire values in staging column order
func (m MtibaWrite) WireValues() []any {
	return []any{
		opt(m.TransactionStateID), opt(m.TransactionTypeID), m.FacilityZohold,
		m.FacilityName, m.FullReferenceNumber, m.PhoneNumber, m.PayerName,
		m.SenderName, m.MedicalProgramName, opt(m.AmountForDisplay),
		m.TransactionDate, m.PaymentDate, m.TransactionType,
	}
}

// AbsaWrite is one ABSA bank statement line bound for staging
type AbsaWrite struct {
	TransactionDate     string   `json:"transaction_date" validate:"required"`
	ValueDate           string   `json:"value_date"`
	Description         string   `json:"description"`
	UserReferenceNumber *string  `json:"user_reference_number"`
	ChequeNumber        *float64 `json:"cheque_number"`
	DebitAmount         *float64 `json:"debit_amount"`
	CreditAmount        *float64 `json:"credit_amount"`
	RunningBalance      *float64 `json:"running_balance"`
}

// WireValues returns the record as positional wire values in staging column order
func (a AbsaWrite) WireValues() []any {
	return []any{
		a.TransactionDate, a.ValueDate, a.Description,
		opt(a.UserReferenceNumber), opt(a.ChequeNumber), opt(a.DebitAmount),
		opt(a.CreditAmount), opt(a.RunningBalance),
	}
}

// PdqWrite is one card terminal settlement line bound for staging
type PdqWrite struct {
	AccountNo      *float64 `json:"account_no"`
	LocationNo     *float64 `json:"location_no"`
	LegalName      *string  `json:"legal_name"`
	CardNo         string   `json:"card_no" validate:"required"`
	TxnDate        *string  `json:"txn_date"`
	ProcessingDate *string  `json:"processing_date"`
	PaymentDate    *string  `json:"payment_date"`
	TerminalID     *float64 `json:"terminal_id"`
	AuthID         *string  `json:"auth_id"`
	Amount         *float64 `json:"amount"`
	Commission     *float64 `json:"commission"`
	NetAmount      *float64 `json:"net_amount"`
	TrxnType       *string  `json:"trxn_type"`
	Currency       *string  `json:"currency"`
	PmntType       *string  `json:"pmnt_type"`
	TrxnSource     *string  `json:"trxn_source"`
	Scheme         *string  `json:"scheme"`
	CommercialName *string  `json:"commercial_name"`
	ArnReference   *string  `json:"arn_reference"`
	RetrievalRefNo *string  `json:"retrieval_ref_no"`
	TipAmount      *float64 `json:"tip_amount"`
	CardPresent    *string  `json:"card_present"`
}

// WireValues returns the record as positional wire values in staging column order
func (p PdqWrite) WireValues() []any {
	return []any{
		opt(p.AccountNo), opt(p.LocationNo), opt(p.LegalName), p.CardNo,
		opt(p.TxnDate), opt(p.ProcessingDate), opt(p.PaymentDate),
		opt(p.TerminalID), opt(p.AuthID), opt(p.Amount), opt(p.Commission),
		opt(p.NetAmount), opt(p.TrxnType), opt(p.Currency), opt(p.PmntType),
		opt(p.TrxnSource), opt(p.Scheme), opt(p.CommercialName),
		opt(p.ArnReference), opt(p.RetrievalRefNo), opt(p.TipAmount),
		opt(p.CardPresent),
	}
}

// SidianWrite is one Sidian bank statement line bound for staging
type SidianWrite struct {
	Date         string   `json:"date" validate:"required"`
	ValueDate    *string  `json:"valuedate"`
	Reference    *string  `json:"reference"`
	Narration    *string  `json:"narration"`
	ChequeNumber *float64 `json:"chequenumber"`
	Debit        *float64 `json:"debit"`
	Credit       *float64 `json:"credit"`
	Balance      float64  `json:"balance"`
}

// WireValues returns the record as positional wire values in staging column order
func (s SidianWrite) WireValues() []any {
	return []any{
		s.Date, opt(s.ValueDate), opt(s.Reference), opt(s.Narration),
		opt(s.ChequeNumber), opt(s.Debit), opt(s.Credit), s.Balance,
	}
}

// CfcWrite is one CFC Stanbic bank statement line bound for staging
type CfcWrite struct {
	Date             time.Time `json:"date" validate:"required"`
	Transaction      string    `json:"transaction"`
	ValueDate        time.Time `json:"value_date" validate:"required"`
	Debit            *float64  `json:"debit"`
	Credit           *float64  `json:"credit"`
	LedgerBalance    *float64  `json:"ledger_balance"`
	AvailableBalance *float64  `json:"available_balance"`
}

// WireValues returns the record as positional wire values in staging column order
func (c CfcWrite) WireValues() []any {
	return []any{
		c.Date, c.Transaction, c.ValueDate, opt(c.Debit), opt(c.Credit),
		opt(c.LedgerBalance), opt(c.AvailableBalance),
	}
}

// WirePrototype returns the zero write record's wire values for a statement
// type tag. The second return is false for an unregistered tag
func WirePrototype(typ StatementType) ([]any, bool) {
	switch typ {
	case TypeMpesa:
		return MpesaWrite{}.WireValues(), true
	case TypeCollectionDetails:
		return CollectionWrite{}.WireValues(), true
	case TypeBillDetails:
		return BillWrite{}.WireValues(), true
	case TypeLabVisits:
		return LabVisitWrite{}.WireValues(), true
	case TypeMtiba:
		return MtibaWrite{}.WireValues(), true
	case TypeAbsa:
		return AbsaWrite{}.WireValues(), true
	case TypePdq:
		return PdqWrite{}.WireValues(), true
	case TypeSidian:
		return SidianWrite{}.WireValues(), true
	case TypeCfc:
		return CfcWrite{}.WireValues(), true
	default:
		return nil, false
	}
}

//
// Read records, the production shapes served by the fetch endpoints.
// Field order mirrors the production column order exactly
//

// MpesaRow is one typed M-Pesa ledger line from production
type MpesaRow struct {
	ReceiptNo           string    `json:"receipt_no"`
	CompletionTime      time.Time `json:"completion_time"`
	InitiationTime      time.Time `json:"initiation_time"`
	Details             string    `json:"details"`
	TransactionStatus   string    `json:"transaction_status"`
	PaidIn              *float64  `json:"paid_in"`
	Withdrawn           *float64  `json:"withdrawn"`
	Balance             float64   `json:"balance"`
	BalanceConfirmed    bool      `json:"balance_confirmed"`
	ReasonType          string    `json:"reason_type"`
	OtherPartyInfo      string    `json:"other_party_info"`
	LinkedTransactionID *string   `json:"linked_transaction_id"`
	AcNo                *string   `json:"ac_no"`
}

// CollectionRow is one typed cashier collection line from production
type CollectionRow struct {
	ReceiptNo     *string   `json:"receipt_no"`
	ReceiptDate   time.Time `json:"receipt_date"`
	PatientName   *string   `json:"patient_name"`
	Payee         *string   `json:"payee"`
	Cash          *float64  `json:"cash"`
	Cheque        *float64  `json:"cheque"`
	Card          *float64  `json:"card"`
	CardNo        *string   `json:"card_no"`
	Mpesa         *float64  `json:"mpesa"`
	ETransfer     *float64  `json:"e_transfer"`
	TransactionNo *string   `json:"transaction_no"`
	AdvUsed       *float64  `json:"adv_used"`
	EmployeeName  *string   `json:"employee_name"`
	UnitName      *string   `json:"unit_name"`
}

// BillRow is one typed billed service line from production
type BillRow struct {
	BillDate     time.Time `json:"bill_date"`
	BillNo       *string   `json:"bill_no"`
	SkypeID      *string   `json:"skypeid"`
	UHID         *string   `json:"uhid"`
	Visit        *string   `json:"visit"`
	PatientName  *string   `json:"patient_name"`
	Payee        *string   `json:"payee"`
	ServiceName  *string   `json:"service_name"`
	Quantity     *float64  `json:"quantity"`
	RatePerUnit  *float64  `json:"rate_per_unit"`
	Discount     *float64  `json:"discount"`
	Gross        *float64  `json:"gross"`
	PaidAmount   *float64  `json:"paid_amount"`
	Outstanding  *float64  `json:"outstanding"`
	ServiceDoc   *string   `json:"service_doc"`
	Department   *string   `json:"department"`
	ConsultingDr *string   `json:"consulting_dr"`
	ReferringDr  *string   `json:"referring_dr"`
	ServicingDr  *string   `json:"servicing_dr"`
	PaymentMode  *string   `json:"payment_mode"`
}

// LabVisitRow is one typed lab sample intake line from production
type LabVisitRow struct {
	SampleNumber string    `json:"sample_number"`
	Name         string    `json:"name"`
	IDPassportNo string    `json:"id_passport_no"`
	Age          int32     `json:"age"`
	AgeUnit      string    `json:"age_unit"`
	Gender       string    `json:"gender"`
	PhoneNumber  *string   `json:"phone_number"`
	SampleDate   time.Time `json:"sample_date"`
	Result       string    `json:"result"`
	EmailAddress *string   `json:"email_address"`
}

// MtibaRow is one typed MTIBA wallet transaction from production
type MtibaRow struct {
	TransactionStateID  *int32    `json:"transactionstateid"`
	TransactionTypeID   *int32    `json:"transactiontypeid"`
	FacilityZohold      string    `json:"facilityzohold"`
	FacilityName        string    `json:"facilityname"`
	FullReferenceNumber string    `json:"fullreferencenumber"`
	PhoneNumber         string    `json:"phonenumber"`
	PayerName           string    `json:"payername"`
	SenderName          string    `json:"sendername"`
	MedicalProgramName  string    `json:"medicalprogramname"`
	AmountForDisplay    float64   `json:"amountfordisplay"`
	TransactionDate     time.Time `json:"transactiondate"`
	PaymentDate         time.Time `json:"paymentdate"`
	TransactionType     string    `json:"transactiontype"`
}

// AbsaRow is one typed ABSA bank statement line from production
type AbsaRow struct {
	TransactionDate     time.Time `json:"transaction_date"`
	ValueDate           time.Time `json:"value_date"`
	Description         string    `json:"description"`
	UserReferenceNumber *string   `json:"user_reference_number"`
	ChequeNumber        *int32    `json:"cheque_number"`
	DebitAmount         *float64  `json:"debit_amount"`
	CreditAmount        *float64  `json:"credit_amount"`
	RunningBalance      *float64  `json:"running_balance"`
}

// PdqRow is one typed card terminal settlement line from production
type PdqRow struct {
	AccountNo      *float64   `json:"account_no"`
	LocationNo     *float64   `json:"location_no"`
	LegalName      *string    `json:"legal_name"`
	CardNo         string     `json:"card_no"`
	TxnDate        *time.Time `json:"txn_date"`
	ProcessingDate *time.Time `json:"processing_date"`
	PaymentDate    *time.Time `json:"payment_date"`
	TerminalID     *float64   `json:"terminal_id"`
	AuthID         *string    `json:"auth_id"`
	Amount         *float64   `json:"amount"`
	Commission     *float64   `json:"commission"`
	NetAmount      *float64   `json:"net_amount"`
	TrxnType       *string    `json:"trxn_type"`
	Currency       *string    `json:"currency"`
	PmntType       *string    `json:"pmnt_type"`
	TrxnSource     *string    `json:"trxn_source"`
	Scheme         *string    `json:"scheme"`
	CommercialName *string    `json:"commercial_name"`
	ArnReference   *string    `json:"arn_reference"`
	RetrievalRefNo *string    `json:"retrieval_ref_no"`
	TipAmount      *float64   `json:"tip_amount"`
	CardPresent    *string    `json:"card_present"`
}

// SidianRow is one typed Sidian bank statement line from production
type SidianRow struct {
	Date         time.Time  `json:"date"`
	ValueDate    *time.Time `json:"valuedate"`
	Reference    *string    `json:"reference"`
	Narration    *string    `json:"narration"`
	ChequeNumber *int32     `json:"chequenumber"`
	Debit        *float64   `json:"debit"`
	Credit       *float64   `json:"credit"`
	Balance      float64    `json:"balance"`
}

// CfcRow is one typed CFC Stanbic bank statement line from production
type CfcRow struct {
	Date             time.Time `json:"date"`
	Transaction      string    `json:"transaction"`
	ValueDate        time.Time `json:"value_date"`
	Debit            *float64  `json:"debit"`
	Credit           *float64  `json:"credit"`
	LedgerBalance    *float64  `json:"ledger_balance"`
	AvailableBalance *float64  `json:"available_balance"`
}

// RegisteredPatient is one row of the read-only patient register
type RegisteredPatient struct {
	UHID        string    `json:"uhid"`
	Date        time.Time `json:"date"`
	PatientName string    `json:"patient_name"`
	Age         string    `json:"age"`
	Gender      string    `json:"gender"`
	Address     *string   `json:"address"`
	ContactNo   *string   `json:"contact_no"`
}

// ReconciledMpesa is one collection line matched against the M-Pesa ledger
type ReconciledMpesa struct {
	BillingNumber   string    `json:"billing_number"`
	Cashier         string    `json:"cashier"`
	ReceiptDate     time.Time `json:"receipt_date"`
	PatientName     string    `json:"patient_name"`
	Mpesa           float64   `json:"mpesa"`
	TransactionCode string    `json:"transaction_code"`
	Comments        string    `json:"comments"`
}
