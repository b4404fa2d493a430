package types

// ProofType tags a registered verifying key, image-id and journal layout.
// It is the key into every registry this module owns; the facade never
// dispatches on anything richer than this at runtime, matching the
// "tagged enum, table lookup" pattern the core is built around.
type ProofType int32

const (
	ProofTypeUnspecified ProofType = iota
	ProofTypeIncomeThreshold
	ProofTypeIncomeRange
	ProofTypeCreditScore
	ProofTypePaymentProof
	ProofTypeBalanceProof
)

func (t ProofType) String() string {
	switch t {
	case ProofTypeIncomeThreshold:
		return "income_threshold"
	case ProofTypeIncomeRange:
		return "income_range"
	case ProofTypeCreditScore:
		return "credit_score"
	case ProofTypePaymentProof:
		return "payment_proof"
	case ProofTypeBalanceProof:
		return "balance_proof"
	default:
		return "unspecified"
	}
}

// IsValid reports whether t is one of the known journal layouts this module
// ships a decoder for. Registries accept any positive tag value -- a consumer
// may register a proof type this module doesn't have a typed journal decoder
// for -- but VerifyAndExtract only knows how to parse these five.
func (t ProofType) IsValid() bool {
	switch t {
	case ProofTypeIncomeThreshold, ProofTypeIncomeRange, ProofTypeCreditScore,
		ProofTypePaymentProof, ProofTypeBalanceProof:
		return true
	default:
		return false
	}
}
