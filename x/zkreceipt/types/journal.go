package types

import "encoding/binary"

// The journal is opaque application data as far as the Groth16 core is
// concerned (§4.4) -- the core never inspects it to decide Verified vs not.
// These five layouts are "known journals" (§6.4) this module additionally
// knows how to decode once a proof has already verified, purely as a
// convenience for VerifyAndExtract callers. Every field is big-endian,
// matching the guest program's own output encoding.

// IncomeThresholdJournal is produced by a guest program proving that a
// payment history sums above a declared threshold.
type IncomeThresholdJournal struct {
	Threshold      uint64
	MeetsThreshold bool
	PaymentCount   uint32
}

// IncomeRangeJournal is produced by a guest program proving that a payment
// history's total falls within a declared [Min, Max] range.
type IncomeRangeJournal struct {
	Min     uint64
	Max     uint64
	InRange bool
}

// CreditScoreJournal is produced by a guest program proving a score meets
// a declared minimum without revealing the score's derivation.
type CreditScoreJournal struct {
	Score        uint32
	MeetsMinimum bool
}

// PaymentProofJournal is produced by a guest program proving a payment of a
// declared amount was made on or before a deadline known to the circuit.
type PaymentProofJournal struct {
	AmountPaid uint64
	PaidOnTime bool
}

// BalanceProofJournal is produced by a guest program proving an account
// balance meets a declared minimum.
type BalanceProofJournal struct {
	MinBalance   uint64
	MeetsMinimum bool
}

func decodeBool(b byte) bool { return b != 0 }

func encodeBool(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// DecodeIncomeThresholdJournal parses a 13-byte journal.
func DecodeIncomeThresholdJournal(journal []byte) (IncomeThresholdJournal, error) {
	if len(journal) < 13 {
		return IncomeThresholdJournal{}, ErrInvalidJournal.Wrapf("income threshold journal too short: %d bytes", len(journal))
	}
	return IncomeThresholdJournal{
		Threshold:      binary.BigEndian.Uint64(journal[0:8]),
		MeetsThreshold: decodeBool(journal[8]),
		PaymentCount:   binary.BigEndian.Uint32(journal[9:13]),
	}, nil
}

// EncodeIncomeThresholdJournal is the inverse of DecodeIncomeThresholdJournal,
// used by tests to construct fixtures.
func EncodeIncomeThresholdJournal(j IncomeThresholdJournal) []byte {
	out := make([]byte, 13)
	binary.BigEndian.PutUint64(out[0:8], j.Threshold)
	out[8] = encodeBool(j.MeetsThreshold)
	binary.BigEndian.PutUint32(out[9:13], j.PaymentCount)
	return out
}

// DecodeIncomeRangeJournal parses a 17-byte journal.
func DecodeIncomeRangeJournal(journal []byte) (IncomeRangeJournal, error) {
	if len(journal) < 17 {
		return IncomeRangeJournal{}, ErrInvalidJournal.Wrapf("income range journal too short: %d bytes", len(journal))
	}
	return IncomeRangeJournal{
		Min:     binary.BigEndian.Uint64(journal[0:8]),
		Max:     binary.BigEndian.Uint64(journal[8:16]),
		InRange: decodeBool(journal[16]),
	}, nil
}

// EncodeIncomeRangeJournal is the inverse of DecodeIncomeRangeJournal.
func EncodeIncomeRangeJournal(j IncomeRangeJournal) []byte {
	out := make([]byte, 17)
	binary.BigEndian.PutUint64(out[0:8], j.Min)
	binary.BigEndian.PutUint64(out[8:16], j.Max)
	out[16] = encodeBool(j.InRange)
	return out
}

// DecodeCreditScoreJournal parses a 5-byte journal.
func DecodeCreditScoreJournal(journal []byte) (CreditScoreJournal, error) {
	if len(journal) < 5 {
		return CreditScoreJournal{}, ErrInvalidJournal.Wrapf("credit score journal too short: %d bytes", len(journal))
	}
	return CreditScoreJournal{
		Score:        binary.BigEndian.Uint32(journal[0:4]),
		MeetsMinimum: decodeBool(journal[4]),
	}, nil
}

// EncodeCreditScoreJournal is the inverse of DecodeCreditScoreJournal.
func EncodeCreditScoreJournal(j CreditScoreJournal) []byte {
	out := make([]byte, 5)
	binary.BigEndian.PutUint32(out[0:4], j.Score)
	out[4] = encodeBool(j.MeetsMinimum)
	return out
}

// DecodePaymentProofJournal parses a 9-byte journal.
func DecodePaymentProofJournal(journal []byte) (PaymentProofJournal, error) {
	if len(journal) < 9 {
		return PaymentProofJournal{}, ErrInvalidJournal.Wrapf("payment proof journal too short: %d bytes", len(journal))
	}
	return PaymentProofJournal{
		AmountPaid: binary.BigEndian.Uint64(journal[0:8]),
		PaidOnTime: decodeBool(journal[8]),
	}, nil
}

// EncodePaymentProofJournal is the inverse of DecodePaymentProofJournal.
func EncodePaymentProofJournal(j PaymentProofJournal) []byte {
	out := make([]byte, 9)
	binary.BigEndian.PutUint64(out[0:8], j.AmountPaid)
	out[8] = encodeBool(j.PaidOnTime)
	return out
}

// DecodeBalanceProofJournal parses a 9-byte journal.
func DecodeBalanceProofJournal(journal []byte) (BalanceProofJournal, error) {
	if len(journal) < 9 {
		return BalanceProofJournal{}, ErrInvalidJournal.Wrapf("balance proof journal too short: %d bytes", len(journal))
	}
	return BalanceProofJournal{
		MinBalance:   binary.BigEndian.Uint64(journal[0:8]),
		MeetsMinimum: decodeBool(journal[8]),
	}, nil
}

// EncodeBalanceProofJournal is the inverse of DecodeBalanceProofJournal.
func EncodeBalanceProofJournal(j BalanceProofJournal) []byte {
	out := make([]byte, 9)
	binary.BigEndian.PutUint64(out[0:8], j.MinBalance)
	out[8] = encodeBool(j.MeetsMinimum)
	return out
}

// DecodeJournal dispatches to the typed decoder for tag and returns the
// decoded struct as `any`. Unknown tags return ErrInvalidProofType.
func DecodeJournal(tag ProofType, journal []byte) (any, error) {
	switch tag {
	case ProofTypeIncomeThreshold:
		return DecodeIncomeThresholdJournal(journal)
	case ProofTypeIncomeRange:
		return DecodeIncomeRangeJournal(journal)
	case ProofTypeCreditScore:
		return DecodeCreditScoreJournal(journal)
	case ProofTypePaymentProof:
		return DecodePaymentProofJournal(journal)
	case ProofTypeBalanceProof:
		return DecodeBalanceProofJournal(journal)
	default:
		return nil, ErrInvalidProofType.Wrapf("no journal decoder for tag %d", tag)
	}
}
