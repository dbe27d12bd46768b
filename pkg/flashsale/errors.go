package flashsale

// FlashSaleError is the custom program error code surfaced to clients when an
// instruction is rejected on chain.
type FlashSaleError uint32

const (
	// Missing required signer
	ErrCodeMissingRequiredSigner FlashSaleError = iota + 0x1770

	// Account not owned by the expected program
	ErrCodeIllegalAccountOwner

	// Account not at the expected derived address
	ErrCodeIllegalAccountAddress

	// Item name exceeds the stored name budget
	ErrCodeNameTooLong

	// Payment amount overflowed
	ErrCodePaymentOverflow

	// Malformed sale record
	ErrCodeInvalidSaleRecord
)
