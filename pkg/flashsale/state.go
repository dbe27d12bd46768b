package flashsale

import (
	"crypto/ed25519"
	"strconv"

	"github.com/mr-tron/base58/base58"
	"github.com/pkg/errors"

	"github.com/code-payments/flashsale-program/pkg/solana/binary"
)

const MaxNameLength = 32

const (
	// 8 + 8 + 32 + 32 for price, init_timestamp, mint and owner.
	saleAccountFixedSize = 80

	// SaleAccountMaxSize is the account allocation for a sale record with the
	// full item name budget. Records with shorter names leave trailing padding.
	SaleAccountMaxSize = 4 + MaxNameLength + saleAccountFixedSize
)

var (
	ErrBufferTooSmall = errors.New("buffer too small for sale record")
)

// SaleAccount holds the persisted configuration and state of one flash sale,
// keyed by (item_name, mint, owner).
type SaleAccount struct {
	// ItemName is stored as a length-prefixed run of raw bytes. It is a
	// byte-for-byte pass-through, not a validated text encoding.
	ItemName string
	// Price in lamports charged per redeemed unit.
	Price uint64
	// Ledger timestamp at sale creation.
	InitTimestamp int64
	// Mint of the token being sold. Immutable after creation.
	Mint ed25519.PublicKey
	// Owner and beneficiary of the sale. Immutable after creation.
	Owner ed25519.PublicKey
}

// Size is the exact serialized size of this record.
func (obj *SaleAccount) Size() int {
	return 4 + len(obj.ItemName) + saleAccountFixedSize
}

func (obj *SaleAccount) String() string {
	var mint, owner string

	if obj.Mint != nil {
		mint = base58.Encode(obj.Mint)
	}
	if obj.Owner != nil {
		owner = base58.Encode(obj.Owner)
	}

	return "SaleAccount {" +
		"  item_name='" + obj.ItemName + "'" +
		", price='" + strconv.FormatUint(obj.Price, 10) + "'" +
		", init_timestamp='" + strconv.FormatInt(obj.InitTimestamp, 10) + "'" +
		", mint='" + mint + "'" +
		", owner='" + owner + "'" +
		"}"
}

// Marshal serializes the record into a freshly allocated buffer of exactly
// Size() bytes.
func (obj *SaleAccount) Marshal() []byte {
	data := make([]byte, obj.Size())
	_ = obj.MarshalTo(data)
	return data
}

// MarshalTo serializes the record into the caller-provided buffer. The buffer
// must be at least Size() bytes; undersized buffers fail instead of silently
// truncating.
func (obj *SaleAccount) MarshalTo(data []byte) error {
	if len(data) < obj.Size() {
		return ErrBufferTooSmall
	}

	var offset int

	binary.PutUint32(data, uint32(len(obj.ItemName)), &offset)
	copy(data[offset:], obj.ItemName)
	offset += len(obj.ItemName)

	binary.PutUint64(data[offset:], obj.Price, &offset)
	binary.PutInt64(data[offset:], obj.InitTimestamp, &offset)
	binary.PutKey32(data[offset:], obj.Mint, &offset)
	binary.PutKey32(data[offset:], obj.Owner, &offset)

	return nil
}

// Unmarshal deserializes the record from the provided data buffer. Trailing
// padding beyond the record is ignored. Truncated buffers, or a name length
// prefix that would read past the end of the buffer, fail with
// ErrInvalidAccountData rather than yielding a default-valued record.
func (obj *SaleAccount) Unmarshal(data []byte) error {
	if len(data) < 4+saleAccountFixedSize {
		return ErrInvalidAccountData
	}

	var offset int
	var nameLength uint32

	binary.GetUint32(data, &nameLength, &offset)
	if nameLength > uint32(len(data)-saleAccountFixedSize-offset) {
		return ErrInvalidAccountData
	}

	obj.ItemName = string(data[offset : offset+int(nameLength)])
	offset += int(nameLength)

	binary.GetUint64(data[offset:], &obj.Price, &offset)
	binary.GetInt64(data[offset:], &obj.InitTimestamp, &offset)
	binary.GetKey32(data[offset:], &obj.Mint, &offset)
	binary.GetKey32(data[offset:], &obj.Owner, &offset)

	return nil
}
