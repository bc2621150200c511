package kernel

import (
	"encoding/hex"
	"regexp"
	"strings"

	"pizzahome/internal/pkg/errs"

	"github.com/google/uuid"
)

// OrderIDPrefix is the fixed prefix of every order token.
const OrderIDPrefix = "PH-"

// orderIDPattern matches a complete order token: the fixed prefix followed by
// exactly 8 uppercase hexadecimal characters, e.g. "PH-A1B2C3D4".
var orderIDPattern = regexp.MustCompile(`^PH-[0-9A-F]{8}$`)

// OrderTokenPattern matches order tokens embedded in free text. The router uses
// it to recognize tracking requests, so it must stay in sync with the format
// produced by NewOrderID.
var OrderTokenPattern = regexp.MustCompile(`PH-[0-9A-F]{8}`)

// ErrOrderIDIsNotConstructed indicates a zero-value OrderID. OrderIDs must be
// created via NewOrderID or OrderIDFromString.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromString")

// OrderID is a value object representing the globally unique, human-shareable
// order token. Customers paste it back into the chat to track their order, so
// the format is fixed and grep-able: "PH-" plus 8 uppercase hex characters.
//
// The zero value is invalid and must be constructed through NewOrderID or
// OrderIDFromString. OrderID is immutable and safe for concurrent use.
type OrderID struct {
	token string
}

// NewOrderID generates a fresh order token from a random UUID. The first four
// bytes of a v4 UUID give the 8 hex characters; collision probability at this
// system's volume is treated as negligible, and creation still fails closed on
// collision at the persistence layer.
func NewOrderID() OrderID {
	id := uuid.New()
	return OrderID{
		token: OrderIDPrefix + strings.ToUpper(hex.EncodeToString(id[:4])),
	}
}

// OrderIDFromString parses an order token from its string form. The token must
// match the canonical format exactly, including the uppercase hex digits.
func OrderIDFromString(s string) (OrderID, error) {
	if !orderIDPattern.MatchString(s) {
		return OrderID{}, errs.NewValueIsInvalidError("orderId")
	}
	return OrderID{token: s}, nil
}

// String returns the token, e.g. "PH-A1B2C3D4".
func (id OrderID) String() string {
	return id.token
}

// IsEqual compares two order identifiers by token value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.token == other.token
}

// Validate checks that the OrderID was properly constructed.
// Returns ErrOrderIDIsNotConstructed for the zero value.
func (id OrderID) Validate() error {
	if id.token == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
