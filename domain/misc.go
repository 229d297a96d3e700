package domain

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var (
	Big1000 = big.NewInt(1000)
)

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

// AddressFromCommon renders a go-ethereum address in its lower case hex form
func AddressFromCommon(a common.Address) Address {
	return Address(strings.ToLower(a.Hex()))
}

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) ToCommon() common.Address {
	return common.HexToAddress(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}
