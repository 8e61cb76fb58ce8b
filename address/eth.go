package address

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// 이더리움 주소를 체크섬 주소로 변환
func (n Network) FromEthAddress(addr common.Address) (string, error) {
	return n.Encode(addr.Hex())
}

// 체크섬 주소를 이더리움 주소로 변환 (본문이 정확히 20바이트여야 함)
func (n Network) ToEthAddress(address string) (common.Address, error) {
	hexAddr, err := n.Decode(address)
	if err != nil {
		return common.Address{}, err
	}

	if len(hexAddr) != len(hexPrefix)+bodyLength {
		return common.Address{}, errors.Wrapf(ErrInvalidFormat, "address %q: not %d bytes", address, common.AddressLength)
	}

	return common.HexToAddress(hexAddr), nil
}

func FromEthAddress(addr common.Address) (string, error) {
	return Velas.FromEthAddress(addr)
}

func ToEthAddress(address string) (common.Address, error) {
	return Velas.ToEthAddress(address)
}
