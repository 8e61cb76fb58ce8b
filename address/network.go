package address

import "github.com/pkg/errors"

// 이더리움 형식 주소의 접두사
const hexPrefix = "0x"

// 식별자(20바이트)의 16진수 길이
const bodyLength = 40

// 체크섬 주소를 사용하는 네트워크 설정
type Network struct {
	// 오류 메시지에 쓰이는 이름
	Name string
	// 인코딩된 주소 앞에 붙는 네트워크 문자
	Prefix string
	// 접두사를 제외한 base58 문자열의 최소 길이
	EncodedLength int
}

// Velas 네트워크 기본 설정
var Velas = Network{
	Name:          "velas",
	Prefix:        "V",
	EncodedLength: 33,
}

func (n Network) validate() error {
	if n.Prefix == "" {
		return errors.Wrapf(ErrInvalidNetwork, "network %q: empty prefix", n.Name)
	}

	if n.EncodedLength <= 0 {
		return errors.Wrapf(ErrInvalidNetwork, "network %q: encoded length %d", n.Name, n.EncodedLength)
	}

	return nil
}
