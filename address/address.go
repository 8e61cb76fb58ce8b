// Package address converts account addresses between the 0x-prefixed hex
// form and the checksummed base58 form used by Velas.
package address

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// 16진수 주소를 체크섬이 포함된 주소로 변환
func (n Network) Encode(address string) (string, error) {
	if err := n.validate(); err != nil {
		return "", err
	}

	if address == "" {
		return "", errors.Wrap(ErrInvalidFormat, "empty address")
	}

	if !strings.HasPrefix(address, hexPrefix) {
		return "", errors.Wrapf(ErrInvalidFormat, "address %q: missing %q prefix", address, hexPrefix)
	}

	// 접두사를 떼고 소문자로 변환 (16진수 여부는 아래 디코딩에서 확인)
	clearAddr := strings.ToLower(address[len(hexPrefix):])

	// 주소와 체크섬을 합침
	longAddress := clearAddr + Checksum(clearAddr)

	bytes, err := hex.DecodeString(longAddress)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidFormat, "address %q: %v", address, err)
	}

	encode := base58Encode(bytes)

	// 최소 길이가 될 때까지 앞쪽을 '1'로 채움
	if len(encode) < n.EncodedLength {
		encode = strings.Repeat(base58Zero, n.EncodedLength-len(encode)) + encode
	}

	return n.Prefix + encode, nil
}

// 체크섬이 포함된 주소를 16진수 주소로 변환
func (n Network) Decode(address string) (string, error) {
	if err := n.validate(); err != nil {
		return "", err
	}

	if address == "" {
		return "", errors.Wrap(ErrInvalidFormat, "empty address")
	}

	if !strings.HasPrefix(address, n.Prefix) {
		return "", errors.Wrapf(ErrInvalidFormat, "address %q: missing %q prefix", address, n.Prefix)
	}

	decodeAddr, err := base58Decode(address[len(n.Prefix):])
	if err != nil {
		return "", err
	}

	if len(decodeAddr) < checksumLength/2 {
		return "", errors.Wrapf(ErrInvalidFormat, "address %q: %d bytes decoded", address, len(decodeAddr))
	}

	longAddress := hex.EncodeToString(decodeAddr)

	// 마지막 8자는 체크섬, 나머지는 본문 (본문은 최소 한 글자)
	if len(longAddress) < checksumLength+1 {
		return "", errors.Wrapf(ErrInvalidFormat, "address %q: too short", address)
	}

	split := len(longAddress) - checksumLength
	body, checksum := longAddress[:split], longAddress[split:]

	// 인코딩 시 채운 패딩은 모두 '0'이어야 함
	if len(body) > bodyLength {
		excess := len(body) - bodyLength
		if strings.Trim(body[:excess], "0") != "" {
			return "", errors.Wrapf(ErrInvalidFormat, "address %q: non-zero padding", address)
		}
		body = body[excess:]
	}

	if Checksum(body) != checksum {
		return "", errors.Wrapf(ErrChecksumMismatch, "address %q", address)
	}

	return hexPrefix + body, nil
}

// 체크섬 주소의 유효성을 검사
func (n Network) Validate(address string) error {
	_, err := n.Decode(address)
	return err
}

func (n Network) IsValid(address string) bool {
	return n.Validate(address) == nil
}

// 16진수 주소를 Velas 주소로 변환
func Encode(address string) (string, error) {
	return Velas.Encode(address)
}

// Velas 주소를 소문자 16진수 주소로 변환
func Decode(address string) (string, error) {
	return Velas.Decode(address)
}

func Validate(address string) error {
	return Velas.Validate(address)
}

func IsValid(address string) bool {
	return Velas.IsValid(address)
}
