package address

import "github.com/pkg/errors"

var (
	// 접두사, 16진수, base58 문자, 패딩 구조 등 형식이 잘못된 주소
	ErrInvalidFormat = errors.New("invalid address")
	// 형식은 올바르지만 내장된 체크섬이 다시 계산한 값과 다른 주소
	ErrChecksumMismatch = errors.New("invalid checksum")
	// 잘못 구성된 Network 값
	ErrInvalidNetwork = errors.New("invalid network")
)
