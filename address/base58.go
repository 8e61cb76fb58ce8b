package address

import (
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// 비트코인 알파벳의 첫 번째 문자 (0을 의미)
const base58Zero = "1"

func base58Encode(input []byte) string {
	// 앞쪽의 0 바이트는 '1'로 표현됨
	return base58.Encode(input)
}

func base58Decode(input string) ([]byte, error) {
	// 알파벳 밖의 문자나 빈 문자열은 형식 오류로 처리
	decode, err := base58.Decode(input)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidFormat, "base58 decode %q: %v", input, err)
	}

	return decode, nil
}
