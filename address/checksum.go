package address

import (
	"crypto/sha256"
	"encoding/hex"
)

// 체크섬의 길이 (16진수 문자 8개 = 4바이트)
const checksumLength = 8

// 16진수 문자열의 체크섬을 계산하는 함수
//
// 두 번째 해시는 첫 번째 해시의 원시 바이트가 아니라 16진수 문자열에 대해 계산한다.
func Checksum(body string) string {
	// 첫 번째 해시 값을 계산
	firstHash := sha256.Sum256([]byte(body))
	// 첫 번째 해시의 16진수 문자열로 두 번째 해시 값을 계산
	secondHash := sha256.Sum256([]byte(hex.EncodeToString(firstHash[:])))

	// 두 번째 해시 값을 체크섬 길이만큼 잘라서 반환
	return hex.EncodeToString(secondHash[:])[:checksumLength]
}
