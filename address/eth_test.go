package address

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEthAddress(t *testing.T) {
	t.Parallel()

	for _, v := range vectors {
		got, err := FromEthAddress(common.HexToAddress(v.hex))
		require.NoError(t, err)
		assert.Equal(t, v.encoded, got)
	}
}

func TestToEthAddress(t *testing.T) {
	t.Parallel()

	got, err := ToEthAddress("V5dJeCa7bmkqmZF53TqjRbnB4fG6hxuu4f")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x32Be343B94f860124dC4fEe278FDCBD38C102D88"), got)
	// EIP-55 text
	assert.Equal(t, "0x32Be343B94f860124dC4fEe278FDCBD38C102D88", got.Hex())

	_, err = ToEthAddress("V2UZ2CK1zZ")
	require.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ToEthAddress("V5dJeCa7bmkqmZF53TqjRbnB4fG6hxuu4g")
	require.ErrorIs(t, err, ErrChecksumMismatch)
}
