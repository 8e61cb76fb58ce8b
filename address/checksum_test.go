package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "address body", body: "32be343b94f860124dc4fee278fdcbd38c102d88", want: "6db32c74"},
		{name: "empty body", body: "", want: "cd372fb8"},
		{name: "short body", body: "abcd", want: "2889adaa"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Checksum(tt.body)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, checksumLength)
		})
	}
}

func TestChecksum_CaseSensitive(t *testing.T) {
	t.Parallel()

	// hashed as ASCII text, so case matters
	assert.NotEqual(t,
		Checksum("32be343b94f860124dc4fee278fdcbd38c102d88"),
		Checksum("32Be343B94f860124dC4fEe278FDCBD38C102D88"),
	)
}
