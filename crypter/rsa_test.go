package crypter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"modarith-pkg/arithmetic"
	"modarith-pkg/prime"
	"modarith-pkg/rand"
)

func newTestRsa(t *testing.T, seed int64) Crypter {
	t.Helper()

	rsa, err := NewRsa(prime.NewGenerator(rand.NewSeededSampler(seed)), 8)
	assert.NoError(t, err)
	return rsa
}

func TestRsa_RoundTrip(t *testing.T) {
	rsa := newTestRsa(t, 1)

	// n = p*q は最小でも 2*3 を超えるので 1 バイトの小さい値なら必ず収まる
	plainText := []byte{0x02}

	cipherText, err := rsa.EnCrypt(plainText)
	assert.NoError(t, err)

	got, err := rsa.DeCrypt(cipherText)
	assert.NoError(t, err)
	assert.Equal(t, plainText, got)
}

func TestRsa_RoundTrip_Seeds(t *testing.T) {
	// 鍵対が変わっても往復が成り立つこと
	for seed := int64(1); seed <= 5; seed++ {
		rsa := newTestRsa(t, seed)

		cipherText, err := rsa.EnCrypt([]byte{0x02})
		assert.NoError(t, err)

		got, err := rsa.DeCrypt(cipherText)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0x02}, got)
	}
}

func TestRsa_EnCrypt_Errors(t *testing.T) {
	rsa := newTestRsa(t, 1)

	tests := []struct {
		name      string
		plainText []byte
		wantErr   error
	}{
		{name: "異常: 空の平文", plainText: []byte{}},
		{
			name: "異常: 法より大きい平文",
			// 8ビット素数2個の法は高々 255*255 < 2^16 なので16バイトは必ず溢れる
			plainText: []byte("0123456789abcdef"),
			wantErr:   arithmetic.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rsa.EnCrypt(tt.plainText)
			assert.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestRsa_DeCrypt_Empty(t *testing.T) {
	rsa := newTestRsa(t, 1)

	_, err := rsa.DeCrypt(nil)
	assert.Error(t, err)
}

func TestNewRsa_TooFewBits(t *testing.T) {
	_, err := NewRsa(prime.NewGenerator(rand.NewSeededSampler(1)), 2)
	assert.ErrorIs(t, err, arithmetic.ErrInvalidArgument)
}
