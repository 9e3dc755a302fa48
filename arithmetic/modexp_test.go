package arithmetic

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModExp(t *testing.T) {
	tests := []struct {
		name    string
		x       int64
		y       int64
		n       int64
		want    int64
		wantErr bool
	}{
		{name: "正常: 基本形", x: 2, y: 13, n: 7, want: 2},
		{name: "正常: 指数0は1 mod N", x: 9, y: 0, n: 7, want: 1},
		{name: "正常: 法1は常に0", x: 9, y: 5, n: 1, want: 0},
		{name: "正常: 法-1も常に0", x: 9, y: 5, n: -1, want: 0},
		{name: "正常: 法0は縮約なしの冪乗", x: 2, y: 13, n: 0, want: 8192},
		{name: "正常: 法0で指数0", x: 9, y: 0, n: 0, want: 1},
		{name: "正常: 負の底", x: -2, y: 3, n: 5, want: 2},
		{name: "異常: 負の指数", x: 2, y: -1, n: 7, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ModExp(big.NewInt(tt.x), big.NewInt(tt.y), big.NewInt(tt.n))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 0, got.Cmp(big.NewInt(tt.want)), "got %s", got)
		})
	}
}

// TestModExp_CrossCheck math/big の Exp と代表的な三つ組で突き合わせる
func TestModExp_CrossCheck(t *testing.T) {
	for x := int64(-8); x <= 8; x++ {
		for y := int64(0); y <= 12; y++ {
			for n := int64(2); n <= 15; n++ {
				got, err := ModExp(big.NewInt(x), big.NewInt(y), big.NewInt(n))
				if err != nil {
					t.Fatalf("ModExp(%d, %d, %d): %v", x, y, n, err)
				}
				want := new(big.Int).Exp(big.NewInt(x), big.NewInt(y), big.NewInt(n))
				if got.Cmp(want) != 0 {
					t.Fatalf("ModExp(%d, %d, %d) = %s, want %s", x, y, n, got, want)
				}
			}
		}
	}
}
