package rand

import (
	"crypto/rand"
	"math/big"
)

// CryptoSampler crypto/rand を乱数源とするサンプラー
// 状態を持たないため並行利用できる。
type CryptoSampler struct{}

// NewCryptoSampler コンストラクタ
func NewCryptoSampler() *CryptoSampler {
	return &CryptoSampler{}
}

// SampleOne 閉区間 [min, max] から一様に1個取得する
func (s *CryptoSampler) SampleOne(min, max *big.Int) *big.Int {
	n, err := rand.Int(rand.Reader, rangeWidth(min, max))
	if err != nil {
		// crypto/rand の読み取り失敗は回復不能
		panic(err)
	}
	return n.Add(n, min)
}

// SampleDistinct 閉区間 [min, max] から相異なる k 個を取得する
func (s *CryptoSampler) SampleDistinct(min, max *big.Int, k int) []*big.Int {
	return sampleDistinct(s, min, max, k)
}

// oneSampler sampleDistinct が必要とする最小の振る舞い
type oneSampler interface {
	SampleOne(min, max *big.Int) *big.Int
}

// sampleDistinct 棄却法による重複なしサンプリングの共通処理
// k が区間の要素数を超える場合は panic（範囲違反は呼び出し側のバグ）。
func sampleDistinct(s oneSampler, min, max *big.Int, k int) []*big.Int {
	if k < 0 {
		panic("k must be >= 0")
	}
	if big.NewInt(int64(k)).Cmp(rangeWidth(min, max)) > 0 {
		panic("k must not exceed the range size")
	}

	seen := make(map[string]bool, k)
	values := make([]*big.Int, 0, k)
	for len(values) < k {
		v := s.SampleOne(min, max)
		key := v.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		values = append(values, v)
	}
	return values
}

// rangeWidth 閉区間 [min, max] の要素数
func rangeWidth(min, max *big.Int) *big.Int {
	if min.Cmp(max) > 0 {
		panic("min must be <= max")
	}
	width := new(big.Int).Sub(max, min)
	return width.Add(width, big.NewInt(1))
}
