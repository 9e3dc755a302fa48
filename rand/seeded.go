package rand

import (
	"math/big"
	"math/rand"
)

// SeededSampler シード付きの決定的なサンプラー
// 同じシードからは同じ系列を返すのでテスト用途向き。math/rand を使うため
// 暗号用途には適さない。内部状態を共有するので並行利用する場合は
// 呼び出し側で直列化すること。
type SeededSampler struct {
	rnd *rand.Rand
}

// NewSeededSampler コンストラクタ
func NewSeededSampler(seed int64) *SeededSampler {
	return &SeededSampler{rnd: rand.New(rand.NewSource(seed))}
}

// SampleOne 閉区間 [min, max] から一様に1個取得する
func (s *SeededSampler) SampleOne(min, max *big.Int) *big.Int {
	n := new(big.Int).Rand(s.rnd, rangeWidth(min, max))
	return n.Add(n, min)
}

// SampleDistinct 閉区間 [min, max] から相異なる k 個を取得する
func (s *SeededSampler) SampleDistinct(min, max *big.Int, k int) []*big.Int {
	return sampleDistinct(s, min, max, k)
}
