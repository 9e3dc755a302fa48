package prime

import "math/big"

// Sampler 素数判定と素数生成が使う乱数供給の依存先
// 決定的なテストを可能にするため、呼び出し側が実装を差し替えられるように
// インターフェースとして注入する。実装が内部状態を共有する場合、
// 並行利用の直列化は呼び出し側の責任。
type Sampler interface {
	// SampleDistinct 閉区間 [min, max] から相異なる k 個を一様に取得する
	SampleDistinct(min, max *big.Int, k int) []*big.Int
	// SampleOne 閉区間 [min, max] から1個を一様に取得する
	SampleOne(min, max *big.Int) *big.Int
}

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
	five  = big.NewInt(5)
)
