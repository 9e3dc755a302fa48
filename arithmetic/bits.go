package arithmetic

import "math/big"

var one = big.NewInt(1)

// IsEven 最下位ビットが0かどうかを判定する
// 負数も2の補数表現の最下位ビットで判定する。
func IsEven(x *big.Int) bool {
	return x.Bit(0) == 0
}

// Double 1ビットの左シフトで2倍を返す
func Double(x *big.Int) *big.Int {
	return new(big.Int).Lsh(x, 1)
}

// Halve 1ビットの算術右シフトで半分を返す
// 負数は負の無限大方向へ丸める（Halve(-3) == -2）。
// Multiply と Divide の正しさはこの丸め方向に依存している。
func Halve(x *big.Int) *big.Int {
	return new(big.Int).Rsh(x, 1)
}
