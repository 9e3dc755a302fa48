package arithmetic

import "math/big"

// multiplyPositive 非負の y に対する倍加法（ロシア農民法）の乗算
// 再帰形 z = multiplyPositive(x, Halve(y)); y が偶数なら Double(z)、奇数なら
// x + Double(z) を、y の上位ビットから下位へ展開したループで計算する。
// 深い再帰を避けるための変形で、ステップの順序は再帰形と同一。
func multiplyPositive(x, y *big.Int) *big.Int {
	z := new(big.Int)
	for i := y.BitLen() - 1; i >= 0; i-- {
		z = Double(z)
		if y.Bit(i) == 1 {
			z.Add(z, x)
		}
	}
	return z
}

// Multiply 符号付き整数の乗算
// 絶対値同士を multiplyPositive で掛け、符号が異なる場合のみ結果を負にする。
func Multiply(x, y *big.Int) *big.Int {
	z := multiplyPositive(new(big.Int).Abs(x), new(big.Int).Abs(y))
	if x.Sign()*y.Sign() < 0 {
		z.Neg(z)
	}
	return z
}

// Square 2乗を返す
func Square(x *big.Int) *big.Int {
	return Multiply(x, x)
}
