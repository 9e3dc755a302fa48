package arithmetic

import (
	"math/big"

	"github.com/cockroachdb/errors"
)

// Gcd ユークリッドの互除法で最大公約数を求める
// 引数の符号によらず常に非負を返す。Gcd(0, 0) は 0。
func Gcd(a, b *big.Int) *big.Int {
	a = new(big.Int).Set(a)
	b = new(big.Int).Set(b)
	for b.Sign() != 0 {
		a, b = b, Mod(a, b)
	}
	return a.Abs(a)
}

// BezoutResult 拡張ユークリッドの互除法の結果
// a*X + b*Y == D かつ D == gcd(a, b)（D は常に非負）を満たす。
type BezoutResult struct {
	X *big.Int
	Y *big.Int
	D *big.Int
}

// Egcd 拡張ユークリッドの互除法
// 再帰形（b = 0 で a < 0 なら (-1, 0, -a)、そうでなければ (1, 0, a)）を
// 係数を持ち回るループに展開したもの。a*X + b*Y == D はループ中の不変条件。
func Egcd(a, b *big.Int) BezoutResult {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldX, x := big.NewInt(1), new(big.Int)
	oldY, y := new(big.Int), big.NewInt(1)

	for r.Sign() != 0 {
		q := Quotient(oldR, r)
		oldR, r = r, Mod(oldR, r)
		oldX, x = x, new(big.Int).Sub(oldX, Multiply(q, x))
		oldY, y = y, new(big.Int).Sub(oldY, Multiply(q, y))
	}

	// b = 0 かつ a < 0 の基底に相当する符号合わせ
	if oldR.Sign() < 0 {
		oldR.Neg(oldR)
		oldX.Neg(oldX)
		oldY.Neg(oldY)
	}
	return BezoutResult{X: oldX, Y: oldY, D: oldR}
}

// ModInverse a の N を法とする乗法逆元を [0, N) の値で返す
// a = 0 または N <= 1 は ErrInvalidArgument。gcd(a, N) != 1 の場合、
// 引数は正しいが逆元という対象が存在しないため ErrNotInvertible で区別する。
func ModInverse(a, N *big.Int) (*big.Int, error) {
	if a.Sign() == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "mod inverse: a must be non-zero")
	}
	if N.Cmp(one) <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "mod inverse: N must be greater than 1: %s", N)
	}

	res := Egcd(a, N)
	if res.D.Cmp(one) != 0 {
		return nil, errors.Wrapf(ErrNotInvertible, "mod inverse: gcd(%s, %s) = %s", a, N, res.D)
	}
	return Mod(res.X, N), nil
}

// Lcm 最小公倍数を返す
// a と b が共に 0 のときは gcd が 0 になり、ゼロ除算規約
// （商 0）によって 0 を返す。エラーにはしない。
func Lcm(a, b *big.Int) *big.Int {
	return Quotient(Multiply(a, b), Gcd(a, b))
}
