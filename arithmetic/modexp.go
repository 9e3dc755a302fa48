package arithmetic

import (
	"math/big"

	"github.com/cockroachdb/errors"
)

// ModExp x^y mod N を二乗乗算法で計算する
// N = 0 は「法なし」を意味し、縮約せずに x^y を返す。|N| = 1 のときは
// すべての数が合同なので常に 0。負の指数は ErrInvalidArgument。
// 中間値の肥大化を防ぐため、乗算のたびに直ちに剰余へ縮約する。
func ModExp(x, y, N *big.Int) (*big.Int, error) {
	if y.Sign() < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "mod exp: negative exponent %s", y)
	}
	if new(big.Int).Abs(N).Cmp(one) == 0 {
		return new(big.Int), nil
	}

	// 基底 y = 0 は Mod(1, N)。そこから y の上位ビットごとに
	// 「2乗して縮約、ビットが立っていれば x を掛けて縮約」を繰り返す。
	z := Mod(one, N)
	for i := y.BitLen() - 1; i >= 0; i-- {
		z = Mod(Square(z), N)
		if y.Bit(i) == 1 {
			z = Mod(Multiply(x, z), N)
		}
	}
	return z, nil
}
