package arithmetic

import (
	"math/big"

	"github.com/cockroachdb/errors"
)

// DivisionResult 除算の商と剰余の組
// 除数が0以外のとき dividend == divisor*Quotient + Remainder かつ
// 0 <= Remainder < |divisor| を満たす。
type DivisionResult struct {
	Quotient  *big.Int
	Remainder *big.Int
}

// DivideNonNegative 非負整数同士の二進長除算
// x = 0 のとき (0, 0)、y = 0 のとき (0, x)。ゼロ除算はエラーではなく
// 全域関数としての規約であり、Mod や Gcd など上位の呼び出し側がこの値に依存する。
// 負の引数は ErrInvalidArgument。
func DivideNonNegative(x, y *big.Int) (DivisionResult, error) {
	if x.Sign() < 0 || y.Sign() < 0 {
		return DivisionResult{}, errors.Wrapf(ErrInvalidArgument, "divide non-negative: x=%s y=%s", x, y)
	}
	if x.Sign() == 0 {
		return DivisionResult{Quotient: new(big.Int), Remainder: new(big.Int)}, nil
	}
	if y.Sign() == 0 {
		return DivisionResult{Quotient: new(big.Int), Remainder: new(big.Int).Set(x)}, nil
	}

	// 再帰形 (q, r) = DivideNonNegative(Halve(x), y) を x の上位ビットから展開する。
	q := new(big.Int)
	r := new(big.Int)
	for i := x.BitLen() - 1; i >= 0; i-- {
		q = Double(q)
		r = Double(r)
		if x.Bit(i) == 1 {
			r.Add(r, one)
		}
		// 倍加前の r は y 未満なので補正は高々1回
		if r.Cmp(y) >= 0 {
			r.Sub(r, y)
			q.Add(q, one)
		}
	}
	return DivisionResult{Quotient: q, Remainder: r}, nil
}

// Divide 符号付き整数の除算
// 絶対値同士の結果から符号を復元する。剰余は常に [0, |y|) に収まる。
// x = 0 と y = 0 は符号処理の前に DivideNonNegative と同じ規約で特別扱いする。
func Divide(x, y *big.Int) DivisionResult {
	if x.Sign() == 0 {
		return DivisionResult{Quotient: new(big.Int), Remainder: new(big.Int)}
	}
	if y.Sign() == 0 {
		return DivisionResult{Quotient: new(big.Int), Remainder: new(big.Int).Set(x)}
	}

	res, _ := DivideNonNegative(new(big.Int).Abs(x), new(big.Int).Abs(y))
	q, r := res.Quotient, res.Remainder

	switch {
	case x.Sign() > 0 && y.Sign() > 0:
		return DivisionResult{Quotient: q, Remainder: r}
	case x.Sign() < 0 && y.Sign() > 0:
		if r.Sign() == 0 {
			return DivisionResult{Quotient: q.Neg(q), Remainder: r}
		}
		return DivisionResult{
			Quotient:  q.Neg(q).Sub(q, one),
			Remainder: new(big.Int).Sub(y, r),
		}
	case x.Sign() > 0 && y.Sign() < 0:
		return DivisionResult{Quotient: q.Neg(q), Remainder: r}
	default: // x < 0 かつ y < 0
		if r.Sign() == 0 {
			return DivisionResult{Quotient: q, Remainder: r}
		}
		rem := new(big.Int).Abs(y)
		rem.Sub(rem, r)
		return DivisionResult{Quotient: q.Add(q, one), Remainder: rem}
	}
}

// Mod x mod N を返す（N が0以外なら常に [0, |N|) の値）
// N = 0 のときはゼロ除算規約により x をそのまま返す。
func Mod(x, N *big.Int) *big.Int {
	return Divide(x, N).Remainder
}

// Quotient x を N で割った商を返す
func Quotient(x, N *big.Int) *big.Int {
	return Divide(x, N).Quotient
}
