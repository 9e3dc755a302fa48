package prime

import (
	"math/big"

	"modarith-pkg/arithmetic"
)

// DefaultWitnessCount 証人数の既定値
// 独立に選んだ k 個の証人で合成数を誤って「素数」と判定する確率は
// 1/2^k 未満（カーマイケル数を除く。これはフェルマーテスト固有の限界）。
const DefaultWitnessCount = 100

// Fermat フェルマーの小定理による確率的素数判定
type Fermat struct {
	sampler      Sampler
	witnessCount int
}

// NewFermat コンストラクタ
// witnessCount が 1 未満の場合は既定値を使う。
func NewFermat(sampler Sampler, witnessCount int) *Fermat {
	if witnessCount < 1 {
		witnessCount = DefaultWitnessCount
	}
	return &Fermat{sampler: sampler, witnessCount: witnessCount}
}

// IsPrime N が「おそらく素数」なら true、合成数と確定したら false
// 1 以下は素数ではない。証人は [1, N-1] から重複なしで
// min(witnessCount, N-1) 個サンプリングし、全証人の合格の論理積を返す。
func (f *Fermat) IsPrime(N *big.Int) bool {
	if N.Cmp(one) <= 0 {
		return false
	}

	nMinusOne := new(big.Int).Sub(N, one)
	k := f.witnessCount
	if big.NewInt(int64(k)).Cmp(nMinusOne) > 0 {
		k = int(nMinusOne.Int64())
	}

	for _, a := range f.sampler.SampleDistinct(one, nMinusOne, k) {
		if !f.check(a, N, nMinusOne) {
			return false
		}
	}
	return true
}

// IsPrimeWithWitnesses 明示された証人だけで N を判定する
// N 以上の証人は捨てる。残った証人が空のときは「おそらく素数」とみなす
// （固定証人 {2, 3, 5} のまま N = 2 を正しく判定するための規約）。
func (f *Fermat) IsPrimeWithWitnesses(N *big.Int, witnesses []*big.Int) bool {
	if N.Cmp(one) <= 0 {
		return false
	}

	nMinusOne := new(big.Int).Sub(N, one)
	for _, a := range witnesses {
		if a.Cmp(N) >= 0 {
			continue
		}
		if !f.check(a, N, nMinusOne) {
			return false
		}
	}
	return true
}

// check 証人 a によるフェルマーテスト a^(N-1) mod N == 1
func (f *Fermat) check(a, N, nMinusOne *big.Int) bool {
	z, err := arithmetic.ModExp(a, nMinusOne, N)
	if err != nil {
		return false
	}
	return z.Cmp(one) == 0
}
