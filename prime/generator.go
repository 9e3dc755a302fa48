package prime

import (
	"context"
	"math/big"

	"github.com/cenkalti/backoff/v5"
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"

	"modarith-pkg/arithmetic"
)

// fixedWitnesses 乱択素数生成で使う固定証人
var fixedWitnesses = []*big.Int{two, three, five}

// Generator 乱択による素数生成器
type Generator struct {
	sampler Sampler
	fermat  *Fermat
}

// NewGenerator コンストラクタ
func NewGenerator(sampler Sampler) *Generator {
	return &Generator{
		sampler: sampler,
		fermat:  NewFermat(sampler, DefaultWitnessCount),
	}
}

// RandomPrime n ビット以下の乱択素数を返す
// [2, 2^n - 1] から一様に候補を引き、固定証人 {2, 3, 5} のフェルマーテストに
// 通るまで繰り返す。理論上は停止しない可能性があるが、ほぼ確実に停止する。
// 遅延上限が必要な呼び出し側は RandomPrimeWithin を使うこと。
// n < 2 は候補区間が空になるため ErrInvalidArgument。
func (g *Generator) RandomPrime(n int) (*big.Int, error) {
	nMax, err := g.maxCandidate(n)
	if err != nil {
		return nil, err
	}
	for {
		candidate := g.sampler.SampleOne(two, nMax)
		if g.fermat.IsPrimeWithWitnesses(candidate, fixedWitnesses) {
			return candidate, nil
		}
		logrus.Debugf("composite candidate rejected: %s", candidate)
	}
}

// RandomPrimeWithin 試行回数上限と ctx で打ち切れる素数生成
// 候補の抽選はブロックしないので、リトライ間隔なしで上限回数まで試す。
func (g *Generator) RandomPrimeWithin(ctx context.Context, n int, maxTries uint) (*big.Int, error) {
	nMax, err := g.maxCandidate(n)
	if err != nil {
		return nil, err
	}

	operation := func() (*big.Int, error) {
		candidate := g.sampler.SampleOne(two, nMax)
		if !g.fermat.IsPrimeWithWitnesses(candidate, fixedWitnesses) {
			return nil, errors.Newf("composite candidate: %s", candidate)
		}
		return candidate, nil
	}

	result, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(&backoff.ZeroBackOff{}),
		backoff.WithMaxTries(maxTries))
	if err != nil {
		return nil, errors.Wrap(err, "random prime: tries exhausted")
	}
	return result, nil
}

// maxCandidate 候補区間の上限 2^n - 1 を法なしの冪乗で計算する
func (g *Generator) maxCandidate(n int) (*big.Int, error) {
	if n < 2 {
		return nil, errors.Wrapf(arithmetic.ErrInvalidArgument, "random prime: bit length must be at least 2: %d", n)
	}
	nMax, err := arithmetic.ModExp(two, big.NewInt(int64(n)), new(big.Int))
	if err != nil {
		return nil, err
	}
	return nMax.Sub(nMax, one), nil
}
