package crypter

import (
	"math/big"

	"github.com/cockroachdb/errors"

	"modarith-pkg/arithmetic"
	"modarith-pkg/prime"
)

type Crypter interface {
	EnCrypt(plainText []byte) ([]byte, error)
	DeCrypt(cipherText []byte) ([]byte, error)
}

// Rsa 教科書通りのRSA（パディングなし）
// 算術カーネルを実際に組み合わせて使う教材実装で、実用の暗号強度はない。
// 平文は big エンディアンの整数とみなすため、先頭の 0x00 は往復で保持されない。
type Rsa struct {
	n *big.Int // 法 n = p*q
	e *big.Int // 公開指数
	d *big.Int // 秘密指数
}

// NewRsa n ビット以下の素数2個から鍵対を生成するコンストラクタ
func NewRsa(gen *prime.Generator, bits int) (Crypter, error) {
	if bits < 4 {
		return nil, errors.Wrapf(arithmetic.ErrInvalidArgument, "rsa: bit length too small: %d", bits)
	}

	one := big.NewInt(1)
	for {
		p, err := gen.RandomPrime(bits)
		if err != nil {
			return nil, err
		}
		q, err := gen.RandomPrime(bits)
		if err != nil {
			return nil, err
		}
		if p.Cmp(q) == 0 {
			continue
		}

		n := arithmetic.Multiply(p, q)
		// カーマイケル関数 λ(n) = lcm(p-1, q-1)
		lambda := arithmetic.Lcm(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))

		e := findPublicExponent(lambda)
		if e == nil {
			// λ が小さすぎて公開指数が取れない組は引き直す
			continue
		}
		d, err := arithmetic.ModInverse(e, lambda)
		if err != nil {
			continue
		}
		return &Rsa{n: n, e: e, d: d}, nil
	}
}

// findPublicExponent λ と互いに素な最小の奇数を公開指数として探す
func findPublicExponent(lambda *big.Int) *big.Int {
	one := big.NewInt(1)
	two := big.NewInt(2)
	for e := big.NewInt(3); e.Cmp(lambda) < 0; e = new(big.Int).Add(e, two) {
		if arithmetic.Gcd(e, lambda).Cmp(one) == 0 {
			return e
		}
	}
	return nil
}

// EnCrypt 平文を整数 m とみなして c = m^e mod n を計算する
func (r *Rsa) EnCrypt(plainText []byte) ([]byte, error) {
	if len(plainText) < 1 {
		return nil, errors.New("encrypt val is empty.")
	}

	m := new(big.Int).SetBytes(plainText)
	if m.Cmp(r.n) >= 0 {
		return nil, errors.Wrapf(arithmetic.ErrInvalidArgument, "rsa: message %s is not below modulus %s", m, r.n)
	}

	c, err := arithmetic.ModExp(m, r.e, r.n)
	if err != nil {
		return nil, err
	}
	return c.Bytes(), nil
}

// DeCrypt 暗号文を整数 c とみなして m = c^d mod n を復元する
func (r *Rsa) DeCrypt(cipherText []byte) ([]byte, error) {
	if len(cipherText) < 1 {
		return nil, errors.New("decrypt val is empty.")
	}

	c := new(big.Int).SetBytes(cipherText)
	if c.Cmp(r.n) >= 0 {
		return nil, errors.Wrapf(arithmetic.ErrInvalidArgument, "rsa: cipher %s is not below modulus %s", c, r.n)
	}

	m, err := arithmetic.ModExp(c, r.d, r.n)
	if err != nil {
		return nil, err
	}
	return m.Bytes(), nil
}
