package arithmetic

import "github.com/cockroachdb/errors"

// ErrInvalidArgument 事前条件違反エラー
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNotInvertible 法逆元が存在しないエラー
var ErrNotInvertible = errors.New("not invertible")
