package curve

import (
	"errors"
	"fmt"

	"github.com/renproject/secp256k1"
	"github.com/renproject/shamir"
	"github.com/renproject/xrand"
)

var ErrInvalidThreshold = errors.New("invalid threshold")

// Dealing is a Shamir sharing of a secret together with Feldman commitments
// to the polynomial coefficients.
type Dealing struct {
	Shares      shamir.Shares
	Commitments []secp256k1.Point
}

// Deal shares secret among indices so that any k shares reconstruct it. The
// polynomial coefficients are drawn from src, so the dealing is reproducible
// from the seed of src.
func Deal(src *xrand.Source, indices []uint16, secret secp256k1.Fn, k int) (Dealing, error) {
	if k < 1 || k > len(indices) {
		return Dealing{}, fmt.Errorf("%w: expected 1 <= k <= %v but got %v", ErrInvalidThreshold, len(indices), k)
	}

	seen := make(map[uint16]struct{}, len(indices))
	for _, index := range indices {
		if index == 0 {
			return Dealing{}, errors.New("index 0 would reveal the secret")
		}
		if _, ok := seen[index]; ok {
			return Dealing{}, fmt.Errorf("duplicate index %v", index)
		}
		seen[index] = struct{}{}
	}

	coefficients := make([]secp256k1.Fn, k)
	coefficients[0] = secret
	for i := 1; i < k; i++ {
		coefficients[i] = Fn(src)
	}

	commitments := make([]secp256k1.Point, k)
	for i := range coefficients {
		commitments[i].BaseExp(&coefficients[i])
	}

	shares := make(shamir.Shares, len(indices))
	for i, index := range indices {
		shares[i] = shamir.Share{
			Index: secp256k1.NewFnFromU16(index),
			Value: computeShare(index, coefficients),
		}
	}

	return Dealing{Shares: shares, Commitments: commitments}, nil
}

// VerifyShare checks share against the commitments of a dealing.
func VerifyShare(index uint16, share secp256k1.Fn, commitments []secp256k1.Point) bool {
	if len(commitments) == 0 {
		return false
	}

	indexFn := secp256k1.NewFnFromU16(index)
	check := polyEvalPoint(&indexFn, commitments)

	var expected secp256k1.Point
	expected.BaseExp(&share)

	return check.Eq(&expected)
}

// PubKeyShares returns the public point of every share.
func (d Dealing) PubKeyShares() []secp256k1.Point {
	points := make([]secp256k1.Point, len(d.Shares))
	for i := range d.Shares {
		points[i].BaseExp(&d.Shares[i].Value)
	}
	return points
}

func computeShare(index uint16, coefficients []secp256k1.Fn) secp256k1.Fn {
	indexFn := secp256k1.NewFnFromU16(index)
	l := len(coefficients)

	share := coefficients[l-1]

	for i := l - 2; i >= 0; i-- {
		share.Mul(&share, &indexFn)
		share.Add(&share, &coefficients[i])
	}

	return share
}

func polyEvalPoint(x *secp256k1.Fn, coeffs []secp256k1.Point) secp256k1.Point {
	exp := secp256k1.NewFnFromU16(1)
	res := coeffs[0]

	var term secp256k1.Point
	for _, coeff := range coeffs[1:] {
		exp.Mul(&exp, x)
		term.Scale(&coeff, &exp)
		res.Add(&res, &term)
	}

	return res
}
