// Package curve draws secp256k1 values from xrand sources, for deterministic
// keys, shares and test fixtures. The values are reproducible from their seed
// and must never be used as real secrets.
package curve

import (
	"encoding/binary"

	"github.com/renproject/secp256k1"
	"github.com/renproject/xrand"
)

// Fn returns a non-zero scalar built from 32 random bytes reduced modulo the
// group order.
func Fn(src *xrand.Source) secp256k1.Fn {
	var buf [32]byte
	var fn secp256k1.Fn
	for {
		src.Read(buf[:])
		fn.SetB32(buf[:])
		if !fn.IsZero() {
			return fn
		}
	}
}

// HashFn returns the non-zero scalar selected by seed. The 32 bytes are four
// consecutive links of the hash chain starting at seed.
func HashFn(h xrand.HashFunction, seed uint64) secp256k1.Fn {
	var buf [32]byte
	var fn secp256k1.Fn
	next := seed
	for {
		for i := 0; i < 4; i++ {
			next = h.Hash(next)
			binary.BigEndian.PutUint64(buf[8*i:], next)
		}
		fn.SetB32(buf[:])
		if !fn.IsZero() {
			return fn
		}
	}
}

// KeyPair returns a private scalar and its public point. With bip340 set, the
// pair is negated when needed so that the point has an even y coordinate.
func KeyPair(src *xrand.Source, bip340 bool) (secp256k1.Fn, secp256k1.Point) {
	privKey := Fn(src)

	var pubKey secp256k1.Point
	pubKey.BaseExp(&privKey)

	if bip340 && !HasEvenY(&pubKey) {
		privKey.Negate(&privKey)
		negate(&pubKey)
	}

	return privKey, pubKey
}

// HasEvenY reports whether p has an even y coordinate. The point at infinity
// has none and reports false.
func HasEvenY(p *secp256k1.Point) bool {
	_, y, err := p.XY()
	if err != nil {
		return false
	}
	return y.IsEven()
}

// negate replaces p with -p, which shares x and has the negated y.
func negate(p *secp256k1.Point) {
	x, y, err := p.XY()
	if err != nil {
		return
	}
	y.Negate(&y)
	p.SetXY(&x, &y)
}

// Point returns the public point of a random scalar.
func Point(src *xrand.Source) secp256k1.Point {
	_, pubKey := KeyPair(src, false)
	return pubKey
}

var (
	FnEntries    xrand.Entries[secp256k1.Fn]    = xrand.EntriesFunc[secp256k1.Fn](Fn)
	PointEntries xrand.Entries[secp256k1.Point] = xrand.EntriesFunc[secp256k1.Point](Point)
)
