package curve

import (
	"github.com/btcsuite/btcd/btcec/v2"
	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/renproject/secp256k1"
	"github.com/renproject/xrand"
)

// PrivateKey returns a btcec key for the scalar Fn(src) would return. With
// bip340 set the key is negated when its public key has an odd y coordinate.
func PrivateKey(src *xrand.Source, bip340 bool) *btcec.PrivateKey {
	fn := Fn(src)

	var buf [32]byte
	fn.PutB32(buf[:])
	privKey, _ := btcec.PrivKeyFromBytes(buf[:])

	pubKeyBytes := privKey.PubKey().SerializeCompressed()
	if bip340 && pubKeyBytes[0] == secp.PubKeyFormatCompressedOdd {
		privKey.Key.Negate()
	}

	return privKey
}

// PrivateKeyFn converts a btcec key to a scalar.
func PrivateKeyFn(privKey *btcec.PrivateKey) secp256k1.Fn {
	var fn secp256k1.Fn
	fn.SetB32(privKey.Serialize())
	return fn
}

// PubKeyPoint converts the public key of privKey to a point.
func PubKeyPoint(privKey *btcec.PrivateKey) secp256k1.Point {
	var point secp256k1.Point

	bs := privKey.PubKey().SerializeUncompressed()
	var x, y secp256k1.Fp
	x.SetB32(bs[1:33])
	y.SetB32(bs[33:65])
	point.SetXY(&x, &y)

	return point
}
