package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/renproject/secp256k1"
	"github.com/renproject/xrand"
	"github.com/renproject/xrand/curve"
	"github.com/rs/zerolog"
)

var log = zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
	w.Out = os.Stderr
	w.TimeFormat = "15:04:05.000"
})).With().Timestamp().Logger()

// keygen prints a distributed key that is fully determined by the seed. It is
// meant for test fixtures; the keys are not secret.
func main() {
	var (
		seed   = flag.Uint64("seed", 1, "seed the key and shares are derived from")
		n      = flag.Int("n", 10, "number of shares")
		t      = flag.Int("t", 5, "number of shares needed to reconstruct the key")
		bip340 = flag.Bool("bip340", true, "normalise the public key to an even y coordinate")
	)
	flag.Parse()

	if *n < 1 || *n > 0xFFFF {
		log.Fatal().Int("n", *n).Msg("n must be between 1 and 65535")
	}

	src := xrand.NewSource(*seed)

	privKey, pubKey := curve.KeyPair(src, *bip340)

	dealing, err := curve.Deal(src, sequentialIndices(*n), privKey, *t)
	if err != nil {
		log.Fatal().Err(err).Int("n", *n).Int("t", *t).Msg("dealing shares")
	}

	pubKeyShares := dealing.PubKeyShares()
	for i := range dealing.Shares {
		if !curve.VerifyShare(uint16(i+1), dealing.Shares[i].Value, dealing.Commitments) {
			log.Fatal().Int("index", i+1).Msg("share does not match the commitments")
		}
	}

	log.Info().Uint64("seed", *seed).Int("n", *n).Int("t", *t).Bool("bip340", *bip340).Msg("generated key")

	fmt.Printf("private key: %v\n", fnHex(privKey))
	fmt.Printf("public key:  %v\n", pointHex(pubKey))
	for i := range dealing.Shares {
		fmt.Printf("share %4v:  %v %v\n", i+1, fnHex(dealing.Shares[i].Value), pointHex(pubKeyShares[i]))
	}
}

func sequentialIndices(n int) []uint16 {
	indices := make([]uint16, n)

	for i := uint16(0); i < uint16(n); i++ {
		indices[i] = i + 1
	}

	return indices
}

func fnHex(fn secp256k1.Fn) string {
	var bs [secp256k1.FnSizeMarshalled]byte
	fn.PutB32(bs[:])
	return hex.EncodeToString(bs[:])
}

func pointHex(point secp256k1.Point) string {
	var bs [secp256k1.PointSizeMarshalled]byte
	point.PutBytes(bs[:])
	return hex.EncodeToString(bs[:])
}
