package curve_test

import (
	"errors"

	"github.com/renproject/secp256k1"
	"github.com/renproject/shamir"
	"github.com/renproject/shamir/shamirutil"
	"github.com/renproject/xrand"
	"github.com/renproject/xrand/curve"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func fnBytes(fn secp256k1.Fn) []byte {
	bs := make([]byte, 32)
	fn.PutB32(bs)
	return bs
}

func sequentialIndices(n int) []uint16 {
	indices := make([]uint16, n)

	for i := uint16(0); i < uint16(n); i++ {
		indices[i] = i + 1
	}

	return indices
}

var _ = Describe("Curve values", func() {
	Context("when drawing scalars", func() {
		It("should be reproducible from the seed", func() {
			a := curve.Fn(xrand.NewSource(11))
			b := curve.Fn(xrand.NewSource(11))
			c := curve.Fn(xrand.NewSource(12))

			Expect(fnBytes(a)).To(Equal(fnBytes(b)))
			Expect(fnBytes(a)).ToNot(Equal(fnBytes(c)))
			Expect(a.IsZero()).To(BeFalse())
		})

		It("should be reproducible from a hash seed", func() {
			h := xrand.DefaultHash()

			Expect(fnBytes(curve.HashFn(h, 5))).To(Equal(fnBytes(curve.HashFn(h, 5))))
			Expect(fnBytes(curve.HashFn(h, 5))).ToNot(Equal(fnBytes(curve.HashFn(h, 6))))
		})

		It("should draw entries in sequence", func() {
			src := xrand.NewSource(3)
			fns := xrand.Draw(src, curve.FnEntries, 4)

			again := xrand.NewSource(3)
			for i := range fns {
				Expect(fnBytes(fns[i])).To(Equal(fnBytes(curve.Fn(again))))
			}
		})
	})

	Context("when drawing key pairs", func() {
		It("should return a point matching the scalar", func() {
			privKey, pubKey := curve.KeyPair(xrand.NewSource(1), false)

			var expected secp256k1.Point
			expected.BaseExp(&privKey)
			Expect(pubKey.Eq(&expected)).To(BeTrue())
		})

		It("should return points with even y for BIP-340", func() {
			src := xrand.NewSource(1)
			for i := 0; i < 20; i++ {
				privKey, pubKey := curve.KeyPair(src, true)
				Expect(curve.HasEvenY(&pubKey)).To(BeTrue())

				var expected secp256k1.Point
				expected.BaseExp(&privKey)
				Expect(pubKey.Eq(&expected)).To(BeTrue())
			}
		})
	})

	Context("when checking the parity of y", func() {
		It("should flip between a point and its negation", func() {
			src := xrand.NewSource(2)
			for i := 0; i < 20; i++ {
				privKey, pubKey := curve.KeyPair(src, false)

				var negKey secp256k1.Fn
				negKey.Negate(&privKey)
				var negPoint secp256k1.Point
				negPoint.BaseExp(&negKey)

				Expect(curve.HasEvenY(&negPoint)).ToNot(Equal(curve.HasEvenY(&pubKey)))
			}
		})

		It("should report false for the point at infinity", func() {
			inf := secp256k1.NewPointInfinity()
			Expect(curve.HasEvenY(&inf)).To(BeFalse())
		})
	})

	Context("when drawing btcec keys", func() {
		It("should agree with the scalar draw", func() {
			privKey := curve.PrivateKey(xrand.NewSource(8), false)
			fn, point := curve.KeyPair(xrand.NewSource(8), false)

			Expect(fnBytes(curve.PrivateKeyFn(privKey))).To(Equal(fnBytes(fn)))

			pubKeyPoint := curve.PubKeyPoint(privKey)
			Expect(pubKeyPoint.Eq(&point)).To(BeTrue())
		})

		It("should normalise to an even public key for BIP-340", func() {
			src := xrand.NewSource(8)
			for i := 0; i < 20; i++ {
				privKey := curve.PrivateKey(src, true)
				point := curve.PubKeyPoint(privKey)
				Expect(curve.HasEvenY(&point)).To(BeTrue())
			}
		})
	})

	Context("when dealing shares", func() {
		n := 10
		k := 4

		It("should reconstruct the secret from the shares", func() {
			src := xrand.NewSource(77)
			secret := curve.Fn(src)

			dealing, err := curve.Deal(src, sequentialIndices(n), secret, k)
			Expect(err).ToNot(HaveOccurred())
			Expect(dealing.Shares).To(HaveLen(n))
			Expect(dealing.Commitments).To(HaveLen(k))

			Expect(shamirutil.SharesAreConsistent(dealing.Shares, k)).To(BeTrue())

			opened := shamir.Open(dealing.Shares[:k])
			Expect(fnBytes(opened)).To(Equal(fnBytes(secret)))
		})

		It("should produce shares that verify against the commitments", func() {
			src := xrand.NewSource(78)
			dealing, err := curve.Deal(src, sequentialIndices(n), curve.Fn(src), k)
			Expect(err).ToNot(HaveOccurred())

			for i, share := range dealing.Shares {
				Expect(curve.VerifyShare(uint16(i+1), share.Value, dealing.Commitments)).To(BeTrue())
			}

			bad := curve.Fn(src)
			Expect(curve.VerifyShare(1, bad, dealing.Commitments)).To(BeFalse())
		})

		It("should be reproducible from the seed", func() {
			secret := curve.Fn(xrand.NewSource(1))

			a, err := curve.Deal(xrand.NewSource(2), sequentialIndices(n), secret, k)
			Expect(err).ToNot(HaveOccurred())
			b, err := curve.Deal(xrand.NewSource(2), sequentialIndices(n), secret, k)
			Expect(err).ToNot(HaveOccurred())

			for i := range a.Shares {
				Expect(fnBytes(a.Shares[i].Value)).To(Equal(fnBytes(b.Shares[i].Value)))
			}

			pubKeyShares := a.PubKeyShares()
			Expect(pubKeyShares).To(HaveLen(n))
		})

		It("should reject invalid thresholds and indices", func() {
			src := xrand.NewSource(1)
			secret := curve.Fn(src)

			_, err := curve.Deal(src, sequentialIndices(n), secret, 0)
			Expect(errors.Is(err, curve.ErrInvalidThreshold)).To(BeTrue())

			_, err = curve.Deal(src, sequentialIndices(n), secret, n+1)
			Expect(errors.Is(err, curve.ErrInvalidThreshold)).To(BeTrue())

			_, err = curve.Deal(src, []uint16{0, 1, 2}, secret, 2)
			Expect(err).To(HaveOccurred())

			_, err = curve.Deal(src, []uint16{1, 2, 2}, secret, 2)
			Expect(err).To(HaveOccurred())
		})
	})
})
