package murmur3_test

import (
	"math/bits"

	"github.com/renproject/xrand/murmur3"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("MurmurHash3 finalizer", func() {
	Context("when hashing the same input twice", func() {
		It("should return the same value", func() {
			for _, v := range []uint64{0, 1, 42, 1 << 63, ^uint64(0)} {
				Expect(murmur3.Hash(v)).To(Equal(murmur3.Hash(v)))
			}
		})
	})

	Context("when the input is zero", func() {
		It("should be well defined and not degenerate", func() {
			h := murmur3.Hash(0)

			Expect(h).ToNot(BeZero())
			Expect(h).To(Equal(murmur3.Hash(9837421349)))
			Expect(murmur3.Hash(h)).ToNot(Equal(h))
		})
	})

	Context("when flipping a single input bit", func() {
		It("should flip roughly half of the output bits on average", func() {
			total := 0
			samples := 0
			for v := uint64(1); v < 2000; v++ {
				input := v * 0x9e3779b97f4a7c15
				h := murmur3.Hash(input)
				for bit := 0; bit < 64; bit++ {
					total += bits.OnesCount64(h ^ murmur3.Hash(input^(1<<bit)))
					samples++
				}
			}

			avg := float64(total) / float64(samples)
			Expect(avg).To(BeNumerically("~", 32, 1))
		})
	})

	Context("when used through the Hasher value", func() {
		It("should agree with the package function", func() {
			var h murmur3.Hasher
			for v := uint64(0); v < 100; v++ {
				Expect(h.Hash(v)).To(Equal(murmur3.Hash(v)))
			}
		})
	})
})
