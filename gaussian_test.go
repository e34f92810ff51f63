package xrand_test

import (
	"errors"
	"math"

	"github.com/renproject/xrand"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Gaussian", func() {
	Context("when drawing twice in a row", func() {
		It("should return two different values", func() {
			src := xrand.NewSource(20)

			Expect(src.Gaussian()).ToNot(Equal(src.Gaussian()))
		})

		It("should not advance the engine for the cached value", func() {
			a := xrand.NewSource(21)
			b := xrand.NewSource(21)

			a.Gaussian()
			a.Gaussian()
			b.Gaussian()

			Expect(a.Uint64()).To(Equal(b.Uint64()))
		})
	})

	Context("when re-seeding between draws", func() {
		It("should not leak the cached value", func() {
			src := xrand.NewSource(22)
			src.Gaussian()

			src.Seed(23)
			fresh := xrand.NewSource(23)

			Expect(src.Gaussian()).To(Equal(fresh.Gaussian()))
			Expect(src.Gaussian()).To(Equal(fresh.Gaussian()))
		})
	})

	Context("when drawing many values", func() {
		It("should have mean 0 and standard deviation 1", func() {
			src := xrand.NewSource(24)
			n := 50000
			sum, sumSq := 0.0, 0.0
			for i := 0; i < n; i++ {
				g := src.Gaussian()
				sum += g
				sumSq += g * g
			}

			mean := sum / float64(n)
			stdDev := math.Sqrt(sumSq/float64(n) - mean*mean)

			Expect(mean).To(BeNumerically("~", 0, 0.03))
			Expect(stdDev).To(BeNumerically("~", 1, 0.03))
		})

		It("should scale by mean and standard deviation", func() {
			a := xrand.NewSource(25)
			b := xrand.NewSource(25)

			Expect(a.GaussianMeanStd(10, 2)).To(Equal(b.Gaussian()*2 + 10))
			Expect(a.GaussianFloat32MeanStd(10, 2)).To(Equal(float32(b.Gaussian())*2 + 10))
		})
	})

	Context("when clamping", func() {
		It("should keep values within the bounds", func() {
			src := xrand.NewSource(26)
			for i := 0; i < 1000; i++ {
				v, err := src.GaussianClamped(0, 10, -1, 1)
				Expect(err).ToNot(HaveOccurred())
				Expect(v).To(BeNumerically(">=", -1))
				Expect(v).To(BeNumerically("<=", 1))

				f, err := src.GaussianFloat32Clamped(0, 10, -1, 1)
				Expect(err).ToNot(HaveOccurred())
				Expect(f).To(BeNumerically(">=", -1))
				Expect(f).To(BeNumerically("<=", 1))
			}
		})

		It("should reject max below min", func() {
			_, err := xrand.NewSource(26).GaussianClamped(0, 1, 1, -1)
			Expect(errors.Is(err, xrand.ErrInvalidRange)).To(BeTrue())
		})
	})
})
