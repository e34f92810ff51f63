package main

import (
	"context"
	"errors"

	"github.com/renproject/xrand"
	"github.com/renproject/xrand/xoroshiro"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Bench", func() {
	Context("when choosing the root source", func() {
		It("should use an explicit zero seed", func() {
			root := rootSource(config{seed: 0, seedSet: true})
			Expect(root.Uint64()).To(Equal(xrand.NewSource(0).Uint64()))
		})

		It("should use the given seed", func() {
			root := rootSource(config{seed: 9, seedSet: true})
			Expect(root.Uint64()).To(Equal(xrand.NewSource(9).Uint64()))
		})
	})

	Context("when running", func() {
		It("should return errors instead of exiting", func() {
			err := run(config{engineName: "nope", seedSet: true, workers: 1, draws: 64})
			Expect(errors.Is(err, xoroshiro.ErrUnknownEngine)).To(BeTrue())
		})

		It("should time every operation on one engine", func() {
			results, err := benchEngine(context.Background(), xrand.NewSource(1), 2, 128)
			Expect(err).ToNot(HaveOccurred())
			Expect(results).To(HaveLen(len(operations)))
			for _, r := range results {
				Expect(r.draws).To(Equal(256))
				Expect(r.engine).To(Equal(xoroshiro.DefaultName))
			}
		})
	})
})
