package drift_test

import (
	"math/rand/v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/driftsim/internal/drift"
)

var _ = Describe("Simulate", func() {
	var src rand.Source

	BeforeEach(func() {
		src = rand.NewPCG(uint64(GinkgoRandomSeed()), 0)
	})

	DescribeTable("keeps every frequency inside [0,1]",
		func(p0 float64, size, gens int) {
			traj, err := drift.Simulate(drift.Params{InitialFrequency: p0, PopulationSize: size, Generations: gens}, src)
			Expect(err).NotTo(HaveOccurred())
			Expect(traj).To(HaveLen(gens + 1))
			Expect(traj[0]).To(Equal(p0))
			for _, p := range traj {
				Expect(p).To(BeNumerically(">=", 0))
				Expect(p).To(BeNumerically("<=", 1))
			}
		},
		Entry("tiny population", 0.5, 1, 100),
		Entry("default dashboard", 0.5, 100, 100),
		Entry("rare allele", 0.1, 10, 300),
		Entry("common allele", 0.9, 1000, 50),
	)

	Context("at an absorbing boundary", func() {
		It("never recovers a lost allele", func() {
			traj, err := drift.Simulate(drift.Params{InitialFrequency: 0, PopulationSize: 50, Generations: 10}, src)
			Expect(err).NotTo(HaveOccurred())
			Expect(traj).To(HaveEach(0.0))
			Expect(traj).To(HaveLen(11))
		})

		It("never loses a fixed allele", func() {
			traj, err := drift.Simulate(drift.Params{InitialFrequency: 1, PopulationSize: 50, Generations: 5}, src)
			Expect(err).NotTo(HaveOccurred())
			Expect(traj).To(Equal(drift.Trajectory{1, 1, 1, 1, 1, 1}))
		})

		It("stays absorbed once a drifting trajectory hits a boundary", func() {
			traj, err := drift.Simulate(drift.Params{InitialFrequency: 0.5, PopulationSize: 4, Generations: 500}, src)
			Expect(err).NotTo(HaveOccurred())

			at := traj.AbsorbedAt()
			Expect(at).To(BeNumerically(">", 0))
			Expect(traj[at:]).To(HaveEach(traj[at]))
		})
	})

	Context("with invalid input", func() {
		It("rejects an empty population", func() {
			_, err := drift.Simulate(drift.Params{InitialFrequency: 0.5, PopulationSize: 0, Generations: 10}, src)
			Expect(err).To(MatchError(drift.ErrInvalidParameter))
		})

		It("rejects a frequency outside [0,1]", func() {
			_, err := drift.Simulate(drift.Params{InitialFrequency: 1.01, PopulationSize: 10, Generations: 10}, src)
			Expect(err).To(MatchError(drift.ErrOutOfRange))
		})
	})
})
