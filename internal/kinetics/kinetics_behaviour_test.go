package kinetics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/transester/internal/kinetics"
)

var _ = Describe("Simulate", func() {
	var params kinetics.Params

	BeforeEach(func() {
		params = kinetics.DefaultParams()
	})

	Context("with the default reactor charge", func() {
		It("starts from pure oil", func() {
			res, err := kinetics.Simulate(params)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Times[0]).To(BeZero())
			Expect(res.Oil[0]).To(BeNumerically("~", 1000, 1e-9))
			Expect(res.Ester[0]).To(BeZero())
			Expect(res.Glycerin[0]).To(BeZero())
		})

		It("reaches the expected volumes after 24 h", func() {
			res, err := kinetics.Simulate(params)
			Expect(err).NotTo(HaveOccurred())

			last := res.Len() - 1
			Expect(res.Times[last]).To(Equal(24.0))
			Expect(res.Oil[last]).To(BeNumerically("~", 1000*math.Exp(-2.4), 1e-9))
			Expect(res.Oil[last]).To(BeNumerically("~", 90.72, 0.01))
			Expect(res.Ester[last]).To(BeNumerically("~", 2727.84, 0.01))
			Expect(res.Glycerin[last]).To(BeNumerically("~", 909.28, 0.01))
		})

		It("shares one time axis across the three series", func() {
			res, err := kinetics.Simulate(params)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Oil).To(HaveLen(len(res.Times)))
			Expect(res.Ester).To(HaveLen(len(res.Times)))
			Expect(res.Glycerin).To(HaveLen(len(res.Times)))
			for _, q := range kinetics.Quantities {
				s := res.Series(q)
				Expect(s.Points).To(HaveLen(len(res.Times)))
				Expect(s.Points[len(s.Points)-1].Time).To(Equal(res.Times[len(res.Times)-1]))
			}
		})
	})

	Context("over a long horizon", func() {
		It("approaches the stoichiometric asymptotes", func() {
			params.TotalDuration = 500
			params.TimeStep = 5

			res, err := kinetics.Simulate(params)
			Expect(err).NotTo(HaveOccurred())

			last := res.Len() - 1
			Expect(res.Oil[last]).To(BeNumerically("<", 1e-15))
			Expect(res.Ester[last]).To(BeNumerically("~", 3*params.InitialOilVolume, 1e-9))
			Expect(res.Glycerin[last]).To(BeNumerically("~", params.InitialOilVolume, 1e-9))
		})
	})

	Context("when the time step exceeds the horizon", func() {
		It("returns only the initial point", func() {
			params.TotalDuration = 0.25
			params.TimeStep = 1

			res, err := kinetics.Simulate(params)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Times).To(Equal([]float64{0}))
		})
	})

	DescribeTable("rejects invalid parameters",
		func(mutate func(*kinetics.Params), field string) {
			mutate(&params)

			res, err := kinetics.Simulate(params)
			Expect(res).To(BeNil())
			Expect(err).To(MatchError(kinetics.ErrInvalidParameter))

			var perr *kinetics.ParameterError
			Expect(err).To(BeAssignableToTypeOf(perr))
			perr = err.(*kinetics.ParameterError)
			Expect(perr.Field).To(Equal(field))
		},
		Entry("non-positive rate constant", func(p *kinetics.Params) { p.RateConstant = 0 }, "rate constant"),
		Entry("non-positive time step", func(p *kinetics.Params) { p.TimeStep = -0.5 }, "time step"),
		Entry("negative duration", func(p *kinetics.Params) { p.TotalDuration = -2 }, "total duration"),
		Entry("NaN oil volume", func(p *kinetics.Params) { p.InitialOilVolume = math.NaN() }, "initial oil volume"),
		Entry("infinite time step", func(p *kinetics.Params) { p.TimeStep = math.Inf(1) }, "time step"),
	)
})
