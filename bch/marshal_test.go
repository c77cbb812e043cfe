package bch_test

import (
	"reflect"

	"github.com/renproject/surge"
	"github.com/renproject/surge/surgeutil"

	"github.com/renproject/checkdigit/bch"
	"github.com/renproject/checkdigit/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Surge marshalling", func() {
	trials := 100
	t := reflect.TypeOf(bch.Result{})

	It("should be the same after marshalling and unmarshalling", func() {
		for i := 0; i < trials; i++ {
			Expect(surgeutil.MarshalUnmarshalCheck(t)).To(Succeed())
		}
	})

	It("should not panic when fuzzing", func() {
		for i := 0; i < trials; i++ {
			Expect(func() { surgeutil.Fuzz(t) }).ToNot(Panic())
		}
	})

	Context("marshalling", func() {
		It("should return an error when the buffer is too small", func() {
			for i := 0; i < trials; i++ {
				Expect(surgeutil.MarshalBufTooSmall(t)).To(Succeed())
			}
		})

		It("should return an error when the memory quota is too small", func() {
			for i := 0; i < trials; i++ {
				Expect(surgeutil.MarshalRemTooSmall(t)).To(Succeed())
			}
		})
	})

	Context("unmarshalling", func() {
		It("should return an error when the buffer is too small", func() {
			for i := 0; i < trials; i++ {
				Expect(surgeutil.UnmarshalBufTooSmall(t)).To(Succeed())
			}
		})

		It("should return an error when the memory quota is too small", func() {
			for i := 0; i < trials; i++ {
				Expect(surgeutil.UnmarshalRemTooSmall(t)).To(Succeed())
			}
		})
	})

	It("should preserve decoded results", func() {
		inputs := []string{testutil.ValidCodeword}
		for _, v := range testutil.SingleErrorVectors {
			inputs = append(inputs, v.Input)
		}
		for _, v := range testutil.DoubleErrorVectors {
			inputs = append(inputs, v.Input)
		}
		for _, v := range testutil.UncorrectableVectors {
			inputs = append(inputs, v.Input)
		}

		for _, input := range inputs {
			result, err := bch.Decode(input)
			Expect(err).ToNot(HaveOccurred())

			data, err := surge.ToBinary(result)
			Expect(err).ToNot(HaveOccurred())
			Expect(len(data)).To(Equal(result.SizeHint()))

			var unmarshalled bch.Result
			Expect(surge.FromBinary(&unmarshalled, data)).To(Succeed())
			Expect(unmarshalled).To(Equal(result))
			Expect(unmarshalled.String()).To(Equal(result.String()))
		}
	})

	It("should reject unknown outcomes", func() {
		data, err := surge.ToBinary(bch.Result{})
		Expect(err).ToNot(HaveOccurred())
		data[0] = 42

		var result bch.Result
		Expect(surge.FromBinary(&result, data)).ToNot(Succeed())
	})

	Context("invalid data", func() {
		// Layout: outcome, reason, length, ten digits, two positions, two
		// magnitudes.
		const (
			outcomeAt   = 0
			reasonAt    = 1
			digitsAt    = 3
			positionAt  = 13
			magnitudeAt = 15
		)

		marshalSingleError := func() []byte {
			result, err := bch.Decode("3945195876")
			Expect(err).ToNot(HaveOccurred())
			data, err := surge.ToBinary(result)
			Expect(err).ToNot(HaveOccurred())
			Expect(data).To(HaveLen(17))
			return data
		}

		Specify("unmodified data should be accepted", func() {
			var result bch.Result
			Expect(surge.FromBinary(&result, marshalSingleError())).To(Succeed())
			Expect(result.Outcome()).To(Equal(bch.SingleError))
		})

		DescribeTable("corrupted fields should be rejected",
			func(at int, value byte) {
				data := marshalSingleError()
				data[at] = value

				var result bch.Result
				Expect(surge.FromBinary(&result, data)).ToNot(Succeed())
			},
			Entry("digit above nine", digitsAt+4, byte(10)),
			Entry("position beyond the word", positionAt, byte(11)),
			Entry("magnitude of eleven", magnitudeAt, byte(11)),
			Entry("uncorrectable with a corrected word", outcomeAt, byte(bch.Uncorrectable)),
			Entry("correction with a reason", reasonAt, byte(bch.NoValidRoots)),
		)
	})
})
