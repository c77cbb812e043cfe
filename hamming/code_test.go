package hamming_test

import (
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	. "github.com/renproject/checkdigit/hamming"
)

func mustParse(s string) Digits {
	digits, err := ParseDigits(s)
	Expect(err).ToNot(HaveOccurred())
	return digits
}

func inputError(err error) *InputError {
	var inputErr *InputError
	Expect(errors.As(err, &inputErr)).To(BeTrue())
	return inputErr
}

var _ = Describe("Hamming code", func() {
	code := Standard()

	Context("parsing digits", func() {
		Specify("decimal strings should parse", func() {
			digits, err := ParseDigits("0123456789")
			Expect(err).ToNot(HaveOccurred())
			Expect(digits).To(Equal(Digits{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}))
			Expect(digits.String()).To(Equal("0123456789"))
		})

		Specify("non decimal characters should be rejected with their position", func() {
			_, err := ParseDigits("12a4")
			Expect(errors.Is(err, ErrInvalidDigit)).To(BeTrue())
			Expect(inputError(err).Position).To(Equal(3))
		})

		Specify("the length should be checked before the characters", func() {
			_, err := ParsePayload("12a")
			Expect(errors.Is(err, ErrInvalidLength)).To(BeTrue())
			Expect(inputError(err).Expected).To(Equal(6))
			Expect(inputError(err).Actual).To(Equal(3))

			_, err = ParseCodeword("374519587a")
			Expect(errors.Is(err, ErrInvalidDigit)).To(BeTrue())
		})

		Specify("multi byte characters should count once towards the length", func() {
			_, err := ParsePayload("12345é")
			Expect(errors.Is(err, ErrInvalidDigit)).To(BeTrue())
		})

		Specify("clones should not share memory", func() {
			digits := mustParse("123")
			cloned := digits.Clone()
			cloned[0] = 9
			Expect(digits.String()).To(Equal("123"))
			Expect(digits.Equal(cloned)).To(BeFalse())
			Expect(Digits(nil).Clone()).To(BeNil())
		})

		Specify("out of range elements should fail validation", func() {
			Expect(Digits{1, 2, 3}.Validate()).To(Succeed())
			err := Digits{1, 10, 3}.Validate()
			Expect(errors.Is(err, ErrInvalidDigit)).To(BeTrue())
			Expect(inputError(err).Position).To(Equal(2))
			Expect(Digits{1, 10}.String()).To(Equal("1?"))
		})
	})

	Context("check digits", func() {
		DescribeTable("payloads should produce the expected check digits",
			func(payload, expected string) {
				check, err := code.CheckDigits(mustParse(payload))
				Expect(err).ToNot(HaveOccurred())
				Expect(check.String()).To(Equal(expected))

				codeword, err := code.Codeword(mustParse(payload))
				Expect(err).ToNot(HaveOccurred())
				Expect(codeword.String()).To(Equal(payload + expected))
			},
			Entry("000011", "000011", "8435"),
			Entry("000001", "000001", "7671"),
			Entry("000000", "000000", "0000"),
			Entry("374519", "374519", "5876"),
			Entry("100000", "100000", "4791"),
		)

		DescribeTable("payloads with a check digit of ten should be unusable",
			func(payload string) {
				_, err := code.CheckDigits(mustParse(payload))
				Expect(errors.Is(err, ErrUnusableNumber)).To(BeTrue())
				Expect(inputError(err).Kind).To(Equal(UnusableNumber))
			},
			Entry("000003", "000003"),
			Entry("123456", "123456"),
			Entry("999999", "999999"),
		)

		Specify("payloads of the wrong length should be rejected", func() {
			_, err := code.CheckDigits(mustParse("12345"))
			Expect(errors.Is(err, ErrInvalidLength)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("of length 5 but a length of 6"))

			_, err = code.Codeword(mustParse("1234567"))
			Expect(errors.Is(err, ErrInvalidLength)).To(BeTrue())
		})

		Specify("payloads with invalid digits should be rejected", func() {
			_, err := code.CheckDigits(Digits{1, 2, 3, 4, 5, 11})
			Expect(errors.Is(err, ErrInvalidDigit)).To(BeTrue())
		})
	})

	Context("syndromes", func() {
		Specify("valid codewords should have a zero syndrome", func() {
			syndrome, err := code.Syndromes(mustParse("3745195876"))
			Expect(err).ToNot(HaveOccurred())
			Expect(syndrome.IsZero()).To(BeTrue())
		})

		Specify("a single error should scale the powers of its position", func() {
			sums, err := code.SyndromeSums(mustParse("3945195876"))
			Expect(err).ToNot(HaveOccurred())
			Expect(sums).To(Equal([4]int{57, 334, 261, 346}))

			syndrome, err := code.Syndromes(mustParse("3945195876"))
			Expect(err).ToNot(HaveOccurred())
			Expect(syndrome.IsZero()).To(BeFalse())
			Expect(syndrome.Ints()).To(Equal([4]int{2, 4, 8, 5}))
			Expect(syndrome.String()).To(Equal("[2, 4, 8, 5]"))
		})

		Specify("words of the wrong length should be rejected", func() {
			_, err := code.Syndromes(mustParse("374519587"))
			Expect(errors.Is(err, ErrInvalidLength)).To(BeTrue())
			Expect(inputError(err).Expected).To(Equal(10))
			Expect(inputError(err).Actual).To(Equal(9))
		})

		Specify("words with invalid digits should be rejected", func() {
			_, err := code.SyndromeSums(Digits{3, 7, 4, 5, 1, 9, 5, 8, 7, 10})
			Expect(errors.Is(err, ErrInvalidDigit)).To(BeTrue())
			Expect(inputError(err).Position).To(Equal(10))
		})
	})

	Context("weights", func() {
		Specify("the syndrome table should be the powers of the positions", func() {
			Expect(PowerSyndromeWeights()).To(Equal(StandardWeights().Syndrome))
		})

		Specify("the standard weights should be consistent", func() {
			Expect(StandardWeights().Validate()).To(Succeed())
			_, err := New(StandardWeights())
			Expect(err).ToNot(HaveOccurred())
		})

		Specify("modifying the returned weights should not affect the code", func() {
			weights := code.Weights()
			weights.Check[0][0] = 0
			Expect(code.Weights().Check[0][0]).To(Equal(4))
			Expect(StandardWeights().Check[0][0]).To(Equal(4))
		})

		Specify("inconsistent check weights should be rejected", func() {
			weights := StandardWeights()
			weights.Check[2][3]++
			_, err := New(weights)
			Expect(errors.Is(err, ErrInvalidWeights)).To(BeTrue())
		})

		Specify("syndrome weights that are not powers should be rejected", func() {
			weights := StandardWeights()
			weights.Syndrome[1][0] = 2
			_, err := New(weights)
			Expect(errors.Is(err, ErrInvalidWeights)).To(BeTrue())
		})

		Specify("weights equal modulo 11 should be accepted", func() {
			weights := StandardWeights()
			weights.Check[0][0] += 11
			weights.Syndrome[3][9] -= 11
			custom, err := New(weights)
			Expect(err).ToNot(HaveOccurred())

			check, err := custom.CheckDigits(mustParse("000011"))
			Expect(err).ToNot(HaveOccurred())
			Expect(check.String()).To(Equal("8435"))
		})
	})
})
