package modular_test

import (
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/renproject/checkdigit/modular"
)

var _ = Describe("Modular values", func() {
	const p = 11

	Context("construction", func() {
		Specify("values should be normalised into range", func() {
			Expect(New(0, p).Int()).To(Equal(0))
			Expect(New(11, p).Int()).To(Equal(0))
			Expect(New(25, p).Int()).To(Equal(3))
			Expect(New(-1, p).Int()).To(Equal(10))
			Expect(New(-23, p).Int()).To(Equal(10))
			Expect(New(-6, p).Modulus()).To(Equal(p))
		})

		Specify("a non positive modulus should panic", func() {
			Expect(func() { New(1, 0) }).To(Panic())
			Expect(func() { New(1, -11) }).To(Panic())
		})

		Specify("equality should compare values only", func() {
			Expect(New(3, p).Eq(New(14, p))).To(BeTrue())
			Expect(New(3, p).Eq(New(4, p))).To(BeFalse())
			Expect(New(3, p).EqInt(3)).To(BeTrue())
			Expect(New(3, p).EqInt(14)).To(BeFalse())
		})

		Specify("values should print with their modulus", func() {
			Expect(New(-1, p).String()).To(Equal("10 mod 11"))
		})
	})

	Context("arithmetic", func() {
		Specify("addition", func() {
			Expect(New(1, p).Add(New(10, p)).Int()).To(Equal(0))
			Expect(New(7, p).Add(New(6, p)).Int()).To(Equal(2))
		})

		Specify("subtraction", func() {
			Expect(New(1, p).Sub(New(10, p)).Int()).To(Equal(2))
			Expect(New(0, p).Sub(New(3, p)).Int()).To(Equal(8))
		})

		Specify("multiplication", func() {
			z := New(4, p).Mul(New(7, p))
			Expect(z.Int()).To(Equal(6))
			Expect(z.Modulus()).To(Equal(p))
			Expect(New(4, p).Scale(-2).Int()).To(Equal(3))
		})

		Specify("negation", func() {
			Expect(New(0, p).Neg().Int()).To(Equal(0))
			Expect(New(4, p).Neg().Int()).To(Equal(7))
		})

		Specify("exponentiation", func() {
			x := New(5, p)
			Expect(x.Pow(0).Int()).To(Equal(1))
			Expect(x.Pow(1).Int()).To(Equal(5))
			Expect(x.Pow(2).Int()).To(Equal(3))
			Expect(x.Pow(47).Int()).To(Equal(3))
			Expect(x.Pow(34).Int()).To(Equal(9))
			Expect(x.Pow(35).Int()).To(Equal(1))
			Expect(func() { x.Pow(-1) }).To(Panic())
		})

		Specify("mixing moduli should panic", func() {
			Expect(func() { New(1, p).Add(New(1, 13)) }).To(Panic())
			Expect(func() { New(1, p).Sub(New(1, 13)) }).To(Panic())
			Expect(func() { New(1, p).Mul(New(1, 13)) }).To(Panic())
		})
	})

	Context("division", func() {
		Specify("quotients should be found", func() {
			z, err := New(-6, p).TryDiv(New(9, p))
			Expect(err).ToNot(HaveOccurred())
			Expect(z.Int()).To(Equal(3))

			z, err = New(-8, p).TryDiv(New(9, p))
			Expect(err).ToNot(HaveOccurred())
			Expect(z.Int()).To(Equal(4))

			z, err = New(0, p).TryDiv(New(5, p))
			Expect(err).ToNot(HaveOccurred())
			Expect(z.IsZero()).To(BeTrue())
		})

		Specify("the quotient times the divisor should give the dividend", func() {
			for a := 0; a < p; a++ {
				for b := 1; b < p; b++ {
					z, err := New(a, p).TryDiv(New(b, p))
					Expect(err).ToNot(HaveOccurred())
					Expect(z.Mul(New(b, p)).Int()).To(Equal(a))
				}
			}
		})

		Specify("dividing by zero should fail", func() {
			_, err := New(3, p).TryDiv(Zero(p))
			Expect(errors.Is(err, ErrDivideByZero)).To(BeTrue())
		})

		Specify("dividing by a value of another modulus should fail", func() {
			_, err := New(3, p).TryDiv(New(3, 13))
			Expect(errors.Is(err, ErrModulusMismatch)).To(BeTrue())
		})

		Specify("dividing by a non unit should fail", func() {
			_, err := New(3, 12).TryDiv(New(4, 12))
			Expect(errors.Is(err, ErrNoInverse)).To(BeTrue())

			z, err := New(3, 12).TryDiv(New(5, 12))
			Expect(err).ToNot(HaveOccurred())
			Expect(z.Int()).To(Equal(3))
		})
	})

	Context("square roots", func() {
		Specify("quadratic residues should have roots", func() {
			for _, r := range []int{0, 1, 3, 4, 5, 9} {
				x, err := New(r, p).Sqrt()
				Expect(err).ToNot(HaveOccurred())
				Expect(x.Pow(2).Int()).To(Equal(r))
			}
		})

		Specify("the smallest root should be returned", func() {
			x, err := New(4, p).Sqrt()
			Expect(err).ToNot(HaveOccurred())
			Expect(x.Int()).To(Equal(2))

			x, err = Zero(p).Sqrt()
			Expect(err).ToNot(HaveOccurred())
			Expect(x.Int()).To(Equal(0))
		})

		Specify("non residues should fail", func() {
			for _, r := range []int{2, 6, 7, 8, 10} {
				_, err := New(r, p).Sqrt()
				Expect(errors.Is(err, ErrNoSquareRoot)).To(BeTrue())
			}
		})
	})
})
