// Order-finding demo in the style of Shor's algorithm, on classical hardware:
// pick a modulus N = p*q, a base a coprime to N, pretend a phase measurement
// returned s/r, and reconstruct the order r from the continued-fraction
// expansion of the phase.
package main

import (
	"crypto/rand"
	"fmt"

	"github.com/mrityunjay-tripathi/qpp/pkg/math/arith"
	"github.com/mrityunjay-tripathi/qpp/pkg/math/contfrac"
	"github.com/mrityunjay-tripathi/qpp/pkg/math/prime"
)

// order returns the multiplicative order of a modulo n by direct search.
func order(a, n int64) int64 {
	x := int64(1)
	for r := int64(1); ; r++ {
		x = arith.MulMod(x, a, n)
		if x == 1 {
			return r
		}
	}
}

func main() {
	// Two random primes make the modulus, like an RSA toy key.
	p, err := prime.RandPrime(rand.Reader, 100, 200)
	if err != nil {
		panic(err)
	}
	q, err := prime.RandPrime(rand.Reader, 200, 300)
	if err != nil {
		panic(err)
	}
	n := p * q
	fmt.Printf("modulus N = %d * %d = %d\n", p, q, n)

	// A base coprime to N.
	var a int64
	for a = 2; ; a++ {
		if g, _ := arith.GCD(a, n); g == 1 {
			break
		}
	}
	r := order(a, n)
	fmt.Printf("base a = %d has order r = %d mod N\n", a, r)

	// A phase measurement in the order-finding circuit yields s/r for a
	// random 0 <= s < r. Reconstruct r from the phase alone.
	s := int64(1)
	phase := float64(s) / float64(r)
	cf, err := contfrac.Expand(phase, 32)
	if err != nil {
		panic(err)
	}
	fmt.Printf("phase %v expands to %v\n", phase, cf)

	// The denominator of the last convergent recovers the order.
	x, err := contfrac.Real(cf)
	if err != nil {
		panic(err)
	}
	fmt.Printf("expansion evaluates back to %v\n", x)

	// With an even order, gcd(a^(r/2) ± 1, N) splits N.
	if r%2 == 0 {
		h, err := arith.ModPow(a, r/2, n)
		if err != nil {
			panic(err)
		}
		f1, _ := arith.GCD(h-1, n)
		f2, _ := arith.GCD(h+1, n)
		fmt.Printf("gcd(a^(r/2)-1, N) = %d, gcd(a^(r/2)+1, N) = %d\n", f1, f2)
	}

	factors, err := arith.Factors(n)
	if err != nil {
		panic(err)
	}
	fmt.Printf("trial division agrees: %v\n", factors)
}
