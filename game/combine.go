package game

import (
	"strings"

	"skirmish/utils"
)

const hundred = 100

// Combine merges the incoming unit a into the resident unit b. It reports
// false when the two are incompatible. Identically named units and kings
// never combine.
//
// Rules are tried in order: symbiosis, affinity (gcd above 100), prime
// compatibility (gcd exactly 100 with prime hundreds).
func Combine(a, b Unit) (Unit, bool) {
	if a.Name == b.Name || a.King || b.King {
		return Unit{}, false
	}

	merged := Unit{Name: combinedName(a.Name, b.Name), Category: b.Category}

	if isSymbiosis(a, b) {
		merged.Attack, merged.Defense = a.Attack, b.Defense
		return merged, true
	}

	g := max(gcd(a.Attack, b.Attack), gcd(a.Defense, b.Defense))
	if g > hundred {
		merged.Attack = a.Attack + b.Attack - g
		merged.Defense = a.Defense + b.Defense - g
		return merged, true
	}

	if g == hundred && isPrimeCompatible(a, b) {
		merged.Attack = a.Attack + b.Attack
		merged.Defense = a.Defense + b.Defense
		return merged, true
	}

	return Unit{}, false
}

func combinedName(nameA, nameB string) string {
	qualA, _ := split(nameA)
	qualB, roleB := split(nameB)
	return strings.TrimSpace(qualB + " " + qualA + " " + roleB)
}

func isSymbiosis(a, b Unit) bool {
	return a.Attack > b.Attack && a.Attack == b.Defense && b.Attack == a.Defense
}

func isPrimeCompatible(a, b Unit) bool {
	attackPrime := isPrime(a.Attack/hundred) && isPrime(b.Attack/hundred)
	defensePrime := isPrime(a.Defense/hundred) && isPrime(b.Defense/hundred)
	return attackPrime || defensePrime
}

// gcd is Euclid's algorithm on absolute values.
func gcd(a, b int) int {
	a, b = utils.Abs(a), utils.Abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func isPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := 5; i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}
