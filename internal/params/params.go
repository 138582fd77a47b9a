package params

const (
	// MillerRabinIterations is the default number of Miller-Rabin rounds.
	// The probability of declaring a composite prime is bounded by 2⁻⁸⁰.
	MillerRabinIterations = 80

	// PrimeSearchAttempts bounds the candidate search in prime.RandPrime.
	PrimeSearchAttempts = 1000

	// ContFracCut stops a continued-fraction expansion once the next value
	// exceeds this magnitude. Past this point the remaining terms are
	// numerical noise.
	ContFracCut = 1e5

	// MaxSampleIterations bounds retry loops around the external random
	// source before giving up.
	MaxSampleIterations = 255
)
