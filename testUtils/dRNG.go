package testUtils

import "math/rand"

//NewDRNG returns a deterministic pseudo random generator. Calling with the same seed will yield the same sequence.
//Intended to make generated test data sets reproducible
func NewDRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

//ScriptedRand replays fixed values instead of drawing random ones. Floats and Ints are consumed independently
//and wrap around once exhausted. Intn results are reduced modulo n so scripts stay valid for any n
type ScriptedRand struct {
	Floats   []float64
	Ints     []int
	floatIDX int
	intIDX   int
}

func (s *ScriptedRand) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.floatIDX%len(s.Floats)]
	s.floatIDX++
	return v
}

func (s *ScriptedRand) Intn(n int) int {
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[s.intIDX%len(s.Ints)]
	s.intIDX++
	return v % n
}

//MaxFloat64BelowOne is the largest value math/rand.Float64 can return
const MaxFloat64BelowOne = 1 - 1.0/(1<<53)
