package rng

import (
	"math/rand"
	"sync"
	"time"
)

// Source — потокобезопасный источник случайных чисел поверх math/rand.
// Все игровые правила берут случайность только отсюда
type Source struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New создает источник со случайным зерном
func New() *Source {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded создает источник с фиксированным зерном
func NewSeeded(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// Float64 возвращает число из [0, 1)
func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// Uniform возвращает число из [min, max)
func (s *Source) Uniform(min, max float64) float64 {
	return min + (max-min)*s.Float64()
}
