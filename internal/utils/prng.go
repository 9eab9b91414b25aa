// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"
)

// averageBase — знаменатель RandAverage. Он не зависит от числа бросков,
// поэтому при iter > 6 результат выходит за [0, 1) и растет вместе с iter.
const averageBase = 6

// WeightedEntry — элемент таблицы взвешенного выбора.
type WeightedEntry struct {
	ID     string
	Weight int
}

// PRNGService — обертка над генератором случайных чисел, которую передают во все системы,
// чтобы игру можно было воспроизвести по сиду.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает сервис с указанным сидом. Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Chance возвращает true с вероятностью p.
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// Range возвращает число в [min, max).
func (s *PRNGService) Range(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// RandAverage суммирует iter бросков и делит на averageBase.
// При iter = 6 это среднее шести бросков со смещением к 0.5.
func (s *PRNGService) RandAverage(iter int) float64 {
	sum := 0.0
	for i := 0; i < iter; i++ {
		sum += s.rng.Float64()
	}
	return sum / averageBase
}

// RandRange возвращает целое floor(start + RandAverage(iter) * (end - start + 1)).
func (s *PRNGService) RandRange(start, end float64, iter int) int {
	return int(math.Floor(start + s.RandAverage(iter)*(end-start+1)))
}

// ChooseWeighted выполняет взвешенный случайный выбор из таблицы.
func (s *PRNGService) ChooseWeighted(entries []WeightedEntry) string {
	if len(entries) == 0 {
		return ""
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}
	if totalWeight <= 0 {
		return entries[0].ID
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry.ID
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1].ID
}
