package gameplay

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
)

// Randomizer — источник случайности для выбора вопросов, перемешивания ответов и подсказок.
// *rand.Rand удовлетворяет интерфейсу; в тестах подставляется детерминированный источник.
type Randomizer interface {
	Intn(n int) int
	Perm(n int) []int
}

// lockedRand делает *rand.Rand безопасным для конкурентных запросов
type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(n)
}

func (r *lockedRand) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Perm(n)
}

// NewSeededRandomizer создаёт потокобезопасный источник с заданным seed
func NewSeededRandomizer(seed int64) Randomizer {
	return &lockedRand{rnd: rand.New(rand.NewSource(seed))}
}

// NewRandomizer создаёт источник, засеянный из crypto/rand
func NewRandomizer() (Randomizer, error) {
	seed, err := newSeed()
	if err != nil {
		return nil, err
	}
	return NewSeededRandomizer(seed), nil
}

func newSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
