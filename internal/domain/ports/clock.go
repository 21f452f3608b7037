package ports

import "time"

// Clock fornece o instante atual (substituível em testes)
type Clock interface {
	Now() time.Time
}

// SystemClock usa o relógio do sistema
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
