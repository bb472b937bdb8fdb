package service

import (
	"sync/atomic"

	"github.com/MKhiriev/go-crypter/models"
)

// Guard admits one crypter operation at a time. Services of one session
// share a Guard.
type Guard struct {
	busy atomic.Bool
}

func NewGuard() *Guard {
	return &Guard{}
}

// Acquire marks the session busy or fails with models.ErrOperationInProgress.
func (g *Guard) Acquire() error {
	if !g.busy.CompareAndSwap(false, true) {
		return models.ErrOperationInProgress
	}
	return nil
}

func (g *Guard) Release() {
	g.busy.Store(false)
}
