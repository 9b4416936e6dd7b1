package identity

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"rescue-passport/internal/domain/passports"

	"github.com/google/uuid"
)

// UUIDAllocator asigna identidades UUIDv4. Es el allocator de producción.
type UUIDAllocator struct{}

func NewUUIDAllocator() *UUIDAllocator {
	return &UUIDAllocator{}
}

func (a *UUIDAllocator) Allocate(ctx context.Context) (passports.ID, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("allocate passport id: %w", err)
	}
	return passports.ID(id.String()), nil
}

// IdentityToAddress devuelve la forma 0x<hex> del UUID. Si id no es un UUID
// (p.ej. viene de otro allocator) se hex-codifican sus bytes.
func (a *UUIDAllocator) IdentityToAddress(id passports.ID) passports.Address {
	if u, err := uuid.Parse(string(id)); err == nil {
		return passports.Address("0x" + hex.EncodeToString(u[:]))
	}
	return passports.Address("0x" + hex.EncodeToString([]byte(id)))
}

// SequenceAllocator asigna "<prefix>-1", "<prefix>-2", ... Determinístico; para tests y dev.
type SequenceAllocator struct {
	mu     sync.Mutex
	prefix string
	next   uint64
}

func NewSequenceAllocator(prefix string) *SequenceAllocator {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "passport"
	}
	return &SequenceAllocator{prefix: prefix, next: 1}
}

func (a *SequenceAllocator) Allocate(ctx context.Context) (passports.ID, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	n := a.next
	a.next++
	return passports.ID(fmt.Sprintf("%s-%d", a.prefix, n)), nil
}

func (a *SequenceAllocator) IdentityToAddress(id passports.ID) passports.Address {
	return passports.Address("0x" + hex.EncodeToString([]byte(id)))
}
