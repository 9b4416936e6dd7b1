package identity

import (
	"context"
	"strings"
	"testing"

	"rescue-passport/internal/domain/passports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestUUIDAllocator_AllocatesDistinctUUIDs(t *testing.T) {
	a := NewUUIDAllocator()
	seen := map[passports.ID]struct{}{}

	for i := 0; i < 100; i++ {
		id, err := a.Allocate(context.Background())
		require.NoError(t, err)

		_, err = uuid.Parse(string(id))
		require.NoError(t, err)

		_, dup := seen[id]
		require.False(t, dup, "duplicated id %s", id)
		seen[id] = struct{}{}
	}
}

func TestUUIDAllocator_IdentityToAddress(t *testing.T) {
	a := NewUUIDAllocator()

	addr := a.IdentityToAddress("550e8400-e29b-41d4-a716-446655440000")
	require.Equal(t, passports.Address("0x550e8400e29b41d4a716446655440000"), addr)

	require.True(t, strings.HasPrefix(string(a.IdentityToAddress("not-a-uuid")), "0x"))
}

func TestSequenceAllocator_IsDeterministic(t *testing.T) {
	a := NewSequenceAllocator("")

	first, err := a.Allocate(context.Background())
	require.NoError(t, err)
	second, err := a.Allocate(context.Background())
	require.NoError(t, err)

	require.Equal(t, passports.ID("passport-1"), first)
	require.Equal(t, passports.ID("passport-2"), second)
	require.Equal(t, passports.Address("0x70617373706f72742d31"), a.IdentityToAddress(first))
}
