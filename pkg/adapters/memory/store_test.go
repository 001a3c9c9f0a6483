package memory_test

import (
	"testing"

	"github.com/plin1112/mcell/pkg/adapters/memory"
	"github.com/plin1112/mcell/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunSiteStoreContract(t, store)
}
