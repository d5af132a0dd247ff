package configs

import "fmt"

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Storage selects the boost store. The memory driver keeps everything in
// process and is meant for local runs; the postgres driver is the durable
// production store.
type Storage struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
}

// Validate rejects unknown drivers.
func (c Storage) Validate() error {
	switch c.Driver {
	case StorageMemory, StoragePostgres:
		return nil
	default:
		return fmt.Errorf("unknown storage driver %q", c.Driver)
	}
}
