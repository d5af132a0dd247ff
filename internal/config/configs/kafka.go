package configs

import "time"

// Kafka configures the lifecycle event writer.
type Kafka struct {
	// Brokers is a comma separated list of bootstrap brokers. Empty
	// disables publishing.
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"TOPIC" envDefault:"boost-events"`
	// QueueSize is how many events may wait for the broker before new ones
	// are dropped.
	QueueSize    int           `env:"QUEUE_SIZE" envDefault:"1024"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"5s"`
}

// Enabled reports whether at least one broker is configured.
func (c Kafka) Enabled() bool {
	return len(c.Brokers) > 0
}
