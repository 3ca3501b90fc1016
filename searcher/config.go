package searcher

import "time"

type Config struct {
	MaxDepth int           // Maximum depth in half-moves
	Threads  int           // Workers searching in parallel
	MaxTime  time.Duration // Soft deadline, unbounded if not positive
}

func DefaultConfig() Config {
	return Config{MaxDepth: 20, Threads: 1}
}

// ConfigFromDifficulty maps a difficulty level to a single-threaded search.
// Low levels search shallow with tight deadlines; 10 and above search to
// depth 40 with no deadline.
func ConfigFromDifficulty(difficulty int) Config {
	cfg := Config{Threads: 1}
	switch {
	case difficulty <= 1:
		cfg.MaxDepth = 1
	case difficulty == 2:
		cfg.MaxDepth = 2
	case difficulty <= 6:
		cfg.MaxDepth = 10
	case difficulty <= 9:
		cfg.MaxDepth = 20
	default:
		cfg.MaxDepth = 40
	}

	switch difficulty {
	case 1:
		cfg.MaxTime = 5 * time.Millisecond
	case 2:
		cfg.MaxTime = 10 * time.Millisecond
	case 3:
		cfg.MaxTime = 20 * time.Millisecond
	case 4:
		cfg.MaxTime = 50 * time.Millisecond
	case 5:
		cfg.MaxTime = 100 * time.Millisecond
	case 6:
		cfg.MaxTime = 200 * time.Millisecond
	case 7:
		cfg.MaxTime = 500 * time.Millisecond
	case 8:
		cfg.MaxTime = time.Second
	case 9:
		cfg.MaxTime = 2 * time.Second
	}
	return cfg
}

func (c Config) budget() time.Duration {
	if c.MaxTime <= 0 {
		return NoTimeLimit
	}
	return c.MaxTime
}
