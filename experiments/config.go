package experiments

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gametree/experiments/metrics"
)

// DefaultGames is the number of games per matchup when the config does
// not set one.
const DefaultGames = 10

// Config describes an experiment: the agents under test and the matchups
// to play between them. Each matchup pairs two agent IDs; an agent may
// play against itself.
type Config struct {
	Name     string                `yaml:"name"`
	Games    int                   `yaml:"games"`
	Seed     int64                 `yaml:"seed"`
	Agents   []metrics.AgentConfig `yaml:"agents"`
	Matchups [][]int               `yaml:"matchups"`
}

// LoadConfig reads and validates an experiment config from a YAML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if config.Games == 0 {
		config.Games = DefaultGames
	}
	if err := config.validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) validate() error {
	if c.Name == "" {
		return errors.New("the config needs a name")
	}
	if c.Games < 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if len(c.Agents) == 0 {
		return errors.New("the config needs at least one agent")
	}
	ids := map[int]bool{}
	for _, agent := range c.Agents {
		if agent.ID <= 0 {
			return fmt.Errorf("agent ids must be positive, got %d", agent.ID)
		}
		if ids[agent.ID] {
			return fmt.Errorf("duplicate agent id %d", agent.ID)
		}
		ids[agent.ID] = true
		if agent.Samples < 0 {
			return fmt.Errorf("agent %d: samples must not be negative", agent.ID)
		}
		if agent.MaxDepth < 0 || agent.MaxDepth == 1 {
			return fmt.Errorf("agent %d: the depth cap must be greater than 1", agent.ID)
		}
		if agent.Exploration < 0 {
			return fmt.Errorf("agent %d: exploration must not be negative", agent.ID)
		}
	}
	if len(c.Matchups) == 0 {
		return errors.New("the config needs at least one matchup")
	}
	seen := map[[2]int]bool{}
	for i, matchup := range c.Matchups {
		if len(matchup) != 2 {
			return fmt.Errorf("matchup %d must pair exactly two agents", i+1)
		}
		for _, id := range matchup {
			if !ids[id] {
				return fmt.Errorf("matchup %d references unknown agent %d", i+1, id)
			}
		}
		key := [2]int{matchup[0], matchup[1]}
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if seen[key] {
			return fmt.Errorf("duplicate matchup between agents %d and %d", matchup[0], matchup[1])
		}
		seen[key] = true
	}
	return nil
}

// agent returns the config with the given ID. Validation guarantees that
// matchup IDs resolve.
func (c Config) agent(id int) metrics.AgentConfig {
	for _, agent := range c.Agents {
		if agent.ID == id {
			return agent
		}
	}
	panic(fmt.Sprintf("no agent with id %d", id))
}
