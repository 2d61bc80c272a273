package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Config holds training configuration
type Config struct {
	Topology     []int
	LearningRate float64
	Epochs       int
	Seed         uint64
	DataPath     string
	PlotPath     string
	ReportEvery  int
}

// ParseTopology parses a comma or whitespace separated list of layer widths
func ParseTopology(s string) ([]int, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	topology := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		topology[i] = n
	}
	return topology, nil
}

// ValidateConfig validates training configuration
func ValidateConfig(config *Config) error {
	if len(config.Topology) < 2 {
		return fmt.Errorf("topology must have at least 2 layers (input and output)")
	}

	for i, n := range config.Topology {
		if n <= 0 {
			return fmt.Errorf("layer %d must have a positive width, got %d", i, n)
		}
	}

	if config.LearningRate <= 0 {
		return fmt.Errorf("learning rate must be positive")
	}

	if config.Epochs <= 0 {
		return fmt.Errorf("epochs must be positive")
	}

	if config.ReportEvery < 0 {
		return fmt.Errorf("report interval must not be negative")
	}

	return nil
}
