package tuning

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Tuning struct {
	ProtocolVersion string `yaml:"protocol_version"`

	TickRateHz    int `yaml:"tick_rate_hz"`
	ConveyorHopMs int `yaml:"conveyor_hop_ms"`

	// DefaultStackCap overrides stack_caps.json's default when positive.
	DefaultStackCap int `yaml:"default_stack_cap"`

	StorageSeed StorageSeed `yaml:"storage_seed"`
}

// StorageSeed is the stock a Storage block starts with at placement.
type StorageSeed struct {
	Item string `yaml:"item"`
	Qty  int    `yaml:"qty"`
}

func Defaults() Tuning {
	return Tuning{
		ProtocolVersion: "1.0",
		TickRateHz:      20,
		ConveyorHopMs:   1000,
		DefaultStackCap: 64,
		StorageSeed:     StorageSeed{Item: "IRON_SOLID", Qty: 10},
	}
}

func Load(path string) (Tuning, error) {
	t := Defaults()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	return t, nil
}
