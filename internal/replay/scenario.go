// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package replay

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/go-parkour-client/models"
)

//go:embed default_scenario.json
var defaultScenario []byte

// Scenario is a recorded run.
type Scenario struct {
	// Start is served for every new session. Its session_id is replaced.
	Start models.StartResponse `json:"start"`
	// Steps are the choice responses in the order they were served.
	Steps []models.ChoiceResponse `json:"steps"`
}

// LoadScenario reads a scenario from path. An empty path selects the
// built-in rooftop run.
func LoadScenario(path string) (Scenario, error) {
	data := defaultScenario
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return Scenario{}, fmt.Errorf("error reading scenario file: %w", err)
		}
	}

	return ParseScenario(data)
}

// ParseScenario decodes and checks a scenario.
func ParseScenario(data []byte) (Scenario, error) {
	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("error decoding scenario: %w", err)
	}

	return s, s.validate()
}

func (s Scenario) validate() error {
	if s.Start.Error != "" {
		return nil
	}
	if s.Start.Encounter == nil {
		return ErrNoStartSession
	}
	if len(s.Steps) == 0 {
		return ErrEmptyScenario
	}
	return nil
}
