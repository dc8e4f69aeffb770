package validator

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/table"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	TablePath string
	Decks     int
	Results   ValidationResults

	config table.TableConfig
}

// NewValidator creates a validator for a table file dealt from a shoe of decks
func NewValidator(tablePath string, decks int) *Validator {
	if decks < 1 {
		decks = 1
	}
	return &Validator{
		TablePath: tablePath,
		Decks:     decks,
		Results:   ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateTableToml(); err != nil {
		return v.Results, err
	}

	v.validateHands()
	v.validateCardCounts()

	return v.Results, nil
}

func (v *Validator) validateTableToml() error {
	if _, err := os.Stat(v.TablePath); os.IsNotExist(err) {
		return fmt.Errorf("table file not found: %s", v.TablePath)
	}

	if _, err := toml.DecodeFile(v.TablePath, &v.config); err != nil {
		return fmt.Errorf("error parsing %s: %w", v.TablePath, err)
	}

	if v.config.Name == "" {
		v.Results.Warnings = append(v.Results.Warnings, "name is not set")
	}

	if len(v.config.Hands) == 0 {
		v.Results.Errors = append(v.Results.Errors, "no hands defined")
	}
	return nil
}

// validateHands checks hand names and card labels
func (v *Validator) validateHands() {
	seen := make(map[string]bool)

	for i, hc := range v.config.Hands {
		label := hc.Name
		if hc.Name == "" {
			label = fmt.Sprintf("#%d", i+1)
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("hands[%d].name is required", i))
		} else {
			key := strings.ToLower(hc.Name)
			if seen[key] {
				v.Results.Errors = append(v.Results.Errors,
					fmt.Sprintf("duplicate hand name: %s", hc.Name))
			}
			seen[key] = true
		}

		if len(hc.Cards) == 0 {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("hand %s has no cards", label))
			continue
		}

		for j, cardLabel := range hc.Cards {
			if _, err := card.ParseCard(cardLabel); err != nil {
				v.Results.Errors = append(v.Results.Errors,
					fmt.Sprintf("hand %s card %d: %v", label, j+1, err))
			}
		}
	}
}

// validateCardCounts checks that no card shows up more often than the shoe holds
func (v *Validator) validateCardCounts() {
	counts := make(map[card.Card]int)
	for _, hc := range v.config.Hands {
		for _, cardLabel := range hc.Cards {
			c, err := card.ParseCard(cardLabel)
			if err != nil {
				continue // Already reported
			}
			counts[c]++
		}
	}

	var overdealt []string
	for c, n := range counts {
		if n > v.Decks {
			overdealt = append(overdealt, fmt.Sprintf("%s (%d)", c, n))
		}
	}
	sort.Strings(overdealt)

	for _, entry := range overdealt {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("card dealt more times than %d deck(s) allow: %s", v.Decks, entry))
	}
}
