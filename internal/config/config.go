// Package config loads and validates the declarative filter document
// from disk, per spec.md §6/§7: strict struct-tag validation before any
// search work begins, surfacing every problem at once rather than
// failing on the first one — the same go-playground/validator/v10
// struct-tag approach the teacher uses for its API request bodies
// (internal/api/investigation_handlers.go).
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rawblock/seedsearch/internal/filter"
	"github.com/rawblock/seedsearch/internal/tables"
)

var validate = validator.New()

// Load reads and validates a filter document from path.
func Load(path string) (filter.Document, error) {
	var doc filter.Document
	data, err := os.ReadFile(path)
	if err != nil {
		return doc, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := validate.Struct(doc); err != nil {
		return doc, fmt.Errorf("config: %s failed validation: %w", path, formatValidationError(err))
	}
	if warnings := stakeWarnings(doc); len(warnings) > 0 {
		fmt.Fprintf(os.Stderr, "config: %s\n", strings.Join(warnings, "; "))
	}
	return doc, nil
}

func formatValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}

// stakeWarnings checks for clauses that request Eternal/Perishable or
// Rental stickers at a stake too low to ever roll them (spec.md §6:
// "stake-dependent sticker requirements must match the declared stake or
// produce a warning"). These are warnings, not validation failures — the
// search still runs, it just can never match such a clause.
func stakeWarnings(doc filter.Document) []string {
	stake := tables.StakeWhite
	if doc.Stake != "" {
		if s, ok := tables.ParseStake(doc.Stake); ok {
			stake = s
		}
	}
	var warnings []string
	check := func(clauses []filter.Clause) {
		for _, c := range clauses {
			for _, s := range c.Stickers {
				switch s {
				case "Eternal", "Perishable":
					if !stake.AllowsEternalPerishable() {
						warnings = append(warnings, fmt.Sprintf(
							"clause %s/%s requests sticker %q below stake Black; it can never match", c.Type, c.Value, s))
					}
				case "Rental":
					if !stake.AllowsRental() {
						warnings = append(warnings, fmt.Sprintf(
							"clause %s/%s requests sticker %q below stake Gold; it can never match", c.Type, c.Value, s))
					}
				}
			}
		}
	}
	check(doc.Must)
	check(doc.MustNot)
	check(doc.Should)
	return warnings
}
