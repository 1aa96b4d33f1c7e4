package main

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	result := deps.Runner.Run(deps.Ctx, c.URL, c.Cards)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))

	if result.Error != "" {
		return errors.New(result.Error)
	}
	return nil
}
