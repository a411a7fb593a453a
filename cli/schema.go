package cli

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"

	"go.viam.com/jcs/config"
)

// SchemaAction prints the JSON schema of the config file.
func SchemaAction(c *cli.Context) error {
	b, err := json.MarshalIndent(config.Schema(), "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, string(b))
	return err
}
