package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"webresearch/agent"
	"webresearch/researcher"
)

var flagSources int

var researchCmd = &cobra.Command{
	Use:   "research <topic>",
	Short: "Research a topic and print a report",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		a := agent.New(cfg)
		topic := strings.Join(args, " ")
		record := a.Research(cmd.Context(), topic, flagSources)

		if record.Status == researcher.StatusError {
			return fmt.Errorf("research failed: %s", record.Error)
		}

		if flagJSON {
			return json.NewEncoder(os.Stdout).Encode(record)
		}
		fmt.Println(a.Report())
		return nil
	},
}

func init() {
	researchCmd.Flags().IntVar(&flagSources, "sources", 5, "number of sources to fetch")
}
