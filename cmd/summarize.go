package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"webresearch/agent"
	"webresearch/researcher"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <url>...",
	Short: "Summarize one or more URLs",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		a := agent.New(cfg)
		result := a.Summarize(cmd.Context(), args)

		if flagJSON {
			return json.NewEncoder(os.Stdout).Encode(result)
		}

		for _, url := range args {
			finding := result.Summaries[url]
			fmt.Printf("## %s\n\n", url)
			if finding.Status == researcher.StatusSuccess {
				fmt.Printf("%s\n\n", finding.Summary)
			} else {
				fmt.Printf("error: %s\n\n", finding.Error)
			}
		}
		return nil
	},
}
