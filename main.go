package main

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/quantfetch/ashare-hist/src/run"
	"github.com/quantfetch/ashare-hist/src/services"
	"github.com/quantfetch/ashare-hist/src/utils"
)

var validAdjustValues = []string{"qfq", "hfq", "none"}

var runCmd = &cobra.Command{
	Use:   "go run main.go --code 600519 --adjust qfq",
	Short: "Fetch the full daily history of one A-share stock and save it as CSV",
	Run: func(cmd *cobra.Command, args []string) {
		code, err := cmd.Flags().GetString("code")
		if err != nil {
			log.Fatalf("error getting code: %v", err)
		}

		adjust, err := cmd.Flags().GetString("adjust")
		if err != nil {
			log.Fatalf("error getting adjust: %v", err)
		}

		if !isValidAdjust(adjust) {
			log.Fatalf("invalid --adjust value %q: must be one of %v", adjust, validAdjustValues)
		}

		if err := utils.InitEnvironmentVariables(); err != nil {
			log.Fatalf("error loading environment variables: %v", err)
		}

		result, err := run.Run(run.RunArgs{
			Symbol: code,
			Adjust: adjust,
		})

		if err != nil {
			if errors.Is(err, services.ErrNoData) {
				fmt.Printf("Error: no data returned for stock %s, check that the code is correct.\n", code)
				return
			}
			log.Errorf("Error: %v", err)
			return
		}

		log.Infof("Done: %d rows written to %s", result.RowCount, result.OutputPath)
	},
}

func isValidAdjust(adjust string) bool {
	for _, v := range validAdjustValues {
		if adjust == v {
			return true
		}
	}
	return false
}

func main() {
	runCmd.PersistentFlags().String("code", "", "The stock code, e.g. 600519.")
	runCmd.PersistentFlags().String("adjust", "qfq", "The price adjustment: qfq (forward, default), hfq (backward) or none.")

	runCmd.MarkPersistentFlagRequired("code")

	runCmd.Execute()
}
