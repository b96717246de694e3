package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

var root = &cobra.Command{
	Use:   "aliasgc",
	Short: "removes Route 53 alias records left behind by deleted load balancers",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func Execute() {
	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a TOML configuration file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
