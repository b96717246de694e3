package cmd

import (
	"aliasgc/pkg/cloud/awscloud"
	"aliasgc/pkg/configuration"
	"aliasgc/pkg/dns"
	"aliasgc/pkg/reconcile"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var region string

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "delete alias A records whose target is not an active load balancer",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := configuration.New(configPath)
		if err != nil {
			log.Fatal(err)
		}

		if region != "" {
			cfg.AWS = &configuration.AWS{Region: region}
		}

		inventory, err := awscloud.New(cfg)
		if err != nil {
			log.Fatal(err)
		}

		zones, err := dns.NewZoneService()
		if err != nil {
			log.Fatal(err)
		}

		var hookCommand string
		if cfg.DNS != nil {
			hookCommand = cfg.DNS.DeleteHook
		}

		hook, err := dns.NewCommandHook(hookCommand)
		if err != nil {
			log.Fatal(err)
		}

		r := reconcile.New(inventory, zones, hook)
		if err := r.Run(); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	reconcileCmd.Flags().StringVar(&region, "region", "", "AWS region for the load balancer inventory (defaults to config, then "+configuration.DefaultRegion+")")
	root.AddCommand(reconcileCmd)
}
