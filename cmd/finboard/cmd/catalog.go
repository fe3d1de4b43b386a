package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finboard/finboard/catalog"
	"github.com/finboard/finboard/config"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the resolved instrument catalog",
	RunE:  runCatalog,
}

var catalogConfigPath string

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().StringVarP(&catalogConfigPath, "config", "f", "", "path to config file (YAML)")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cat := catalog.Default()
	if catalogConfigPath != "" {
		cfg, err := config.Load(catalogConfigPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cat, err = resolveCatalog(cfg)
		if err != nil {
			return err
		}
	}

	for _, g := range cat.Groups {
		fmt.Printf("%s (%d instruments)\n", g.Name, len(g.Instruments))
		for _, inst := range g.Instruments {
			fmt.Printf("  %-22s %s\n", inst.Name, inst.Symbol)
		}
	}
	return nil
}
