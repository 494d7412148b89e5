package main

import (
	"io"

	"medicore-ai/pkg/router"

	"github.com/spf13/cobra"
)

// forecastCmd HTTPサーバーを起動せずに予測結果をJSONで出力する
func forecastCmd(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Print a forecast as JSON without starting the server",
	}

	loadServices := func() (*router.Services, int, string, error) {
		cfg, log, catalog, err := bootstrap()
		if err != nil {
			return nil, 0, "", err
		}
		svc := router.NewServices(router.Options{Config: cfg, Catalog: catalog, Logger: log})
		return svc, cfg.DefaultForecastDays, cfg.DefaultRegion, nil
	}

	diseaseCmd := &cobra.Command{
		Use:   "disease",
		Short: "Disease trend forecast",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, defaultDays, defaultRegion, err := loadServices()
			if err != nil {
				return err
			}
			days, _ := cmd.Flags().GetInt("days")
			if !cmd.Flags().Changed("days") {
				days = defaultDays
			}
			region, _ := cmd.Flags().GetString("region")
			if !cmd.Flags().Changed("region") {
				region = defaultRegion
			}

			resp, err := svc.Disease.Predict(region, days)
			if err != nil {
				return err
			}
			return writeJSON(out, resp)
		},
	}
	diseaseCmd.Flags().String("region", "", "Region name (defaults to DEFAULT_REGION)")
	diseaseCmd.Flags().Int("days", 0, "Forecast horizon in days (defaults to DEFAULT_FORECAST_DAYS)")
	cmd.AddCommand(diseaseCmd)

	inventoryCmd := &cobra.Command{
		Use:   "inventory",
		Short: "Medicine inventory forecast",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, defaultDays, _, err := loadServices()
			if err != nil {
				return err
			}
			days, _ := cmd.Flags().GetInt("days")
			if !cmd.Flags().Changed("days") {
				days = defaultDays
			}

			resp, err := svc.Inventory.Forecast(nil, days)
			if err != nil {
				return err
			}
			return writeJSON(out, resp)
		},
	}
	inventoryCmd.Flags().Int("days", 0, "Forecast horizon in days (defaults to DEFAULT_FORECAST_DAYS)")
	cmd.AddCommand(inventoryCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "restock",
		Short: "Restock recommendations",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, _, err := loadServices()
			if err != nil {
				return err
			}
			return writeJSON(out, svc.Restock.Recommendations())
		},
	})

	return cmd
}
