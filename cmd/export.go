package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/sells-group/prospect-cli/internal/discovery"
	"github.com/sells-group/prospect-cli/internal/model"
)

var (
	exportProduct     string
	exportIndustry    string
	exportDescription string
	exportOut         string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Run discovery and write the result set to an .xlsx workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := discovery.New(cfg)
		if err != nil {
			return err
		}
		defer engine.Close()

		profile := model.ProductProfile{
			ProductName: exportProduct,
			Industry:    exportIndustry,
			Description: exportDescription,
		}

		set, err := engine.Discover(cmd.Context(), profile, "cli")
		if err != nil {
			return err
		}

		if err := writeWorkbook(set, exportOut); err != nil {
			return err
		}

		zap.L().Info("exported result set",
			zap.String("search_id", set.ID),
			zap.Int("companies", len(set.Companies)),
			zap.String("file", exportOut),
		)
		fmt.Printf("Wrote %d companies to %s\n", len(set.Companies), exportOut)
		return nil
	},
}

func writeWorkbook(set model.ResultSet, path string) error {
	wb := xlsx.NewFile()
	sheet, err := wb.AddSheet("Companies")
	if err != nil {
		return err
	}

	header := sheet.AddRow()
	for _, label := range []string{"Name", "Industry", "Score", "Buyer Intent", "Domain", "Provenance", "Sources", "Description"} {
		header.AddCell().SetString(label)
	}

	for _, c := range set.Companies {
		row := sheet.AddRow()
		row.AddCell().SetString(c.Name)
		row.AddCell().SetString(c.Industry)
		row.AddCell().SetInt(c.RelevanceScore)
		row.AddCell().SetBool(c.BuyerIntent)
		row.AddCell().SetString(c.Domain)
		row.AddCell().SetString(string(c.Provenance))
		row.AddCell().SetInt(c.AggregatedFrom)
		row.AddCell().SetString(c.Description)
	}

	return wb.Save(path)
}

func init() {
	exportCmd.Flags().StringVar(&exportProduct, "product", "", "product name (required)")
	exportCmd.Flags().StringVar(&exportIndustry, "industry", "", "target industry hint")
	exportCmd.Flags().StringVar(&exportDescription, "description", "", "product description (required)")
	exportCmd.Flags().StringVar(&exportOut, "out", "prospects.xlsx", "output file path")
	_ = exportCmd.MarkFlagRequired("product")
	_ = exportCmd.MarkFlagRequired("description")
	rootCmd.AddCommand(exportCmd)
}
