package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sells-group/prospect-cli/internal/discovery"
	"github.com/sells-group/prospect-cli/internal/model"
)

var (
	discoverProduct     string
	discoverIndustry    string
	discoverDescription string
	discoverJSON        bool
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Find companies likely to buy a product",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := discovery.New(cfg)
		if err != nil {
			return err
		}
		defer engine.Close()

		profile := model.ProductProfile{
			ProductName: discoverProduct,
			Industry:    discoverIndustry,
			Description: discoverDescription,
		}

		set, err := engine.Discover(cmd.Context(), profile, "cli")
		if err != nil {
			return err
		}

		if discoverJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(set)
		}

		printCandidates(set)
		return nil
	},
}

func printCandidates(set model.ResultSet) {
	fmt.Printf("Search %s: %d companies (%s)\n\n", set.ID, len(set.Companies), set.Profile.Classification)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCORE\tNAME\tINDUSTRY\tDOMAIN\tSOURCE")
	for _, c := range set.Companies {
		intent := ""
		if c.BuyerIntent {
			intent = " *"
		}
		fmt.Fprintf(w, "%d%s\t%s\t%s\t%s\t%s\n",
			c.RelevanceScore, intent, c.Name, c.Industry, c.Domain, c.Provenance)
	}
	w.Flush()
	fmt.Println("\n* buyer-intent signal")
}

func init() {
	discoverCmd.Flags().StringVar(&discoverProduct, "product", "", "product name (required)")
	discoverCmd.Flags().StringVar(&discoverIndustry, "industry", "", "target industry hint")
	discoverCmd.Flags().StringVar(&discoverDescription, "description", "", "product description (required)")
	discoverCmd.Flags().BoolVar(&discoverJSON, "json", false, "print the full result set as JSON")
	_ = discoverCmd.MarkFlagRequired("product")
	_ = discoverCmd.MarkFlagRequired("description")
	rootCmd.AddCommand(discoverCmd)
}
