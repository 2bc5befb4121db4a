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
	contactsCompany  string
	contactsIndustry string
	contactsDomain   string
	contactsJSON     bool
)

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Find decision-maker contacts at a company",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := discovery.New(cfg)
		if err != nil {
			return err
		}
		defer engine.Close()

		company := model.CompanyCandidate{
			Name:     contactsCompany,
			Industry: contactsIndustry,
			Domain:   contactsDomain,
		}

		payload := engine.Contacts(cmd.Context(), company)

		if contactsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(payload)
		}

		fmt.Printf("Contacts at %s:\n\n", payload.Company)
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tTITLE\tEMAIL\tSOURCE")
		for _, c := range payload.Contacts {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Name, c.Title, c.Email, c.Provenance)
		}
		w.Flush()
		return nil
	},
}

func init() {
	contactsCmd.Flags().StringVar(&contactsCompany, "company", "", "company name (required)")
	contactsCmd.Flags().StringVar(&contactsIndustry, "industry", "", "company industry")
	contactsCmd.Flags().StringVar(&contactsDomain, "domain", "", "company website domain")
	contactsCmd.Flags().BoolVar(&contactsJSON, "json", false, "print the payload as JSON")
	_ = contactsCmd.MarkFlagRequired("company")
	rootCmd.AddCommand(contactsCmd)
}
