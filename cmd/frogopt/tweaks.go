package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/frogtech/optimizer/pkg/optimizer/output"
	"github.com/frogtech/optimizer/pkg/optimizer/tweak"
)

var tweaksCategory string

var tweaksCmd = &cobra.Command{
	Use:   "tweaks",
	Short: "List the tweak catalogue",
	Long: `List every available tweak grouped by category, with its risk level
and whether it has already been applied on this machine.`,
	RunE: runTweaks,
}

func init() {
	tweaksCmd.Flags().StringVarP(&tweaksCategory, "category", "c", "", "only show one category")
	rootCmd.AddCommand(tweaksCmd)
}

// tweakView is the JSON shape for one catalogue entry.
type tweakView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Risk        string `json:"risk"`
	Reversible  bool   `json:"reversible"`
	NeedsAdmin  bool   `json:"needs_admin"`
	Applied     bool   `json:"applied"`
}

func runTweaks(cmd *cobra.Command, args []string) error {
	led, err := openLedger()
	if err != nil {
		return err
	}

	reg := tweak.Default()
	tweaks := reg.All()
	if tweaksCategory != "" {
		tweaks = reg.ByCategory(tweaksCategory)
	}

	if jsonOutput() {
		views := make([]tweakView, 0, len(tweaks))
		for _, t := range tweaks {
			views = append(views, tweakView{
				ID:          t.ID,
				Name:        t.Name,
				Description: t.Description,
				Category:    t.Category,
				Risk:        string(t.Risk),
				Reversible:  t.Reversible,
				NeedsAdmin:  t.NeedsAdmin,
				Applied:     led.IsApplied(t.ID),
			})
		}
		return output.JSON(os.Stdout, views)
	}

	if tweaksCategory != "" {
		sub := tweak.NewRegistry(tweaks)
		output.RenderTweakList(os.Stdout, sub, led.IsApplied)
		return nil
	}

	output.RenderTweakList(os.Stdout, reg, led.IsApplied)
	return nil
}
