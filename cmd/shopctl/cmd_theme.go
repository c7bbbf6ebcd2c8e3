package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark]",
	Short: "Show or set the UI theme",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		if len(args) == 0 {
			theme, err := st.Theme()
			if err != nil {
				return err
			}
			if theme == "" {
				theme = "light"
			}
			fmt.Println(theme)
			return nil
		}

		theme := args[0]
		if theme != "light" && theme != "dark" {
			return fmt.Errorf("unknown theme %q, use light or dark", theme)
		}
		if err := st.SetTheme(theme); err != nil {
			return err
		}
		fmt.Printf("%s theme set to %s\n", okStyle.Render("✓"), theme)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
