package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bloomshop/internal/gateway"
)

var (
	signinPassword string
	signupPassword string
	signupConfirm  string
	signupName     string

	profileName     string
	profileEmail    string
	currentPassword string
	newPassword     string
	deleteConfirmed bool
)

var signinCmd = &cobra.Command{
	Use:   "signin <email>",
	Short: "Sign in and hydrate cart and wishlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		session, err := st.SignIn(cmd.Context(), args[0], signinPassword)
		if err != nil {
			return err
		}
		fmt.Printf("%s signed in as %s (%s)\n", okStyle.Render("✓"), session.UserName, session.Email)
		fmt.Println(faintStyle.Render(fmt.Sprintf("cart: %d items, wishlist: %d items", st.CartItemCount(), st.WishlistCount())))
		return nil
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup <email>",
	Short: "Create an account and sign in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		session, err := st.SignUp(cmd.Context(), gateway.SignUpInput{
			UserName:        signupName,
			Email:           args[0],
			Password:        signupPassword,
			ConfirmPassword: signupConfirm,
		})
		if err != nil {
			return err
		}
		fmt.Printf("%s account created for %s\n", okStyle.Render("✓"), session.Email)
		return nil
	},
}

var signoutCmd = &cobra.Command{
	Use:   "signout",
	Short: "Sign out and drop the local session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		st.SignOut()
		fmt.Println(okStyle.Render("✓") + " signed out")
		return nil
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show and manage the signed-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		session := st.Session()
		if session == nil {
			return fmt.Errorf("not signed in")
		}
		fmt.Println(titleStyle.Render(session.UserName))
		fmt.Printf("email: %s\n", session.Email)
		if len(session.Settings) > 0 {
			for k, v := range session.Settings {
				fmt.Println(faintStyle.Render(fmt.Sprintf("%s: %v", k, v)))
			}
		}
		return nil
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update name or email",
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := map[string]interface{}{}
		if profileName != "" {
			fields["userName"] = profileName
		}
		if profileEmail != "" {
			fields["email"] = profileEmail
		}
		if len(fields) == 0 {
			return fmt.Errorf("nothing to update, pass --name or --email")
		}

		st, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		session, err := st.UpdateProfile(cmd.Context(), fields)
		if err != nil {
			return err
		}
		fmt.Printf("%s profile updated: %s (%s)\n", okStyle.Render("✓"), session.UserName, session.Email)
		return nil
	},
}

var profilePasswordCmd = &cobra.Command{
	Use:   "password",
	Short: "Change the account password",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		if err := st.ChangePassword(cmd.Context(), currentPassword, newPassword); err != nil {
			return err
		}
		fmt.Println(okStyle.Render("✓") + " password changed")
		return nil
	},
}

var profileExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump the account's server-side data as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		data, err := st.ExportData(cmd.Context())
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	},
}

var profileStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show order count and lifetime spend",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		stats, err := st.Stats(cmd.Context())
		if err != nil {
			return err
		}
		for k, v := range stats {
			fmt.Printf("%s: %v\n", k, v)
		}
		return nil
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the account and its server-side data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !deleteConfirmed {
			return fmt.Errorf("deleting an account is permanent, re-run with --yes")
		}

		st, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		if err := st.DeleteAccount(cmd.Context()); err != nil {
			return err
		}
		fmt.Println(okStyle.Render("✓") + " account deleted")
		return nil
	},
}

func init() {
	signinCmd.Flags().StringVarP(&signinPassword, "password", "p", "", "account password")
	signinCmd.MarkFlagRequired("password")

	signupCmd.Flags().StringVarP(&signupName, "name", "n", "", "display name")
	signupCmd.Flags().StringVarP(&signupPassword, "password", "p", "", "account password")
	signupCmd.Flags().StringVar(&signupConfirm, "confirm", "", "repeat the password")
	signupCmd.MarkFlagRequired("name")
	signupCmd.MarkFlagRequired("password")
	signupCmd.MarkFlagRequired("confirm")

	profileUpdateCmd.Flags().StringVar(&profileName, "name", "", "new display name")
	profileUpdateCmd.Flags().StringVar(&profileEmail, "email", "", "new email")

	profilePasswordCmd.Flags().StringVar(&currentPassword, "current", "", "current password")
	profilePasswordCmd.Flags().StringVar(&newPassword, "new", "", "new password")
	profilePasswordCmd.MarkFlagRequired("current")
	profilePasswordCmd.MarkFlagRequired("new")

	profileDeleteCmd.Flags().BoolVar(&deleteConfirmed, "yes", false, "confirm deletion")

	profileCmd.AddCommand(profileUpdateCmd, profilePasswordCmd, profileExportCmd, profileStatsCmd, profileDeleteCmd)
	rootCmd.AddCommand(signinCmd, signupCmd, signoutCmd, profileCmd)
}
