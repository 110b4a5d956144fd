package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ihbirlik/geocoord-pro/internal/pkg/constants"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/utils"
)

var tokenTTL time.Duration

var adminTokenCmd = &cobra.Command{
	Use:   "admin-token",
	Short: "Print a token for the admin endpoints",
	RunE: func(cmd *cobra.Command, args []string) error {
		secret := viper.GetString(constants.ViperSecretKey)
		if secret == "" {
			return fmt.Errorf("%s is not set", constants.ViperSecretKey)
		}

		wrapper := &utils.AuthTokenWrapper{Secret: secret}
		if tokenTTL > 0 {
			wrapper.ExpiresAt = time.Now().Add(tokenTTL).Unix()
		}

		token, err := utils.GenerateAuthToken(wrapper)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
		return err
	},
}

func init() {
	adminTokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "token lifetime (default 24h)")
}
