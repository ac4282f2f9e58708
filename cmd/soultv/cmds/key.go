package cmds

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/guide"
)

var (
	keySecret string
	keyValue  string
)

func NewKeyCLI() *cobra.Command {
	keyCmd := &cobra.Command{
		Use:   "key",
		Short: "Encrypt a credential value for use in the config file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			secret := keySecret
			if secret == "" {
				secret = conf.Key
			}
			if secret == "" {
				return errors.New("no key given and none configured")
			}

			crypto := guide.NewTripleDESCrypto(secret)
			encrypted, err := crypto.ECBEncrypt(keyValue)
			if err != nil {
				return err
			}

			fmt.Println(encrypted)
			return nil
		},
	}

	keyCmd.Flags().StringVarP(&keySecret, "key", "k", "", "encryption key, defaults to the configured one")
	keyCmd.Flags().StringVarP(&keyValue, "value", "v", "", "credential value to encrypt")

	_ = keyCmd.MarkFlagRequired("value")

	return keyCmd
}
