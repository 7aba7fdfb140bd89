package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"secure-app-server/core/certs"
	"secure-app-server/core/config"

	"github.com/spf13/cobra"
)

// certsCmd groups the credential commands
var certsCmd = &cobra.Command{
	Use:   "certs",
	Short: "Inspect the configured TLS credential",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// inspectCmd represents the certs inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Load the configured certificate chain and key and print the chain",
	Long:  `Loads TLS_CERT and TLS_KEY exactly as start does and prints every certificate in the chain. Outputs a table by default or JSON with --json flag.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configDir)
		if err != nil {
			return err
		}

		cred, err := certs.Load(cfg.TLS.Cert, cfg.TLS.Key)
		if err != nil {
			return err
		}

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			return writeChainJSON(cmd.OutOrStdout(), cred.Describe())
		}
		writeChainText(cmd.OutOrStdout(), cred.Describe(), time.Now())
		return nil
	},
}

func writeChainJSON(w io.Writer, chain []certs.CertificateInfo) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(chain)
}

func writeChainText(w io.Writer, chain []certs.CertificateInfo, now time.Time) {
	for _, info := range chain {
		status := "valid"
		if !info.ValidAt(now) {
			status = "NOT VALID"
		}
		fmt.Fprintf(w, "[%d] %s\n", info.Position, info.Subject)
		fmt.Fprintf(w, "    issuer:   %s\n", info.Issuer)
		fmt.Fprintf(w, "    serial:   %s\n", info.Serial)
		fmt.Fprintf(w, "    validity: %s to %s (%s)\n",
			info.NotBefore.UTC().Format(time.RFC3339), info.NotAfter.UTC().Format(time.RFC3339), status)
		if len(info.DNSNames) > 0 {
			fmt.Fprintf(w, "    dns:      %s\n", strings.Join(info.DNSNames, ", "))
		}
		if info.IsCA {
			fmt.Fprintf(w, "    ca:       true\n")
		}
	}
}

func init() {
	inspectCmd.Flags().Bool("json", false, "Output as JSON")
	certsCmd.AddCommand(inspectCmd)
	RootCmd.AddCommand(certsCmd)
}
