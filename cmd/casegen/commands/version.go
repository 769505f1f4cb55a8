package commands

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Build information, set with -ldflags "-X".
var (
	Version = "dev"
	Commit  = "unknown"
)

// VersionCmd prints build information.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show casegen version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := struct {
			Version   string `json:"version"`
			Commit    string `json:"commit"`
			GoVersion string `json:"goVersion"`
			Platform  string `json:"platform"`
		}{Version, Commit, runtime.Version(), runtime.GOOS + "/" + runtime.GOARCH}

		w := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(w, string(out))
			return nil
		}
		fmt.Fprintf(w, "casegen %s (%s)\n", info.Version, info.Commit)
		fmt.Fprintf(w, "Platform: %s\n", info.Platform)
		fmt.Fprintf(w, "Go: %s\n", info.GoVersion)
		return nil
	},
}

func init() {
	VersionCmd.Flags().BoolP("json", "j", false, "Output version info as JSON")
}
