package cli

import (
	"fmt"
	"strings"

	"github.com/fuse-labs/fuse/internal/config"
	"github.com/fuse-labs/fuse/internal/ideas"
	"github.com/spf13/cobra"
)

var ideaList bool

func init() {
	ideaCmd.Flags().BoolVar(&ideaList, "list", false, "Print recorded ideas instead of adding one")
	rootCmd.AddCommand(ideaCmd)
}

var ideaCmd = &cobra.Command{
	Use:   "idea [text...]",
	Short: "Record a project idea for later",
	Long: `Append a free-text project idea to the per-user idea file
(~/.fuse_ideas.json), or print the recorded list with --list.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		log, closeLog, err := newRunLogger()
		if err != nil {
			return err
		}
		defer closeLog()

		if ideaList {
			list, err := ideas.Load(log)
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Println("No ideas recorded yet.")
				return nil
			}
			for i, idea := range list {
				fmt.Printf("%3d. %s\n", i+1, idea)
			}
			return nil
		}

		text := strings.TrimSpace(strings.Join(args, " "))
		if text == "" {
			return fmt.Errorf("nothing to record: pass the idea text or use --list")
		}
		if err := ideas.Save(log, text); err != nil {
			return err
		}
		fmt.Printf("Recorded: %s\n", text)
		return nil
	},
}
