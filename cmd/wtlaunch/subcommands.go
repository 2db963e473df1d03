package wtlaunch

import (
	"fmt"
	"strconv"

	"github.com/arthur-debert/wtlaunch/internal/version"
	"github.com/arthur-debert/wtlaunch/pkg/commands"
	"github.com/arthur-debert/wtlaunch/pkg/output"
	"github.com/spf13/cobra"
)

func (a *app) newProfilesCmd() *cobra.Command {
	var outputFlag string
	var all bool

	cmd := &cobra.Command{
		Use:     "profiles",
		Aliases: []string{"ls"},
		Short:   MsgProfilesShort,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.ParseFormat(outputFlag)
			if err != nil {
				return err
			}

			res, err := commands.ListProfiles(commands.ProfilesOptions{
				Source: a.source(),
				All:    all,
			})
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout(), format)
			if p.Machine() {
				return p.Data(res)
			}
			if len(res.Profiles) == 0 {
				p.Println(MsgNoProfiles)
				return nil
			}

			rows := make([][]string, 0, len(res.Profiles))
			for _, prof := range res.Profiles {
				name := prof.Name
				if prof.Default {
					name = p.Style("Heading", name+" *")
				}
				if prof.Hidden {
					name = p.Style("Muted", name)
				}
				rows = append(rows, []string{name, prof.ID})
			}
			p.Table([]string{"Profile", "ID"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "table", MsgFlagOutput)
	cmd.Flags().BoolVarP(&all, "all", "a", false, MsgFlagAll)
	_ = cmd.RegisterFlagCompletionFunc("output", outputCompletion)
	return cmd
}

func (a *app) newStatusCmd() *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "status",
		Short: MsgStatusShort,
		Long:  MsgStatusLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.ParseFormat(outputFlag)
			if err != nil {
				return err
			}

			opts := commands.StatusOptions{Source: a.source()}
			store, storeErr := a.opts.Store()
			if storeErr == nil {
				opts.Store = store
			}

			res, err := commands.Status(opts)
			if err != nil {
				return err
			}
			if storeErr != nil && res.ShortcutsError == "" {
				res.ShortcutsError = storeErr.Error()
			}

			p := newPrinter(cmd.OutOrStdout(), format)
			if p.Machine() {
				return p.Data(res)
			}

			p.Table([]string{"Setting", "Value"}, [][]string{
				{"Settings file", res.SettingsPath},
				{"Package", res.PackageDir},
				{"Backup present", strconv.FormatBool(res.BackupExists)},
				{"Change in progress", strconv.FormatBool(res.InFlight)},
				{"Default profile", res.DefaultProfile},
			})

			switch {
			case res.ShortcutsError != "":
				p.Warning(MsgShortcutsMissing, res.ShortcutsError)
			case len(res.Shortcuts) == 0:
				p.Println(MsgNoShortcuts)
			default:
				rows := make([][]string, 0, len(res.Shortcuts))
				for _, e := range res.Shortcuts {
					rows = append(rows, []string{e.Path(), e.ProfileID, e.Command})
				}
				p.Table([]string{"Shortcut", "Profile", "Command"}, rows)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "table", MsgFlagOutput)
	_ = cmd.RegisterFlagCompletionFunc("output", outputCompletion)
	return cmd
}

func (a *app) newGenConfigCmd() *cobra.Command {
	var write, force bool
	var path string

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := commands.GenConfig(commands.GenConfigOptions{
				Config:     a.cfg,
				Write:      write,
				Path:       path,
				Force:      force,
				FileSystem: a.opts.FS,
			})
			if err != nil {
				return err
			}

			if res.Written {
				newPrinter(cmd.ErrOrStderr(), output.FormatAuto).Success(MsgConfigWritten, res.Path)
				return nil
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), res.Content)
			return err
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().StringVar(&path, "path", "", MsgFlagPath)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		// Completion scripts must work without a valid configuration
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func outputCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"table", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
}
