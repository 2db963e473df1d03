package wtlaunch

import (
	"github.com/arthur-debert/wtlaunch/pkg/commands"
	"github.com/arthur-debert/wtlaunch/pkg/errors"
	"github.com/arthur-debert/wtlaunch/pkg/launcher"
	"github.com/arthur-debert/wtlaunch/pkg/output"
	"github.com/arthur-debert/wtlaunch/pkg/wait"
	"github.com/spf13/cobra"
)

func usageError(msg string) error {
	return errors.New(errors.ErrInvalidInput, msg)
}

func (a *app) runLaunch(cmd *cobra.Command, hasDirectory bool) error {
	waiter := wait.New(a.cfg.Launch.ReadyInterval, a.cfg.Launch.ReadyTimeout)
	waiter.Clock = a.opts.Clock

	var profile string
	if len(a.flags.profiles) == 1 {
		profile = a.flags.profiles[0]
	}

	res, err := commands.Launch(cmd.Context(), commands.LaunchOptions{
		Source:       a.source(),
		Directory:    a.flags.directory,
		HasDirectory: hasDirectory,
		Profile:      profile,
		Restore:      a.cfg.Launch.Restore,
		Launcher: launcher.New(launcher.Options{
			FS:         a.opts.FS,
			Executable: a.cfg.Launch.Executable,
			Spawner:    a.opts.Spawner,
			Probe:      a.opts.Probe,
			Waiter:     waiter,
			Getwd:      a.opts.Getwd,
		}),
	})

	stderr := newPrinter(cmd.ErrOrStderr(), output.FormatAuto)
	if res != nil {
		if res.Recovered {
			stderr.Warning(MsgRecovered)
		}
		for _, w := range res.Warnings {
			stderr.Warning("%s", w.Error())
		}
	}
	if err != nil {
		return err
	}

	if a.flags.verbosity > 0 {
		newPrinter(cmd.OutOrStdout(), output.FormatAuto).Success(MsgLaunched, res.Directory)
	}
	return nil
}

func (a *app) runInstall(cmd *cobra.Command) error {
	store, err := a.opts.Store()
	if err != nil {
		return err
	}
	exe, err := a.opts.Executable()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, MsgErrExecutable)
	}

	res, err := commands.Install(cmd.Context(), commands.InstallOptions{
		Source:     a.source(),
		Store:      store,
		Executable: exe,
		Format:     a.flags.format,
		Profiles:   a.flags.profiles,
	})
	if err != nil {
		return err
	}

	out := newPrinter(cmd.OutOrStdout(), output.FormatAuto)
	profiles := make(map[string]bool)
	for _, e := range res.Created {
		profiles[e.ProfileID] = true
	}
	out.Success(MsgInstalled, len(res.Created), len(profiles))
	for _, e := range res.Skipped {
		out.Warning(MsgInstallSkipped, e.Path())
	}
	return nil
}

func (a *app) runUninstall(cmd *cobra.Command) error {
	store, err := a.opts.Store()
	if err != nil {
		return err
	}

	res, err := commands.Uninstall(cmd.Context(), commands.UninstallOptions{
		Source: a.source(),
		Store:  store,
	})
	if err != nil {
		return err
	}

	newPrinter(cmd.OutOrStdout(), output.FormatAuto).Success(MsgUninstalled, len(res.Removed))
	return nil
}

// profileCompletion offers profile names for --profile
func (a *app) profileCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if a.cfg == nil {
		if err := cmd.Root().PersistentPreRunE(cmd, args); err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
	}
	res, err := commands.ListProfiles(commands.ProfilesOptions{Source: a.source()})
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	names := make([]string, 0, len(res.Profiles))
	for _, p := range res.Profiles {
		names = append(names, p.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
