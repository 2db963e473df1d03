package transaction

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"time"

	"github.com/arthur-debert/wtlaunch/pkg/errors"
	"github.com/arthur-debert/wtlaunch/pkg/logging"
	"github.com/arthur-debert/wtlaunch/pkg/terminalconfig"
	"github.com/arthur-debert/wtlaunch/pkg/types"
	"github.com/arthur-debert/wtlaunch/pkg/wait"
	"github.com/rs/zerolog"
)

const filePerm = 0644

// Action runs inside a transaction
type Action func(s *Session) error

// Transaction guards one settings file
type Transaction struct {
	FS   types.FS
	Path string

	// Waiter bounds the wait for another holder's marker to clear
	Waiter *wait.Waiter

	// StaleAfter is the age after which a marker left in the file (with or
	// without a backup) is considered abandoned by a crashed run
	StaleAfter time.Duration

	// Clock is used to age backups; defaults to the Waiter's clock
	Clock wait.Clock

	// Watch wakes the conflict wait on file changes instead of only polling
	Watch bool
}

// Result describes a finished transaction
type Result struct {
	// Recovered is set when a backup from an interrupted run was restored
	Recovered bool
	// Waited is set when another holder's marker had to be waited out
	Waited bool
	// Committed is set when the action made its changes persistent
	Committed bool
	// ActionErr is the action's failure, reported after cleanup
	ActionErr error
}

// BackupPath returns the recovery copy path for the settings file
func (t *Transaction) BackupPath() string {
	return t.Path + ".bak"
}

// Run executes action inside the transaction. The returned error covers the
// phases around the action: before the backup is written nothing has been
// changed; a cleanup error leaves the backup in place for the next run to
// recover. Failures of the action itself are in Result.ActionErr.
func (t *Transaction) Run(ctx context.Context, action Action) (Result, error) {
	log := logging.GetLogger("transaction").With().Str("path", t.Path).Logger()
	defer logging.LogOperationStart(log, "transaction")()

	var res Result

	recovered, err := t.recover(log)
	if err != nil {
		return res, err
	}
	res.Recovered = recovered

	raw, cfg, err := t.acquire(ctx, log, &res)
	if err != nil {
		return res, err
	}

	if err := t.FS.WriteFile(t.BackupPath(), raw, filePerm); err != nil {
		_ = t.FS.Remove(t.BackupPath())
		return res, errors.Wrap(err, errors.ErrFileAccess, "failed to write settings backup")
	}
	flagged, err := cfg.MarshalInFlight()
	if err == nil {
		err = t.FS.WriteFile(t.Path, flagged, filePerm)
	}
	if err != nil {
		t.abandon(log, raw)
		return res, errors.Wrap(err, errors.ErrFileAccess, "failed to mark settings in use")
	}
	log.Debug().Msg("Settings backed up and marked in use")

	session := &Session{Config: cfg, Path: t.Path, tx: t}
	res.ActionErr = invoke(action, session)
	if res.ActionErr != nil {
		log.Warn().Err(res.ActionErr).Msg("Action failed, reverting settings")
	}

	res.Committed = session.committed != nil
	if err := t.finish(raw, session); err != nil {
		return res, err
	}
	log.Debug().Bool("committed", res.Committed).Msg("Transaction finished")
	return res, nil
}

// acquire reads and parses the settings once no other holder has the marker
// set. It returns the bytes to restore at the end of the transaction.
func (t *Transaction) acquire(ctx context.Context, log zerolog.Logger, res *Result) ([]byte, *terminalconfig.Configuration, error) {
	var raw []byte
	var cfg *terminalconfig.Configuration

	read := func() (bool, error) {
		b, err := t.FS.ReadFile(t.Path)
		if err != nil {
			return false, errors.Wrap(err, errors.ErrFileAccess, "failed to read settings")
		}
		c, err := terminalconfig.Parse(b)
		if err != nil {
			return false, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", t.Path)
		}
		raw, cfg = b, c
		if !c.InFlight() {
			// recover leaves only a finishing holder's backup behind
			_, err := t.FS.Stat(t.BackupPath())
			return err != nil, nil
		}
		return t.clearStaleMarker(log, &raw, &cfg)
	}

	free, err := read()
	if err != nil {
		return nil, nil, err
	}
	if free {
		return raw, cfg, nil
	}

	res.Waited = true
	log.Info().Msg("Settings are in use by another run, waiting")

	waiter := t.waiter()
	if t.Watch {
		if trigger, err := wait.WatchFile(t.Path); err == nil {
			defer func() { _ = trigger.Close() }()
			waiter = waiter.WithTrigger(trigger.C)
		} else {
			log.Debug().Err(err).Msg("Cannot watch settings, polling only")
		}
	}

	err = waiter.Until(ctx, func() (bool, error) {
		// a crashed holder never clears its marker; its backup goes stale
		recovered, err := t.recover(log)
		if err != nil {
			return false, err
		}
		if recovered {
			res.Recovered = true
		}
		return read()
	})
	if stderrors.Is(err, wait.ErrTimeout) {
		return nil, nil, errors.Newf(errors.ErrConfigConflict,
			"settings are still in use by another run after %s", waiter.Timeout)
	}
	if err != nil {
		return nil, nil, err
	}
	return raw, cfg, nil
}

// clearStaleMarker handles a marker with no backup next to it. Runs of this
// tool always write the backup first, so such a marker only goes stale; once
// it has, the marker is dropped from the bytes this transaction restores.
func (t *Transaction) clearStaleMarker(log zerolog.Logger, raw *[]byte, cfg **terminalconfig.Configuration) (bool, error) {
	if _, err := t.FS.Stat(t.BackupPath()); err == nil {
		return false, nil
	}
	info, err := t.FS.Stat(t.Path)
	if err != nil || !t.stale(info.ModTime()) {
		return false, nil
	}

	cleared, err := (*cfg).MarshalCleared()
	if err != nil {
		return false, err
	}
	c, err := terminalconfig.Parse(cleared)
	if err != nil {
		return false, errors.Wrap(err, errors.ErrConfigParse, "failed to parse settings")
	}
	log.Warn().Msg("Ignoring stale in-use marker in settings")
	*raw, *cfg = cleared, c
	return true, nil
}

// recover restores a backup left behind by an interrupted run. A backup next
// to a marked settings file belongs to a live holder until it goes stale.
func (t *Transaction) recover(log zerolog.Logger) (bool, error) {
	info, err := t.FS.Stat(t.BackupPath())
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, errors.ErrFileAccess, "failed to check settings backup")
	}

	live, liveErr := t.FS.ReadFile(t.Path)
	if liveErr == nil {
		if cfg, err := terminalconfig.Parse(live); err == nil && cfg.InFlight() && !t.stale(info.ModTime()) {
			return false, nil
		}
	}

	data, err := t.FS.ReadFile(t.BackupPath())
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, errors.ErrFileAccess, "failed to read settings backup")
	}

	// a holder that has written its final state still owns the backup
	// until it removes it; only a stale copy is dropped here
	if liveErr == nil && bytes.Equal(live, data) {
		if !t.stale(info.ModTime()) {
			return false, nil
		}
		log.Debug().Msg("Dropping stale settings backup identical to the live file")
		return false, t.removeBackup(errors.ErrFileAccess)
	}

	if err := t.FS.WriteFile(t.Path, data, filePerm); err != nil {
		return false, errors.Wrap(err, errors.ErrFileAccess, "failed to restore settings from backup")
	}
	if err := t.removeBackup(errors.ErrFileAccess); err != nil {
		return false, err
	}

	log.Warn().Str("backup", t.BackupPath()).Msg("Restored settings left by an interrupted run")
	return true, nil
}

// finish reverts or commits the live file and drops the backup
func (t *Transaction) finish(raw []byte, s *Session) error {
	final := raw
	if s.committed != nil {
		final = s.committed
	}
	if err := t.FS.WriteFile(t.Path, final, filePerm); err != nil {
		return errors.Wrap(err, errors.ErrTransactionCleanup, "failed to restore settings; the backup will be recovered on the next run")
	}
	return t.removeBackup(errors.ErrTransactionCleanup)
}

// removeBackup deletes the backup; one already gone counts as removed
func (t *Transaction) removeBackup(code errors.ErrorCode) error {
	if err := t.FS.Remove(t.BackupPath()); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, code, "failed to remove settings backup")
	}
	return nil
}

// abandon undoes a transaction that failed while marking the file
func (t *Transaction) abandon(log zerolog.Logger, raw []byte) {
	if err := t.FS.WriteFile(t.Path, raw, filePerm); err != nil {
		log.Error().Err(err).Msg("Failed to restore settings, backup kept for recovery")
		return
	}
	_ = t.FS.Remove(t.BackupPath())
}

func (t *Transaction) waiter() *wait.Waiter {
	if t.Waiter != nil {
		return t.Waiter
	}
	return wait.New(250*time.Millisecond, 15*time.Second)
}

func (t *Transaction) clock() wait.Clock {
	if t.Clock != nil {
		return t.Clock
	}
	if t.Waiter != nil && t.Waiter.Clock != nil {
		return t.Waiter.Clock
	}
	return wait.RealClock{}
}

func (t *Transaction) stale(modTime time.Time) bool {
	return t.StaleAfter > 0 && t.clock().Now().Sub(modTime) >= t.StaleAfter
}

func invoke(action Action, s *Session) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf(errors.ErrActionFailed, "action panicked: %v", r)
		}
	}()
	if err := action(s); err != nil {
		return errors.Wrap(err, errors.ErrActionFailed, "action failed")
	}
	return nil
}
