package transaction

import (
	"github.com/arthur-debert/wtlaunch/pkg/errors"
	"github.com/arthur-debert/wtlaunch/pkg/terminalconfig"
)

// Session is the action's view of a running transaction
type Session struct {
	Config *terminalconfig.Configuration
	Path   string

	tx        *Transaction
	committed []byte
}

// Apply writes the current configuration to the live file for the rest of
// the transaction. It is reverted when the transaction ends unless Commit is
// called.
func (s *Session) Apply() error {
	data, err := s.Config.MarshalInFlight()
	if err != nil {
		return err
	}
	if err := s.tx.FS.WriteFile(s.Path, data, filePerm); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to apply settings")
	}
	return nil
}

// Commit makes the current configuration the persistent state. The live
// file keeps the marker until the transaction ends, and the backup is
// replaced so that recovery after a crash lands on the committed state.
func (s *Session) Commit() error {
	data, err := s.Config.MarshalCleared()
	if err != nil {
		return err
	}
	if err := s.tx.FS.WriteFile(s.tx.BackupPath(), data, filePerm); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to update settings backup")
	}
	if err := s.Apply(); err != nil {
		return err
	}
	s.committed = data
	return nil
}
